package messages

import "fooddelivery/internal/pkg/rpc"

const (
	KindUserLogin          rpc.Kind = "UserLogin"
	KindUserRegister       rpc.Kind = "UserRegister"
	KindGetUserInfoByToken rpc.Kind = "GetUserInfoByToken"
	KindListUsersByRole    rpc.Kind = "ListUsersByRole"
	KindGetAllMerchants    rpc.Kind = "GetAllMerchants"
	KindGetAllIdleRiders   rpc.Kind = "GetAllIdleRiders"
	KindFetchUsersByIDs    rpc.Kind = "FetchUsersByIDs"
	KindUpdateRiderStatus  rpc.Kind = "UpdateRiderStatus"
)

func init() {
	for _, kind := range []rpc.Kind{
		KindUserLogin, KindUserRegister, KindGetUserInfoByToken, KindListUsersByRole,
		KindGetAllMerchants, KindGetAllIdleRiders, KindFetchUsersByIDs, KindUpdateRiderStatus,
	} {
		rpc.Register(kind, rpc.Identity)
	}
}

// UserLogin replies with a user token.
type UserLogin struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (UserLogin) Kind() rpc.Kind { return KindUserLogin }

// UserRegister replies with a user token for the new account.
type UserRegister struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Password      string `json:"password"`
	UserType      string `json:"userType"`
	Address       string `json:"address"`
}

func (UserRegister) Kind() rpc.Kind { return KindUserRegister }

// GetUserInfoByToken replies with the UserInfo behind a token.
type GetUserInfoByToken struct {
	UserToken string `json:"userToken"`
}

func (GetUserInfoByToken) Kind() rpc.Kind { return KindGetUserInfoByToken }

// ListUsersByRole replies with []UserInfo, optionally filtered by rider status.
type ListUsersByRole struct {
	UserType string  `json:"userType"`
	Status   *string `json:"status,omitempty"`
}

func (ListUsersByRole) Kind() rpc.Kind { return KindListUsersByRole }

type GetAllMerchants struct{}

func (GetAllMerchants) Kind() rpc.Kind { return KindGetAllMerchants }

type GetAllIdleRiders struct{}

func (GetAllIdleRiders) Kind() rpc.Kind { return KindGetAllIdleRiders }

// FetchUsersByIDs replies with the users that exist among UserIDs; unknown
// and malformed ids are left out.
type FetchUsersByIDs struct {
	UserIDs []string `json:"userIDs"`
}

func (FetchUsersByIDs) Kind() rpc.Kind { return KindFetchUsersByIDs }

// UpdateRiderStatus replies with Success.
type UpdateRiderStatus struct {
	UserToken string `json:"userToken"`
	NewStatus string `json:"newStatus"`
}

func (UpdateRiderStatus) Kind() rpc.Kind { return KindUpdateRiderStatus }
