package http

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/messages"
)

// IdentityHandlers serves the identity-service message kinds.
type IdentityHandlers struct {
	// Command handlers
	registerUser    UseCase[commands.RegisterUserCommand, string]
	loginUser       UseCase[commands.LoginUserCommand, string]
	setAvailability Action[commands.SetRiderAvailabilityCommand]

	// Query handlers
	userByToken UseCase[queries.GetUserByTokenQuery, queries.UserView]
	usersByRole UseCase[queries.ListUsersByRoleQuery, []queries.UserView]
	usersByIDs  UseCase[queries.GetUsersByIDsQuery, []queries.UserView]
}

func NewIdentityHandlers(
	registerUser UseCase[commands.RegisterUserCommand, string],
	loginUser UseCase[commands.LoginUserCommand, string],
	setAvailability Action[commands.SetRiderAvailabilityCommand],
	userByToken UseCase[queries.GetUserByTokenQuery, queries.UserView],
	usersByRole UseCase[queries.ListUsersByRoleQuery, []queries.UserView],
	usersByIDs UseCase[queries.GetUsersByIDsQuery, []queries.UserView],
) *IdentityHandlers {
	return &IdentityHandlers{
		registerUser:    registerUser,
		loginUser:       loginUser,
		setAvailability: setAvailability,
		userByToken:     userByToken,
		usersByRole:     usersByRole,
		usersByIDs:      usersByIDs,
	}
}

// Register binds every identity kind on s.
func (h *IdentityHandlers) Register(s *Server) {
	s.Handle(messages.KindUserRegister, Typed(h.UserRegister))
	s.Handle(messages.KindUserLogin, Typed(h.UserLogin))
	s.Handle(messages.KindGetUserInfoByToken, Typed(h.GetUserInfoByToken))
	s.Handle(messages.KindListUsersByRole, Typed(h.ListUsersByRole))
	s.Handle(messages.KindGetAllMerchants, Typed(h.GetAllMerchants))
	s.Handle(messages.KindGetAllIdleRiders, Typed(h.GetAllIdleRiders))
	s.Handle(messages.KindFetchUsersByIDs, Typed(h.FetchUsersByIDs))
	s.Handle(messages.KindUpdateRiderStatus, Typed(h.UpdateRiderStatus))
}

// UserRegister creates an account and replies with its token.
func (h *IdentityHandlers) UserRegister(ctx context.Context, req messages.UserRegister) (string, error) {
	role, err := user.ParseRole(req.UserType)
	if err != nil {
		return "", err
	}
	address, err := parseOptionalAddress(req.Address)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.ContactNumber, req.Password, role, address)
	if err != nil {
		return "", err
	}

	return h.registerUser.Handle(ctx, cmd)
}

func (h *IdentityHandlers) UserLogin(ctx context.Context, req messages.UserLogin) (string, error) {
	cmd, err := commands.NewLoginUserCommand(req.Name, req.Password)
	if err != nil {
		return "", err
	}

	return h.loginUser.Handle(ctx, cmd)
}

func (h *IdentityHandlers) GetUserInfoByToken(
	ctx context.Context,
	req messages.GetUserInfoByToken,
) (messages.UserInfo, error) {
	query, err := queries.NewGetUserByTokenQuery(req.UserToken)
	if err != nil {
		return messages.UserInfo{}, err
	}

	view, err := h.userByToken.Handle(ctx, query)
	if err != nil {
		return messages.UserInfo{}, err
	}

	return toUserInfo(view), nil
}

func (h *IdentityHandlers) ListUsersByRole(
	ctx context.Context,
	req messages.ListUsersByRole,
) ([]messages.UserInfo, error) {
	role, err := user.ParseRole(req.UserType)
	if err != nil {
		return nil, err
	}
	availability, err := parseAvailability(req.Status)
	if err != nil {
		return nil, err
	}

	return h.listUsers(ctx, role, availability)
}

func (h *IdentityHandlers) GetAllMerchants(ctx context.Context, _ messages.GetAllMerchants) ([]messages.UserInfo, error) {
	return h.listUsers(ctx, user.Merchant, nil)
}

func (h *IdentityHandlers) GetAllIdleRiders(ctx context.Context, _ messages.GetAllIdleRiders) ([]messages.UserInfo, error) {
	idle := user.Idle
	return h.listUsers(ctx, user.Rider, &idle)
}

// FetchUsersByIDs skips malformed ids instead of failing the whole lookup.
func (h *IdentityHandlers) FetchUsersByIDs(
	ctx context.Context,
	req messages.FetchUsersByIDs,
) ([]messages.UserInfo, error) {
	ids := make([]kernel.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	query, err := queries.NewGetUsersByIDsQuery(ids)
	if err != nil {
		return nil, err
	}

	views, err := h.usersByIDs.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return toUserInfos(views), nil
}

func (h *IdentityHandlers) UpdateRiderStatus(ctx context.Context, req messages.UpdateRiderStatus) (string, error) {
	availability, err := user.ParseAvailability(req.NewStatus)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(req.UserToken, availability)
	if err != nil {
		return "", err
	}

	if err = h.setAvailability.Handle(ctx, cmd); err != nil {
		return "", err
	}

	return messages.Success, nil
}

func (h *IdentityHandlers) listUsers(
	ctx context.Context,
	role user.Role,
	availability *user.Availability,
) ([]messages.UserInfo, error) {
	query, err := queries.NewListUsersByRoleQuery(role, availability)
	if err != nil {
		return nil, err
	}

	views, err := h.usersByRole.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return toUserInfos(views), nil
}
