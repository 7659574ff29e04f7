package ports

import (
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// Permission is an (object, action) pair checked against a role.
type Permission struct {
	Object string
	Action string
}

var (
	PermCreateOrder        = Permission{Object: "order", Action: "create"}
	PermManageProducts     = Permission{Object: "product", Action: "manage"}
	PermChangeAvailability = Permission{Object: "availability", Action: "change"}
)

// AdvancePermission is the permission to move an order into target.
func AdvancePermission(target order.Status) Permission {
	return Permission{Object: "order", Action: "advance:" + target.String()}
}

// AccessPolicy decides which role may do what. It returns ErrForbidden
// (possibly wrapped) when the role lacks the permission.
type AccessPolicy interface {
	Authorize(role user.Role, p Permission) error
}
