package auth

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

func defaultPolicies() [][]string {
	rule := func(role user.Role, p ports.Permission) []string {
		return []string{role.String(), p.Object, p.Action}
	}

	return [][]string{
		rule(user.Customer, ports.PermCreateOrder),
		rule(user.Merchant, ports.AdvancePermission(order.Delivering)),
		rule(user.Merchant, ports.AdvancePermission(order.Completed)),
		rule(user.Rider, ports.AdvancePermission(order.AwaitingPreparation)),
		rule(user.Rider, ports.AdvancePermission(order.Completed)),
		rule(user.Merchant, ports.PermManageProducts),
		rule(user.Rider, ports.PermChangeAvailability),
	}
}

// CasbinPolicy answers role permission checks from an in-memory casbin model.
type CasbinPolicy struct {
	enforcer *casbin.SyncedEnforcer
}

var _ ports.AccessPolicy = (*CasbinPolicy)(nil)

// NewCasbinPolicy loads the built-in rules.
func NewCasbinPolicy() (*CasbinPolicy, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load access model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	if _, err = enforcer.AddPolicies(defaultPolicies()); err != nil {
		return nil, fmt.Errorf("load access rules: %w", err)
	}

	return &CasbinPolicy{enforcer: enforcer}, nil
}

func (p *CasbinPolicy) Authorize(role user.Role, perm ports.Permission) error {
	ok, err := p.enforcer.Enforce(role.String(), perm.Object, perm.Action)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s may not %s %s", ports.ErrForbidden, role, perm.Action, perm.Object)
	}
	return nil
}
