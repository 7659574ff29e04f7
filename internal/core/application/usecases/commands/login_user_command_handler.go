package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// LoginUserCommandHandler checks credentials and issues a token.
// An unknown name and a wrong password both yield ports.ErrInvalidCredentials.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

func (h LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByName(ctx, cmd.Name())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", ports.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return "", err
	}

	return h.issuer.Issue(u.ID(), u.Role())
}
