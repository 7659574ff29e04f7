package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
)

// RegisterUserCommandHandler creates an account and signs the caller in.
// A duplicate name surfaces as ports.ErrAlreadyExists from the repository.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle stores the new user and returns a session token for it.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return "", err
	}

	u, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Contact(),
		cmd.Role(),
		cmd.Address(),
		hash,
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return h.issuer.Issue(u.ID(), u.Role())
}
