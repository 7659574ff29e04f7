// Package identity reaches the identity service over rpc on behalf of the
// catalog and order services.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/messages"
	"fooddelivery/internal/pkg/rpc"
)

// Gateway implements ports.IdentityGateway with identity-service messages.
type Gateway struct {
	caller rpc.Caller
	logger *slog.Logger
}

var _ ports.IdentityGateway = (*Gateway)(nil)

func NewGateway(caller rpc.Caller, logger *slog.Logger) *Gateway {
	return &Gateway{
		caller: caller,
		logger: logger.With("component", "identity-gateway"),
	}
}

// Authenticate resolves token with GetUserInfoByToken. A 401 or 404 reply
// becomes ports.ErrInvalidToken.
func (g *Gateway) Authenticate(ctx context.Context, token string) (ports.Principal, error) {
	if token == "" {
		return ports.Principal{}, ports.ErrInvalidToken
	}

	info, err := rpc.Invoke[messages.UserInfo](ctx, g.caller, messages.GetUserInfoByToken{UserToken: token})
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) &&
			(rpcErr.Status == http.StatusUnauthorized || rpcErr.Status == http.StatusNotFound) {
			return ports.Principal{}, fmt.Errorf("%w: %s", ports.ErrInvalidToken, rpcErr.Message)
		}
		return ports.Principal{}, err
	}

	id, err := kernel.UUIDFromString(info.UserID)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	role, err := user.ParseRole(info.UserType)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	return ports.Principal{UserID: id, Role: role}, nil
}

// IdleRiders lists idle riders with GetAllIdleRiders. Entries with a
// malformed id are skipped.
func (g *Gateway) IdleRiders(ctx context.Context) ([]services.RiderCandidate, error) {
	infos, err := rpc.Invoke[[]messages.UserInfo](ctx, g.caller, messages.GetAllIdleRiders{})
	if err != nil {
		return nil, err
	}

	riders := make([]services.RiderCandidate, 0, len(infos))
	for _, info := range infos {
		id, idErr := kernel.UUIDFromString(info.UserID)
		if idErr != nil {
			g.logger.WarnContext(ctx, "skipping rider with malformed id", "userID", info.UserID)
			continue
		}
		riders = append(riders, services.RiderCandidate{
			ID:           id,
			RegisteredAt: time.UnixMilli(info.CreateTime),
		})
	}
	return riders, nil
}
