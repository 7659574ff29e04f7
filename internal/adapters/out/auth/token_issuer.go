// Package auth implements the identity service's credentials: signed user
// tokens, password hashing and the role-based access policy.
package auth

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var ErrSecretIsRequired = errors.New("token secret is required")

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 user tokens carrying the user id and role.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer builds an issuer; a zero ttl means tokens never expire.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (j *JWTIssuer) Issue(userID kernel.UUID, role user.Role) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}
	if err := role.Validate(); err != nil {
		return "", err
	}

	now := j.now()
	c := claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if j.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify returns the principal behind token or a wrapped ports.ErrInvalidToken.
func (j *JWTIssuer) Verify(token string) (ports.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: subject: %w", ports.ErrInvalidToken, err)
	}
	role, err := user.ParseRole(c.Role)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: role: %w", ports.ErrInvalidToken, err)
	}

	return ports.Principal{UserID: id, Role: role}, nil
}
