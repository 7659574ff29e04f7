package ports

import "errors"

var (
	// ErrInvalidCredentials is returned by login for an unknown name or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for a malformed, expired or unknown user token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden is returned when the caller's role or identity may not perform the action.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyExists is returned when a uniqueness rule rejects a write.
	ErrAlreadyExists = errors.New("already exists")
)
