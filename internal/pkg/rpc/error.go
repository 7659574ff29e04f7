package rpc

import (
	"fmt"
	"net/http"
)

// ErrorBody is the JSON body of every non-2xx reply.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is the single failure type delivered by the client: resolution,
// transport and remote errors all arrive as one. Status is 0 when no reply
// was received.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("rpc %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("rpc %s: %d %s: %s", e.Kind, e.Status, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the remote side answered 404.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}
