package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/rpc"

	"github.com/labstack/echo/v4"
)

// Error codes carried in rpc.ErrorBody.
const (
	CodeInvalidArgument = "invalid_argument"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeInternal        = "internal"
)

var errMalformedPayload = errors.New("malformed payload")

type errorClass struct {
	status int
	code   string
	causes []error
}

// errorClasses is checked in order; the first class with a matching cause wins.
var errorClasses = []errorClass{
	{http.StatusBadRequest, CodeInvalidArgument, []error{
		errMalformedPayload,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
	}},
	{http.StatusUnauthorized, CodeUnauthenticated, []error{
		ports.ErrInvalidCredentials,
		ports.ErrInvalidToken,
	}},
	{http.StatusForbidden, CodeForbidden, []error{
		ports.ErrForbidden,
	}},
	{http.StatusNotFound, CodeNotFound, []error{
		errs.ErrObjectNotFound,
		rpc.ErrUnknownKind,
	}},
	{http.StatusConflict, CodeConflict, []error{
		errs.ErrVersionIsInvalid,
		ports.ErrAlreadyExists,
		order.ErrStatusTransitionRejected,
		order.ErrRiderAlreadyAssigned,
		order.ErrOrderIsCompleted,
		user.ErrNotARider,
	}},
}

// classify maps an error to its HTTP status and wire code.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, codeForStatus(httpErr.Code)
	}

	for _, class := range errorClasses {
		for _, cause := range class.causes {
			if errors.Is(err, cause) {
				return class.status, class.code
			}
		}
	}

	return http.StatusInternalServerError, CodeInternal
}

func codeForStatus(status int) string {
	for _, class := range errorClasses {
		if class.status == status {
			return class.code
		}
	}
	if status == http.StatusMethodNotAllowed {
		return CodeNotFound
	}
	return CodeInternal
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code := classify(err)
	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "message failed",
			"uri", c.Request().RequestURI, "error", err)
	}

	if writeErr := c.JSON(status, rpc.ErrorBody{Code: code, Message: message}); writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "write error reply", "error", writeErr)
	}
}
