package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/adapters/in/http/apidoc"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/messages"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/rpc"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type useCaseFunc[In any, Out any] func(ctx context.Context, in In) (Out, error)

func (f useCaseFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

type actionFunc[In any] func(ctx context.Context, in In) error

func (f actionFunc[In]) Handle(ctx context.Context, in In) error {
	return f(ctx, in)
}

func unexpected[In any, Out any](t *testing.T) useCaseFunc[In, Out] {
	return func(context.Context, In) (Out, error) {
		var zero Out
		t.Errorf("unexpected call with %T", *new(In))
		return zero, nil
	}
}

func unexpectedAction[In any](t *testing.T) actionFunc[In] {
	return func(context.Context, In) error {
		t.Errorf("unexpected call with %T", *new(In))
		return nil
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func post(t *testing.T, e *echo.Echo, kind string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/"+kind, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) rpc.ErrorBody {
	t.Helper()

	var body rpc.ErrorBody
	require.NoError(t, rpc.Decode(rec.Body.Bytes(), &body))
	return body
}

type orderFakes struct {
	create     useCaseFunc[commands.CreateOrderCommand, kernel.UUID]
	assign     actionFunc[commands.AssignRiderCommand]
	advance    actionFunc[commands.AdvanceOrderStatusCommand]
	unassigned useCaseFunc[queries.GetUnassignedOrdersQuery, []queries.OrderView]
	byUser     useCaseFunc[queries.GetOrdersByUserQuery, []queries.OrderView]
	byID       useCaseFunc[queries.GetOrderByIDQuery, queries.OrderView]
}

func newOrderFakes(t *testing.T) *orderFakes {
	return &orderFakes{
		create:     unexpected[commands.CreateOrderCommand, kernel.UUID](t),
		assign:     unexpectedAction[commands.AssignRiderCommand](t),
		advance:    unexpectedAction[commands.AdvanceOrderStatusCommand](t),
		unassigned: unexpected[queries.GetUnassignedOrdersQuery, []queries.OrderView](t),
		byUser:     unexpected[queries.GetOrdersByUserQuery, []queries.OrderView](t),
		byID:       unexpected[queries.GetOrderByIDQuery, queries.OrderView](t),
	}
}

func (f *orderFakes) echo(middlewares ...echo.MiddlewareFunc) *echo.Echo {
	s := NewServer(rpc.Order, discardLogger())
	NewOrderHandlers(f.create, f.assign, f.advance, f.unassigned, f.byUser, f.byID).Register(s)
	return s.Echo(middlewares...)
}

func TestServer_Health(t *testing.T) {
	e := newOrderFakes(t).echo()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_Routing(t *testing.T) {
	e := newOrderFakes(t).echo()

	t.Run("unknown_kind_is_not_found", func(t *testing.T) {
		rec := post(t, e, "DoesNotExist", `{}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, CodeNotFound, body.Code)
		assert.Contains(t, body.Message, "DoesNotExist")
	})

	t.Run("kind_of_another_service_is_not_found", func(t *testing.T) {
		rec := post(t, e, string(messages.KindUserLogin), `{"name":"a","password":"b"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("get_on_message_route_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/GetUnassignedOrders", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestServer_Handle(t *testing.T) {
	s := NewServer(rpc.Order, discardLogger())
	noop := Typed(func(context.Context, struct{}) (string, error) { return "", nil })

	t.Run("foreign_kind_panics", func(t *testing.T) {
		assert.Panics(t, func() { s.Handle(messages.KindUserLogin, noop) })
	})

	t.Run("duplicate_binding_panics", func(t *testing.T) {
		s.Handle(messages.KindGetUnassignedOrders, noop)
		assert.Panics(t, func() { s.Handle(messages.KindGetUnassignedOrders, noop) })
	})

	assert.Equal(t, []rpc.Kind{messages.KindGetUnassignedOrders}, s.Kinds())
	assert.Equal(t, rpc.Order, s.Service())
}

func TestServer_Payloads(t *testing.T) {
	orderID := kernel.NewUUID()
	view := queries.OrderView{
		ID:          orderID,
		CustomerID:  kernel.NewUUID(),
		MerchantID:  kernel.NewUUID(),
		Items:       []queries.LineItemView{},
		Destination: "1 Main St",
		Status:      order.AwaitingPreparation,
		TotalAmount: decimal.Zero,
		CreatedAt:   time.UnixMilli(1700000000000),
	}

	fakes := newOrderFakes(t)
	fakes.byID = func(_ context.Context, q queries.GetOrderByIDQuery) (queries.OrderView, error) {
		if q.OrderID() != orderID {
			return queries.OrderView{}, errs.NewObjectNotFoundError("orderID", q.OrderID())
		}
		return view, nil
	}
	fakes.unassigned = func(context.Context, queries.GetUnassignedOrdersQuery) ([]queries.OrderView, error) {
		return []queries.OrderView{}, nil
	}
	e := fakes.echo()

	t.Run("plain_object", func(t *testing.T) {
		rec := post(t, e, "GetOrderDetails", fmt.Sprintf(`{"orderID":%q}`, orderID))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var info messages.OrderInfo
		require.NoError(t, rpc.Decode(rec.Body.Bytes(), &info))
		assert.Equal(t, orderID.String(), info.OrderID)
		assert.Nil(t, info.RiderID)
		assert.Equal(t, messages.StatusAwaitingPreparation, info.OrderStatus)
		assert.Equal(t, int64(1700000000000), info.OrderTime)
	})

	t.Run("single_quoted_object", func(t *testing.T) {
		inner := fmt.Sprintf(`{"orderID":%q}`, orderID)
		quoted, err := rpc.Encode(inner)
		require.NoError(t, err)

		rec := post(t, e, "GetOrderDetails", string(quoted))

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("empty_body_for_argumentless_kind", func(t *testing.T) {
		rec := post(t, e, "GetUnassignedOrders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("malformed_body", func(t *testing.T) {
		rec := post(t, e, "GetOrderDetails", `{"orderID":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeInvalidArgument, decodeError(t, rec).Code)
	})

	t.Run("missing_order", func(t *testing.T) {
		rec := post(t, e, "GetOrderDetails", fmt.Sprintf(`{"orderID":%q}`, kernel.NewUUID()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeNotFound, decodeError(t, rec).Code)
	})

	t.Run("malformed_order_id", func(t *testing.T) {
		rec := post(t, e, "GetOrderDetails", `{"orderID":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_ContractValidation(t *testing.T) {
	doc, err := apidoc.Load()
	require.NoError(t, err)

	fakes := newOrderFakes(t)
	fakes.unassigned = func(context.Context, queries.GetUnassignedOrdersQuery) ([]queries.OrderView, error) {
		return []queries.OrderView{}, nil
	}
	e := fakes.echo(doc.Validator())

	t.Run("numeric_body_is_rejected", func(t *testing.T) {
		rec := post(t, e, "GetUnassignedOrders", `42`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeInvalidArgument, decodeError(t, rec).Code)
	})

	t.Run("object_body_passes", func(t *testing.T) {
		rec := post(t, e, "GetUnassignedOrders", `{}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("quoted_body_passes", func(t *testing.T) {
		rec := post(t, e, "GetUnassignedOrders", `"{}"`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest, CodeInvalidArgument},
		{"out_of_range", errs.NewValueIsOutOfRangeError("price", -1, 0, 10), http.StatusBadRequest, CodeInvalidArgument},
		{"malformed", fmt.Errorf("%w: eof", errMalformedPayload), http.StatusBadRequest, CodeInvalidArgument},
		{"credentials", ports.ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthenticated},
		{"token", fmt.Errorf("%w: expired", ports.ErrInvalidToken), http.StatusUnauthorized, CodeUnauthenticated},
		{"forbidden", fmt.Errorf("%w: not your order", ports.ErrForbidden), http.StatusForbidden, CodeForbidden},
		{"not_found", errs.NewObjectNotFoundError("orderID", "x"), http.StatusNotFound, CodeNotFound},
		{"unknown_kind", rpc.ErrUnknownKind, http.StatusNotFound, CodeNotFound},
		{"rider_taken", fmt.Errorf("%w: rider r accepted first", order.ErrRiderAlreadyAssigned), http.StatusConflict, CodeConflict},
		{"transition", order.ErrStatusTransitionRejected, http.StatusConflict, CodeConflict},
		{"completed", order.ErrOrderIsCompleted, http.StatusConflict, CodeConflict},
		{"version", errs.NewVersionIsInvalidErrorWithCause("version"), http.StatusConflict, CodeConflict},
		{"duplicate", ports.ErrAlreadyExists, http.StatusConflict, CodeConflict},
		{"not_a_rider", user.ErrNotARider, http.StatusConflict, CodeConflict},
		{"echo_error", echo.NewHTTPError(http.StatusBadRequest, "bad"), http.StatusBadRequest, CodeInvalidArgument},
		{"other", errors.New("db down"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classify(tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}
