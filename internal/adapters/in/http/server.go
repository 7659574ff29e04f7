package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"fooddelivery/internal/adapters/in/http/apidoc"
	"fooddelivery/internal/pkg/rpc"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// HandlerFunc serves one message kind: it receives the raw argument payload
// and returns the value to encode as the reply.
type HandlerFunc func(ctx context.Context, payload []byte) (any, error)

// Typed adapts a use-case shaped function to a HandlerFunc, decoding the
// payload into Req with the rpc codec. An empty payload decodes as Req's zero
// value so argument-less kinds may be sent without a body.
func Typed[Req any, Res any](fn func(ctx context.Context, req Req) (Res, error)) HandlerFunc {
	return func(ctx context.Context, payload []byte) (any, error) {
		var req Req
		if err := rpc.Decode(payload, &req); err != nil && !errors.Is(err, rpc.ErrEmptyPayload) {
			return nil, fmt.Errorf("%w: %w", errMalformedPayload, err)
		}
		return fn(ctx, req)
	}
}

// Server is the message endpoint of one service. Every kind registered to
// that service is served at POST /api/{kind}.
type Server struct {
	service  rpc.Service
	handlers map[rpc.Kind]HandlerFunc
	logger   *slog.Logger
}

// NewServer creates an empty server for service.
func NewServer(service rpc.Service, logger *slog.Logger) *Server {
	return &Server{
		service:  service,
		handlers: make(map[rpc.Kind]HandlerFunc),
		logger:   logger.With("component", "http", "service", string(service)),
	}
}

// Handle binds kind to h. It panics when kind is addressed to another service
// or bound twice, both being wiring mistakes.
func (s *Server) Handle(kind rpc.Kind, h HandlerFunc) {
	owner, ok := rpc.ServiceOf(kind)
	if !ok || owner != s.service {
		panic(fmt.Sprintf("http: kind %s is not addressed to %s", kind, s.service))
	}
	if _, dup := s.handlers[kind]; dup {
		panic(fmt.Sprintf("http: kind %s bound twice", kind))
	}
	s.handlers[kind] = h
}

// Service returns the service this server answers for.
func (s *Server) Service() rpc.Service {
	return s.service
}

// Kinds lists the bound kinds in lexical order.
func (s *Server) Kinds() []rpc.Kind {
	kinds := make([]rpc.Kind, 0, len(s.handlers))
	for k := range s.handlers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Echo builds the HTTP router. Middlewares run before dispatch, after request
// logging and panic recovery.
func (s *Server) Echo(middlewares ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = rpc.Serializer{}
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				s.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request failed", attrs...)
				return nil
			}
			s.logger.LogAttrs(c.Request().Context(), slog.LevelDebug, "request", attrs...)
			return nil
		},
	}))
	e.Use(middlewares...)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(apidoc.InstanceName)))
	e.POST("/api/:kind", s.dispatch)

	return e
}

func (s *Server) dispatch(c echo.Context) error {
	var kindParam string
	err := runtime.BindStyledParameterWithOptions("simple", "kind", c.Param("kind"), &kindParam,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid format for parameter kind: %s", err))
	}

	kind := rpc.Kind(kindParam)
	h, ok := s.handlers[kind]
	if !ok {
		return fmt.Errorf("%w: %s", rpc.ErrUnknownKind, kind)
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errMalformedPayload, err)
	}

	result, err := h(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
