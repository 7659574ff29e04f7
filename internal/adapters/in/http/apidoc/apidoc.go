// Package apidoc holds the OpenAPI contract of the message servers, validates
// incoming requests against it and publishes it for the swagger UI.
package apidoc

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// InstanceName is the swag registry key the swagger UI reads the document from.
const InstanceName = "fooddelivery"

//go:embed openapi.yaml
var rawDocument []byte

// Document is the parsed and validated OpenAPI contract.
type Document struct {
	contract *openapi3.T
	router   routers.Router
	json     string
}

var (
	loadOnce sync.Once
	loaded   *Document
	loadErr  error
)

// Load parses the embedded contract once per process.
func Load() (*Document, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load(context.Background())
	})
	return loaded, loadErr
}

func load(ctx context.Context) (*Document, error) {
	loader := openapi3.NewLoader()
	contract, err := loader.LoadFromData(rawDocument)
	if err != nil {
		return nil, err
	}
	if err = contract.Validate(ctx); err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(contract)
	if err != nil {
		return nil, err
	}

	data, err := contract.MarshalJSON()
	if err != nil {
		return nil, err
	}

	doc := &Document{contract: contract, router: router, json: string(data)}
	swag.Register(InstanceName, doc)

	return doc, nil
}

// ReadDoc implements swag.Swagger.
func (d *Document) ReadDoc() string {
	return d.json
}

// Version returns the contract version from the info block.
func (d *Document) Version() string {
	return d.contract.Info.Version
}

// Validator rejects requests that break the contract with 400 before they
// reach a handler. Paths the contract does not describe pass through.
func (d *Document) Validator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := d.router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(c)
				}
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
					MultiError:         false,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, requestErrorMessage(err)).SetInternal(err)
			}

			return next(c)
		}
	}
}

func requestErrorMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return "request does not match contract: " + reqErr.Error()
	}
	return "request does not match contract"
}
