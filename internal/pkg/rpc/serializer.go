package rpc

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Serializer plugs the codec into echo, so request binding on the servers
// tolerates the same single extra quoting layer as the client.
type Serializer struct{}

var _ echo.JSONSerializer = Serializer{}

func (Serializer) Serialize(c echo.Context, i any, indent string) error {
	enc := codec.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (Serializer) Deserialize(c echo.Context, i any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body").SetInternal(err)
	}
	if err = Decode(body, i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload: "+err.Error()).SetInternal(err)
	}
	return nil
}
