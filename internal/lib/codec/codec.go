// Package codec provides the JSON encoding used by the HTTP layer.
//
// It is backed by bytedance/sonic configured for encoding/json
// compatibility (sorted map keys, HTML escaping, std error messages).
package codec

import (
	"bytes"
	"io"

	"github.com/bytedance/sonic"
	"github.com/deppfellow/user-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// api is the frozen sonic configuration shared by every call.
var api = sonic.ConfigStd

// DecodeObject parses raw as a JSON document and returns it as an object.
//
// An empty (or whitespace only) document and any top-level value that is
// not an object yield an empty map. Syntax errors are returned as is.
func DecodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var doc any
	if err := api.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return obj, nil
}

// Serializer implements echo.JSONSerializer with sonic.
type Serializer struct{}

var _ echo.JSONSerializer = Serializer{}

// Serialize writes i to the response, indented when indent is not empty.
func (Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize reads the request body into i.
func (Serializer) Deserialize(c echo.Context, i interface{}) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errs.NewInternalServerError(err)
	}
	if err := api.Unmarshal(raw, i); err != nil {
		return errs.NewMalformedBodyError(err)
	}
	return nil
}
