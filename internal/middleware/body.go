package middleware

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/lib/codec"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// BodyKey stores the parsed request body (map[string]any) in Echo context.
	BodyKey = "body"

	// MaxBodyBytes caps JSON bodies at 100kb.
	MaxBodyBytes = 100 << 10
)

// BodyParser decodes JSON request bodies once, before any handler runs.
type BodyParser struct {
	server *server.Server
}

// NewBodyParser constructs a BodyParser.
func NewBodyParser(s *server.Server) *BodyParser {
	return &BodyParser{server: s}
}

// ParseJSON returns an Echo middleware that parses the body of every
// request sent with an application/json content type.
//
// Outcomes:
//   - not JSON, or empty body: an empty body map
//   - a JSON object: that object
//   - any other JSON value: an empty body map
//   - malformed JSON: 400 Invalid JSON
//   - larger than MaxBodyBytes: 413
//
// The raw bytes are put back on the request so it can still be read.
func (bp *BodyParser) ParseJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body := map[string]any{}

			req := c.Request()
			if req.Body != nil && req.Body != http.NoBody && isJSON(req.Header.Get(echo.HeaderContentType)) {
				raw, err := io.ReadAll(io.LimitReader(req.Body, MaxBodyBytes+1))
				if err != nil {
					return errs.NewInternalServerError(errors.Wrap(err, "read request body"))
				}
				if len(raw) > MaxBodyBytes {
					return errs.NewHTTPError(http.StatusRequestEntityTooLarge, "request entity too large")
				}

				parsed, err := codec.DecodeObject(raw)
				if err != nil {
					return errs.NewMalformedBodyError(err)
				}
				body = parsed

				req.Body = io.NopCloser(bytes.NewReader(raw))
			}

			c.Set(BodyKey, body)
			return next(c)
		}
	}
}

// GetBody returns the parsed body. It is never nil.
func GetBody(c echo.Context) map[string]any {
	if body, ok := c.Get(BodyKey).(map[string]any); ok && body != nil {
		return body
	}
	return map[string]any{}
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON
}
