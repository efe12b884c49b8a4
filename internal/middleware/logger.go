package middleware

import (
	"time"

	"github.com/deppfellow/user-api/internal/lib/utils"
	"github.com/labstack/echo/v4"
)

// LogRequest emits one line per inbound request with an ISO-8601
// timestamp, the method and the original URI (query string included).
// It never rejects a request.
func LogRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			uri := RequestURI(c)

			GetLogger(c).Info().
				Str("timestamp", utils.ISOTimestamp(time.Now())).
				Str("method", method).
				Str("url", uri).
				Msg(method + " " + uri)

			return next(c)
		}
	}
}

// RequestURI returns the URI as sent by the client, query string included.
func RequestURI(c echo.Context) string {
	if uri := c.Request().RequestURI; uri != "" {
		return uri
	}
	return c.Request().URL.RequestURI()
}
