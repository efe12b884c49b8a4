// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"
	"strings"

	"github.com/deppfellow/user-api/internal/handler"
	"github.com/deppfellow/user-api/internal/lib/codec"
	"github.com/deppfellow/user-api/internal/middleware"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance serving the whole API.
//
// Global middleware order:
//  1. RequestID: correlation id
//  2. ContextEnhancer: request-scoped logger
//  3. RequestLogger: one "API" line at completion
//  4. LogRequest: one line per inbound request
//  5. Recover: panics become 500s
//  6. RateLimit: no-op unless enabled
//  7. Secure, CORS: response headers
//  8. Body: JSON body parsing
func NewRouter(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = codec.Serializer{}
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		middleware.LogRequest(),
		m.Global.Recover(),
		m.RateLimit.Limit(),
		m.Global.Secure(),
		m.Global.CORS(),
		m.Body.ParseJSON(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h, m)

	return router
}

// routeAdder is satisfied by both *echo.Echo and *echo.Group.
type routeAdder interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// addRoute registers path with and without a trailing slash. GET routes
// also answer HEAD.
func addRoute(r routeAdder, method, path string, h echo.HandlerFunc, mws ...echo.MiddlewareFunc) {
	methods := []string{method}
	if method == http.MethodGet {
		methods = append(methods, http.MethodHead)
	}

	for _, m := range methods {
		r.Add(m, path, h, mws...)
		if !strings.HasSuffix(path, "/") {
			r.Add(m, path+"/", h, mws...)
		}
	}
}
