package middleware

import (
	"github.com/deppfellow/user-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Body parses JSON request bodies once for every request.
	Body *BodyParser

	// UserValidator validates create/update user payloads.
	UserValidator *UserValidator

	// RateLimit throttles clients when enabled in config.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Body:            NewBodyParser(s),
		UserValidator:   NewUserValidator(s),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
