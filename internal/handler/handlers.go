package handler

import (
	"github.com/deppfellow/user-api/internal/server"
	"github.com/deppfellow/user-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health *HealthHandler // Health serves the liveness endpoint.
	Info   *InfoHandler   // Info serves the API descriptor at the root path.
	User   *UserHandler   // User serves the /users resource.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Info:   NewInfoHandler(s),
		User:   NewUserHandler(s, services.User),
	}
}
