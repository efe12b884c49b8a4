package service

import (
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/server"
)

// Services groups every business service.
type Services struct {
	User *UserService
}

// NewServices wires services on top of the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		User: NewUserService(s, repos.User),
	}, nil
}
