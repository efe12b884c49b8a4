package repository

import (
	"github.com/deppfellow/user-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User *UserRepository
}

// NewRepositories constructs the repository container.
//
// Every call returns fresh, empty stores, so each Server (and each test)
// owns its own data.
func NewRepositories(s *server.Server) *Repositories {
	s.Logger.Debug().Msg("initializing in-memory user store")

	return &Repositories{
		User: NewUserRepository(),
	}
}
