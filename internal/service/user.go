package service

import (
	"context"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// UserService implements the user operations on top of a UserRepository.
type UserService struct {
	server *server.Server
	repo   *repository.UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(s *server.Server, repo *repository.UserRepository) *UserService {
	return &UserService{
		server: s,
		repo:   repo,
	}
}

// ListUsers returns every user in insertion order.
func (us *UserService) ListUsers(ctx context.Context) []model.User {
	return us.repo.List()
}

// GetUser returns the user with the given id.
func (us *UserService) GetUser(ctx context.Context, id int) (*model.User, error) {
	user, err := us.repo.GetByID(id)
	if err != nil {
		return nil, us.mapError(err, id, "get user")
	}
	return &user, nil
}

// CreateUser stores a new user. The email must not be held by anyone.
func (us *UserService) CreateUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	user, err := us.repo.Create(input)
	if err != nil {
		return nil, us.mapError(err, 0, "create user")
	}

	zerolog.Ctx(ctx).Info().
		Int("user_id", user.ID).
		Msg("user created")

	return &user, nil
}

// UpdateUser replaces the name and email of an existing user.
// The email must not be held by a different user.
func (us *UserService) UpdateUser(ctx context.Context, id int, input model.UserInput) (*model.User, error) {
	user, err := us.repo.Update(id, input)
	if err != nil {
		return nil, us.mapError(err, id, "update user")
	}

	zerolog.Ctx(ctx).Info().
		Int("user_id", user.ID).
		Msg("user updated")

	return &user, nil
}

// DeleteUser removes a user and echoes the removed record.
func (us *UserService) DeleteUser(ctx context.Context, id int) (*model.DeleteUserResponse, error) {
	user, err := us.repo.Delete(id)
	if err != nil {
		return nil, us.mapError(err, id, "delete user")
	}

	zerolog.Ctx(ctx).Info().
		Int("user_id", user.ID).
		Msg("user deleted")

	return &model.DeleteUserResponse{
		Message: "User deleted successfully",
		User:    user,
	}, nil
}

// mapError converts repository failures into API errors.
func (us *UserService) mapError(err error, id int, op string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errs.NewUserNotFoundError(id)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errs.NewDuplicateEmailError()
	default:
		return errs.NewInternalServerError(errors.Wrap(err, op))
	}
}
