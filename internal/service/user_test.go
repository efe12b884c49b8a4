package service

import (
	"context"
	"testing"

	"github.com/deppfellow/user-api/internal/config"
	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/logger"
	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()

	s, err := server.New(config.DefaultConfig(), logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(s, repository.NewRepositories(s))
	require.NoError(t, err)
	return services.User
}

func TestUserService_CreateAndGet(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, model.UserInput{Name: "Bob", Email: "BOB@EX.com"})
	require.NoError(t, err)
	assert.Equal(t, &model.User{ID: 1, Name: "Bob", Email: "BOB@EX.com"}, created)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.CreateUser(ctx, model.UserInput{Name: "X", Email: "bob@ex.com"})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindDuplicateEmail))
	assert.Equal(t, "User with this email already exists", err.Error())
}

func TestUserService_NotFound(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.GetUser(ctx, 999999)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
	assert.Equal(t, "User with ID 999999 not found", err.Error())

	_, err = svc.UpdateUser(ctx, 7, model.UserInput{Name: "A", Email: "a@b.c"})
	assert.Equal(t, "User with ID 7 not found", err.Error())

	_, err = svc.DeleteUser(ctx, 7)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestUserService_Delete(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, model.UserInput{Name: "A", Email: "a@b.c"})
	require.NoError(t, err)

	res, err := svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", res.Message)
	assert.Equal(t, *created, res.User)

	assert.Empty(t, svc.ListUsers(ctx))
}
