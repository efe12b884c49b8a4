package handler

import (
	"net/http"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/middleware"
	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/deppfellow/user-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the /users resource.
type UserHandler struct {
	Handler
	userService *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
		return h.userService.ListUsers(c.Request().Context()), nil
	}, http.StatusOK, newEmptyRequest)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UserIDRequest) (*model.User, error) {
		return h.userService.GetUser(c.Request().Context(), req.ID)
	}, http.StatusOK, newUserIDRequest)
}

// CreateUser handles POST /users. It expects ValidateUser to run first.
func (h *UserHandler) CreateUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) (*model.User, error) {
		input, err := userInput(c)
		if err != nil {
			return nil, err
		}
		return h.userService.CreateUser(c.Request().Context(), *input)
	}, http.StatusCreated, newEmptyRequest)
}

// UpdateUser handles PUT /users/:id. It expects ValidateUser to run first.
//
// The id is checked before the payload is used, so a bad id is reported
// as InvalidID and a missing user as NotFound before any email conflict.
func (h *UserHandler) UpdateUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UserIDRequest) (*model.User, error) {
		input, err := userInput(c)
		if err != nil {
			return nil, err
		}
		return h.userService.UpdateUser(c.Request().Context(), req.ID, *input)
	}, http.StatusOK, newUserIDRequest)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UserIDRequest) (*model.DeleteUserResponse, error) {
		return h.userService.DeleteUser(c.Request().Context(), req.ID)
	}, http.StatusOK, newUserIDRequest)
}

// userInput fetches the payload published by the validator middleware.
// Its absence means the route was wired without ValidateUser.
func userInput(c echo.Context) (*model.UserInput, error) {
	input, ok := middleware.GetUserInput(c)
	if !ok {
		return nil, errs.NewInternalServerError(errors.New("user payload was not validated"))
	}
	return input, nil
}
