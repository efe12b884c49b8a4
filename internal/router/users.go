package router

import (
	"net/http"

	"github.com/deppfellow/user-api/internal/handler"
	"github.com/deppfellow/user-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerUserRoutes mounts the user resource under /users.
//
//	GET    /users      list
//	GET    /users/:id  get
//	POST   /users      validate -> create
//	PUT    /users/:id  validate -> update
//	DELETE /users/:id  delete
//
// GET routes also answer HEAD.
func registerUserRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	users := r.Group("/users")

	addRoute(users, http.MethodGet, "", h.User.ListUsers())
	addRoute(users, http.MethodGet, "/:id", h.User.GetUser())
	addRoute(users, http.MethodPost, "", h.User.CreateUser(), m.UserValidator.ValidateUser)
	addRoute(users, http.MethodPut, "/:id", h.User.UpdateUser(), m.UserValidator.ValidateUser)
	addRoute(users, http.MethodDelete, "/:id", h.User.DeleteUser())
}
