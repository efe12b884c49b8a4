package handler

import (
	"net/http"

	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/labstack/echo/v4"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// InfoHandler serves the static API descriptor.
type InfoHandler struct {
	Handler
}

// NewInfoHandler constructs an InfoHandler.
func NewInfoHandler(s *server.Server) *InfoHandler {
	return &InfoHandler{
		Handler: NewHandler(s),
	}
}

// GetInfo describes the API and its top-level endpoints.
func (h *InfoHandler) GetInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, model.APIInfo{
		Message: "User Management API",
		Version: APIVersion,
		Endpoints: model.APIEndpoints{
			Users:  "/users",
			Health: "/health",
		},
	})
}
