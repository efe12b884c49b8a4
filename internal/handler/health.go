package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/user-api/internal/lib/utils"
	"github.com/deppfellow/user-api/internal/middleware"
	"github.com/deppfellow/user-api/internal/model"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the endpoint uptime monitors and load balancers
// use to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports the service as up with the current time.
//
// The store lives in process memory, so there is no dependency to check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	response := model.HealthStatus{
		Status:    "OK",
		Timestamp: utils.Now(),
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
