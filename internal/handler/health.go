package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/auth-validation/internal/server"
	"github.com/deppfellow/auth-validation/internal/validation"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the endpoint load balancers and uptime monitors
// use to verify the service is alive.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports overall status, timestamp, environment and the
// schemas this instance serves. The service has no external dependencies,
// so a running process is a healthy one.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := h.logger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"schemas": map[string]interface{}{
				"status": "healthy",
				"loaded": []string{validation.LoginSchema.Name(), validation.SignupSchema.Name()},
			},
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
