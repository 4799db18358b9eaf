package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/documenso/singleplayer/internal/middleware"
	"github.com/documenso/singleplayer/internal/server"
)

// HealthHandler exposes a "system" endpoint that uptime monitors and load
// balancers can use to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// sampleRequest is a minimal valid creation request used to exercise the
// validator on every health check.
func sampleRequest() map[string]any {
	return map[string]any{
		"documentData": map[string]any{"data": "health", "type": "BYTES_64"},
		"documentName": "health.pdf",
		"signer": map[string]any{
			"email":      "health@localhost.dev",
			"name":       "",
			"signature":  "",
			"customText": "",
		},
		"fields":    []any{},
		"fieldMeta": nil,
	}
}

// CheckHealth returns service status and a validator self-check.
//
// It returns 200 when the validator accepts the built-in sample request
// and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	validatorStart := time.Now()
	if _, err := h.server.Validator.Validate(sampleRequest()); err != nil {
		checks["validator"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(validatorStart).String(),
			"error":         err.Error(),
		}
		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(validatorStart)).
			Msg("validator health check failed")
	} else {
		checks["validator"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(validatorStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
