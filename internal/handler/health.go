package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/listings-api/internal/config"
	"github.com/deppfellow/listings-api/internal/middleware"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/labstack/echo/v4"
)

var errNotConfigured = errors.New("not configured")

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck probes one dependency. required marks checks whose
// failure makes the whole service unhealthy.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) checks() []dependencyCheck {
	cfg := h.server.Config.Observability.HealthChecks

	var checks []dependencyCheck
	for _, name := range cfg.Checks {
		switch name {
		case config.HealthCheckDatabase:
			checks = append(checks, dependencyCheck{
				name:     name,
				required: true,
				ping: func(ctx context.Context) error {
					if h.server.DB == nil {
						return errNotConfigured
					}
					return h.server.DB.Ping(ctx)
				},
			})
		case config.HealthCheckSchema:
			checks = append(checks, dependencyCheck{
				name:     name,
				required: true,
				ping: func(ctx context.Context) error {
					if h.server.DB == nil {
						return errNotConfigured
					}
					return h.server.DB.CheckSchema(ctx)
				},
			})
		case config.HealthCheckRedis:
			// Redis only backs the job queue, so it is reported but never fatal.
			checks = append(checks, dependencyCheck{
				name: name,
				ping: func(ctx context.Context) error {
					if h.server.Redis == nil {
						return errNotConfigured
					}
					return h.server.Redis.Ping(ctx).Err()
				},
			})
		}
	}
	return checks
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := h.server.Config.Observability.HealthChecks

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if cfg.Enabled {
		for _, check := range h.checks() {
			ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
			checkStart := time.Now()
			err := check.ping(ctx)
			cancel()
			elapsed := time.Since(checkStart)

			if err != nil {
				checks[check.name] = map[string]any{
					"status":        "unhealthy",
					"response_time": elapsed.String(),
					"error":         err.Error(),
				}

				if check.required {
					isHealthy = false
				}

				logger.Error().
					Err(err).
					Str("check", check.name).
					Dur("response_time", elapsed).
					Msg("health check failed")

				if app := h.server.LoggerService.GetApplication(); app != nil {
					app.RecordCustomEvent("HealthCheckError", map[string]any{
						"check_type":       check.name,
						"operation":        "health_check",
						"error_type":       check.name + "_unhealthy",
						"response_time_ms": elapsed.Milliseconds(),
						"error_message":    err.Error(),
					})
				}
				continue
			}

			checks[check.name] = map[string]any{
				"status":        "healthy",
				"response_time": elapsed.String(),
			}

			logger.Debug().
				Str("check", check.name).
				Dur("response_time", elapsed).
				Msg("health check passed")
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
