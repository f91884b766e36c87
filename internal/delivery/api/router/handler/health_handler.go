package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"crm/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		ping: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		},
		logger: params.Logger,
	}
}

// HealthCheck is a public endpoint; it needs no authentication
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
