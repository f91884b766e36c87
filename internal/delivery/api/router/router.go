// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	DuplicateHandler *handler.DuplicateHandler
	DismissalHandler *handler.DismissalHandler
	MergeHandler     *handler.MergeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler    *handler.HealthHandler
	duplicateHandler *handler.DuplicateHandler
	dismissalHandler *handler.DismissalHandler
	mergeHandler     *handler.MergeHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:    params.HealthHandler,
		duplicateHandler: params.DuplicateHandler,
		dismissalHandler: params.DismissalHandler,
		mergeHandler:     params.MergeHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Duplicate detection routes
	customersGroup := apiV1.Group("/customers")
	{
		customersGroup.GET("/:id/duplicates", r.duplicateHandler.FindDuplicates)
	}

	// "Not a duplicate" ledger routes
	dismissalsGroup := apiV1.Group("/merge-dismissals")
	{
		dismissalsGroup.POST("", r.dismissalHandler.Dismiss)
		dismissalsGroup.DELETE("", r.dismissalHandler.Undismiss)
		dismissalsGroup.GET("", r.dismissalHandler.ListDismissed)
	}

	// Merge routes
	mergesGroup := apiV1.Group("/merges")
	{
		mergesGroup.GET("/preview", r.mergeHandler.Preview)
		mergesGroup.POST("", r.mergeHandler.Merge)
		mergesGroup.GET("", r.mergeHandler.ListMerges)
		mergesGroup.GET("/:id", r.mergeHandler.GetMerge)
		mergesGroup.POST("/:id/undo", r.mergeHandler.Undo)
	}
}
