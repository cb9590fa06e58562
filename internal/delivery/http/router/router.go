// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wildtrack/internal/delivery/http/router/handler"
	"wildtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SampleHandler *handler.SampleDataHandler
	HealthHandler *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sampleHandler *handler.SampleDataHandler
	healthHandler *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sampleHandler: params.SampleHandler,
		healthHandler: params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health, info and metrics passthroughs
	e.GET("/health", r.healthHandler.Health)
	e.GET("/health/db", r.healthHandler.DBHealth)
	e.GET("/info", r.healthHandler.Info)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Sample-data routes
	sampleGroup := e.Group("/sample")
	{
		sampleGroup.POST("/seed", r.sampleHandler.Seed)
		sampleGroup.GET("/verify", r.sampleHandler.Verify)
		sampleGroup.POST("/seed-verify", r.sampleHandler.SeedAndVerify)
	}
}
