// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"identity/config"
	"identity/internal/delivery/api/middleware"
	"identity/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	// Profile completion is reachable before any session exists.
	completionPath := r.profileHandler.CompletionPath()
	e.GET(completionPath, r.profileHandler.ShowForm)
	e.POST(completionPath, r.profileHandler.Complete)

	// Landing resource
	e.GET(r.landingPath(), r.userHandler.Home, r.authMiddleware.Authenticate)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.PUT("/password", r.userHandler.ChangePassword)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
}

func (r *router) landingPath() string {
	if r.config.Auth != nil && r.config.Auth.LandingPath != "" {
		return r.config.Auth.LandingPath
	}

	return config.DefaultLandingPath
}
