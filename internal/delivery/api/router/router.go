// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passwarden/config"
	"passwarden/internal/delivery/api/middleware"
	"passwarden/internal/delivery/api/router/handler"
	"passwarden/internal/domain/policy"
	"passwarden/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PasswordHandler *handler.PasswordHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Recorder
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	passwordHandler *handler.PasswordHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		passwordHandler: params.PasswordHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Route-level middleware keeps unknown top-level paths answering 404 rather than 401.
	e.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	e.POST("/change_password", r.passwordHandler.ChangeOwnPassword, r.authMiddleware.Authenticate)

	// Role checks run before any handler reads the body; the usecases repeat them.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/change_password/:user_id", r.passwordHandler.AdminResetPassword,
			r.authMiddleware.Authorize(policy.OpAdminResetPassword))
		adminGroup.POST("/set_manager/:user_id", r.passwordHandler.GrantManager,
			r.authMiddleware.Authorize(policy.OpGrantManager))
		adminGroup.GET("/logs", r.passwordHandler.ListLogs,
			r.authMiddleware.Authorize(policy.OpViewAuditLog))
	}
}

// RegisterMetricsRoute exposes the prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.metrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
