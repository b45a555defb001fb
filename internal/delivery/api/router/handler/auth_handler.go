// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"passwarden/config"
	"passwarden/internal/delivery/api/middleware"
	"passwarden/internal/delivery/api/response"
	deliverycontext "passwarden/internal/delivery/context"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
		now:    time.Now,
	}
}

// CredentialsRequest is the body of the register and login endpoints.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserIDResponse identifies the user an operation applied to.
type UserIDResponse struct {
	UserID string `json:"user_id"`
}

// Register handles account creation. New users always receive the standard role.
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UserIDResponse{UserID: user.ID.String()})
}

// Login verifies the credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	maxAge := int(output.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	c.SetCookie(middleware.SessionCookie(h.cfg, output.SessionToken, maxAge))

	return response.Success(c, http.StatusOK, UserIDResponse{UserID: output.User.ID.String()})
}

// Logout ends the current session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context(), deliverycontext.GetActor(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(middleware.SessionCookie(h.cfg, "", -1))

	return response.Success(c, http.StatusOK, map[string]string{"status": "logged_out"})
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
