package middleware

import (
	"log/slog"
	"net/http"

	"passwarden/config"
	"passwarden/internal/delivery/api/response"
	deliverycontext "passwarden/internal/delivery/context"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/policy"
	"passwarden/internal/domain/service"
	"passwarden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Config  *config.Config
	Metrics service.MetricsRecorder `optional:"true"`
	Logger  *slog.Logger            `optional:"true"`
}

// AuthMiddleware resolves the session cookie into an authenticated actor and gates
// role-restricted routes before their bodies are read.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthMiddleware{
		authUC:     params.AuthUC,
		cookieName: params.Config.Auth.CookieName,
		metrics:    params.Metrics,
		logger:     logger,
	}
}

// Authenticate rejects requests without a live session with 401 UNAUTHORIZED.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		actor, err := m.authUC.Authenticate(c.Request().Context(), cookie.Value, c.RealIP())
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// Authorize applies the policy decision for op to the actor set by Authenticate, so a caller
// without the required role gets 403 even when the request body is invalid.
// Operations that depend on the target user are still decided by the usecases.
func (m *AuthMiddleware) Authorize(op policy.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if err := policy.Authorize(actor, op, uuid.Nil); err != nil {
				if m.metrics != nil {
					m.metrics.RecordAuthorizationDenial(op.String())
				}

				attrs := []slog.Attr{slog.String("operation", op.String()), slog.Any("error", err)}
				if actor.IsAuthenticated() {
					attrs = append(attrs,
						slog.String("actor_id", actor.UserID.String()),
						slog.String("actor_role", actor.Role.String()),
					)
				}
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					LogAttrs(c.Request().Context(), slog.LevelWarn, "Authorization denied", attrs...)

				return response.HandleAppError(c, err)
			}

			return next(c)
		}
	}
}

// SessionCookie builds the cookie carrying a session token.
func SessionCookie(cfg *config.Config, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
