package middleware

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "passwarden/internal/delivery/context"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/errors"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per completed request.
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, latency time.Duration)
}

// AccessLogConfig controls AccessLog. Requests are always observed; they are logged only in debug mode.
type AccessLogConfig struct {
	Logger   *slog.Logger
	Debug    bool
	Observer RequestObserver
}

// AccessLog measures every request and, in debug mode, writes one structured line per request.
func AccessLog(cfg AccessLogConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				// The error handler has not rendered yet, so the status is still the default.
				status = statusOf(err)
			}

			if cfg.Observer != nil {
				cfg.Observer.ObserveHTTPRequest(c.Request().Method, routeOf(c), status, latency)
			}
			if cfg.Debug {
				logRequest(cfg.Logger, c, status, latency, err)
			}

			return err
		}
	}
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// routeOf keeps label cardinality bounded: the route pattern, never the raw path.
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

func logRequest(logger *slog.Logger, c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if actor := deliverycontext.GetActor(c); actor != nil {
		attrs = append(attrs, slog.String("actor_id", actor.UserID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}
