// Package middleware holds the transport-level echo middleware shared by every route.
package middleware

import (
	"log/slog"

	deliverycontext "passwarden/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request IDs before they reach the logs.
const maxRequestIDLength = 128

// RequestID accepts the caller's X-Request-Id or mints one, echoes it back and
// derives a request-scoped logger that the usecases pick up from the context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			deliverycontext.SetRequestID(c, id)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

			ctx := deliverycontext.WithRequestID(c.Request().Context(), id)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", id)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
