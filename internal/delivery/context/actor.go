package context

import (
	"passwarden/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetActor stores the actor resolved from the session cookie.
func SetActor(c echo.Context, actor *entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the authenticated actor, or nil for anonymous requests.
func GetActor(c echo.Context) *entity.Actor {
	actor, _ := c.Get(string(KeyActor)).(*entity.Actor)

	return actor
}
