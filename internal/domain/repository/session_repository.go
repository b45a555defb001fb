package repository

import (
	"context"
	"errors"

	"passwarden/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists login sessions. Implementations exist for the SQL database and for redis.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID returns a live session or ErrSessionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired purges expired sessions and reports how many were removed.
	// Stores with native expiry return zero.
	DeleteExpired(ctx context.Context) (int64, error)
}
