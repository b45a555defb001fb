package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the verified content of a session cookie.
type SessionClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// TokenService signs and verifies the token stored in the session cookie.
type TokenService interface {
	// GenerateSessionToken returns a signed token binding the user to the session until expiresAt.
	GenerateSessionToken(userID, sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// ValidateSessionToken verifies the signature and expiry and returns the claims.
	ValidateSessionToken(token string) (*SessionClaims, error)

	// SessionTTL returns the configured lifetime of new sessions.
	SessionTTL() time.Duration
}
