package entity

import "github.com/google/uuid"

// Actor is the authenticated identity performing a request.
// It is produced by the session layer and passed explicitly into every operation that needs authorization.
type Actor struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	SessionID uuid.UUID
	// Origin is the network address of the request as observed by the delivery layer.
	Origin string
}

// IsAuthenticated reports whether the actor carries a real user identity.
func (a *Actor) IsAuthenticated() bool {
	return a != nil && a.UserID != uuid.Nil
}
