package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reasons recorded for password changes when the caller does not supply one.
const (
	ReasonSelfChange = "self-change"
	ReasonAdminReset = "admin-reset"
)

// PasswordChangeLog is one append-only audit entry describing a successful password mutation.
type PasswordChangeLog struct {
	ID        uint64    // Monotonically assigned by the store.
	ActorID   uuid.UUID // Who performed the change.
	TargetID  uuid.UUID // Whose password changed; equals ActorID for self-service changes.
	Reason    *string
	IP        *string
	Timestamp time.Time
}

