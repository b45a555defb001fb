// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record of a single account.
// PasswordHash never leaves the persistence and usecase layers; handlers map users to response DTOs.
type User struct {
	ID           uuid.UUID // System-assigned identifier, immutable.
	Username     string    // Unique login name, stored case-sensitive and never changed after creation.
	PasswordHash string    // Encoded output of the configured PasswordHasher.
	Role         Role      // Either RoleStandard or RolePasswordManager.
	CreatedAt    time.Time // Set once when the record is inserted.
	UpdatedAt    time.Time
}

// IsManager reports whether the user holds the password manager role.
func (u *User) IsManager() bool {
	return u != nil && u.Role == RolePasswordManager
}
