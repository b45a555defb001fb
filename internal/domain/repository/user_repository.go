// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passwarden/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate is FindByID that also locks the row until the surrounding transaction ends
	// on databases that support row locks.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by exact (case-sensitive) username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity. A duplicate username yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored hash. Returns ErrUserNotFound when no row matched.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateRole overwrites the role. Returns ErrUserNotFound when no row matched.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
