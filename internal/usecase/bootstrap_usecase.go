package usecase

import (
	"context"

	"passwarden/internal/domain/entity"
)

// EnsureManagerOutput reports the resulting manager and whether it was newly created.
type EnsureManagerOutput struct {
	User    *entity.User
	Created bool
}

// BootstrapUsecase provisions password managers out of band, without an acting user.
// It backs the operator CLI and the optional startup seed.
type BootstrapUsecase interface {
	// EnsureManager creates the user as a manager, or promotes an existing user.
	// The password is only used when the user has to be created.
	EnsureManager(ctx context.Context, username, password string) (*EnsureManagerOutput, error)

	// PromoteByUsername grants RolePasswordManager to an existing user.
	PromoteByUsername(ctx context.Context, username string) (*entity.User, error)
}
