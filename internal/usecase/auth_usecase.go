// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"passwarden/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the credentials and request origin of a login attempt.
type LoginInput struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

// --- Output DTOs ---

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	User         *entity.User
	SessionToken string
	ExpiresAt    time.Time
}

// AuthUsecase defines registration, login and session handling.
type AuthUsecase interface {
	// Register creates a standard user.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and opens a session. Unknown usernames and wrong passwords
	// fail with the same error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout ends the actor's session.
	Logout(ctx context.Context, actor *entity.Actor) error

	// Authenticate resolves a session token into the acting user.
	Authenticate(ctx context.Context, token, origin string) (*entity.Actor, error)
}
