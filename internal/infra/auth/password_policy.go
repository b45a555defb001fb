package auth

import (
	"fmt"

	"passwarden/config"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/service"
)

// lengthPolicy enforces byte-length bounds on new passwords.
type lengthPolicy struct {
	minLength int
	maxLength int
}

// NewPasswordPolicy builds the policy from passwordPolicy config.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	return &lengthPolicy{
		minLength: cfg.PasswordPolicy.MinLength,
		maxLength: cfg.PasswordPolicy.MaxLength,
	}
}

// Validate rejects empty passwords and passwords outside the configured bounds.
func (p *lengthPolicy) Validate(password string) error {
	if password == "" {
		return domainerrors.ErrInvalidInput.WithDetails("password must not be empty")
	}
	if len(password) < p.minLength {
		return domainerrors.ErrPasswordPolicy.WithDetails(fmt.Sprintf("password must be at least %d characters long", p.minLength))
	}
	if p.maxLength > 0 && len(password) > p.maxLength {
		return domainerrors.ErrPasswordPolicy.WithDetails(fmt.Sprintf("password must be at most %d characters long", p.maxLength))
	}

	return nil
}
