package auth

import (
	"strings"
	"testing"

	"passwarden/config"
	domainerrors "passwarden/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLengthPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{
		PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 8, MaxLength: 64},
	})

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "empty", password: "", wantErr: domainerrors.ErrInvalidInput},
		{name: "too short", password: "short", wantErr: domainerrors.ErrPasswordPolicy},
		{name: "minimum", password: "12345678"},
		{name: "maximum", password: strings.Repeat("x", 64)},
		{name: "too long", password: strings.Repeat("x", 65), wantErr: domainerrors.ErrPasswordPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLengthPolicy_NoMaximum(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{
		PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 1},
	})

	assert.NoError(t, policy.Validate(strings.Repeat("x", 4096)))
}
