// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	domainerrors "passwarden/internal/domain/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordBytes is the input limit of bcrypt; longer inputs would be silently truncated by older
// implementations and are rejected by x/crypto.
const bcryptMaxPasswordBytes = 72

// bcryptHasher hashes passwords with bcrypt. bcrypt generates its own salt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt hasher with the default cost.
func NewBcryptHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost returns a bcrypt hasher; out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", domainerrors.ErrPasswordPolicy.WithDetails("password must not exceed 72 bytes")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
