package auth

import (
	"passwarden/config"
	"passwarden/internal/domain/service"
)

// passwordHasher hashes with the configured algorithm and verifies any supported encoding,
// so switching auth.hasher does not invalidate existing users' passwords.
type passwordHasher struct {
	primary service.PasswordHasher
	bcrypt  *bcryptHasher
	argon2  *argon2idHasher
}

// NewPasswordHasher builds the PasswordHasher selected by auth.hasher.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	h := &passwordHasher{
		bcrypt: NewBcryptHasherWithCost(cfg.Auth.BcryptCost),
		argon2: NewArgon2idHasher(),
	}

	switch cfg.Auth.Hasher {
	case config.HasherArgon2id:
		h.primary = h.argon2
	default:
		h.primary = h.bcrypt
	}

	return h
}

// Hash generates a salted hash using the primary algorithm.
func (h *passwordHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

// Check dispatches on the hash encoding prefix.
func (h *passwordHasher) Check(password, hash string) bool {
	switch {
	case isArgon2idHash(hash):
		return h.argon2.Check(password, hash)
	case isBcryptHash(hash):
		return h.bcrypt.Check(password, hash)
	default:
		return false
	}
}
