package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters as suggested by the x/crypto argon2.IDKey documentation:
// one pass over 64 MiB with four lanes.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // KiB, i.e. 64 MiB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 16        // salt length in bytes
	argon2KeyLen  = 32        // output length in bytes
)

const argon2Prefix = "$argon2id$"

// argon2idHasher hashes passwords with argon2id and encodes them in PHC string format.
type argon2idHasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2idHasher creates an argon2id hasher with the recommended parameters.
func NewArgon2idHasher() *argon2idHasher {
	return &argon2idHasher{time: argon2Time, memory: argon2Memory, threads: argon2Threads}
}

// Hash produces $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func (h *argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argon2KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check recomputes the key with the parameters stored in the hash. Malformed hashes never match.
func (h *argon2idHasher) Check(password, encodedHash string) bool {
	params, salt, expected, err := decodeArgon2id(encodedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1
}

func decodeArgon2id(encodedHash string) (*argon2idHasher, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, errors.New("invalid argon2id hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, errors.Wrap(err, "invalid argon2id version")
	}
	if version != argon2.Version {
		return nil, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, nil, errors.Wrap(err, "invalid argon2id parameters")
	}
	if threads == 0 || threads > 255 || time == 0 || memory == 0 {
		return nil, nil, nil, errors.New("argon2id parameters out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "invalid argon2id salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "invalid argon2id key")
	}
	if len(key) == 0 || len(key) > 1024 {
		return nil, nil, nil, errors.Errorf("invalid argon2id key length %d", len(key))
	}

	return &argon2idHasher{time: time, memory: memory, threads: uint8(threads)}, salt, key, nil
}

func isArgon2idHash(hash string) bool {
	return strings.HasPrefix(hash, argon2Prefix)
}
