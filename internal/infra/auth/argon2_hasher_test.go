package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2idHasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2idHasher()

	hash, err := hasher.Hash("s3cret-passphrase")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	assert.True(t, hasher.Check("s3cret-passphrase", hash))
	assert.False(t, hasher.Check("s3cret-passphrasE", hash))
}

func TestArgon2idHasher_CheckMalformed(t *testing.T) {
	hasher := NewArgon2idHasher()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "wrong algorithm", hash: "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{name: "bad version", hash: "$argon2id$v=1$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{name: "bad params", hash: "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$a2V5"},
		{name: "zero threads", hash: "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5"},
		{name: "bad salt", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5"},
		{name: "empty key", hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
		{name: "too few parts", hash: "$argon2id$v=19$m=65536,t=1,p=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Check("password", tt.hash))
			})
		})
	}
}
