package auth

import (
	"testing"
	"time"

	"passwarden/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidateSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.SessionTTL())

	userID := uuid.New()
	sessionID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := jwtService.GenerateSessionToken(userID, sessionID, expiresAt)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ValidateSessionToken("invalid.token.string")
	assert.Error(t, err)

	_, err = jwtService.ValidateSessionToken("")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.GenerateSessionToken(uuid.New(), uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret"))
	require.NoError(t, err)

	token, err := jwtService.GenerateSessionToken(uuid.New(), uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = jwtService.ValidateSessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret"))
	require.NoError(t, err)

	claims := sessionClaims{
		SessionID: uuid.NewString(),
		Type:      sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateSessionToken(unsigned)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	secret := "test_session_secret"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	claims := sessionClaims{
		SessionID: uuid.NewString(),
		Type:      "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = jwtService.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
