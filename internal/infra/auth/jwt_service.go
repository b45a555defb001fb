package auth

import (
	"time"

	"passwarden/config"
	"passwarden/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionTokenType = "session"

// sessionClaims is the JWT payload stored in the session cookie.
type sessionClaims struct {
	SessionID string `json:"sid"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    cfg.Auth.SessionTTL,
		now:    time.Now,
	}, nil
}

// GenerateSessionToken signs an HS256 token binding userID to sessionID.
func (s *jwtService) GenerateSessionToken(userID, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID.String(),
		Type:      sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks the signature, algorithm, expiry and token type.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	if claims.Type != sessionTokenType {
		return nil, errors.New("unexpected token type")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in session token")
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session id in session token")
	}

	return &service.SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SessionTTL returns the configured lifetime of new sessions.
func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}
