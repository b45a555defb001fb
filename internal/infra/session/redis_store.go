// Package session provides the login session stores and selects one from configuration.
package session

import (
	"context"
	"encoding/json"
	"time"

	"passwarden/internal/domain/entity"
	"passwarden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "passwarden:session:"

// redisRecord is the JSON value stored under each session key.
type redisRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// redisStore keeps sessions in redis with a key TTL matching the session expiry.
type redisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	now       func() time.Time
}

// NewRedisStore returns a SessionRepository backed by redis.
func NewRedisStore(client redis.UniversalClient, keyPrefix string) repository.SessionRepository {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisStore{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (s *redisStore) key(id uuid.UUID) string {
	return s.keyPrefix + id.String()
}

// Create stores the session until its expiry.
func (s *redisStore) Create(ctx context.Context, session *entity.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	payload, err := json.Marshal(redisRecord{
		UserID:    session.UserID,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := s.client.Set(ctx, s.key(session.ID), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

// FindByID returns the live session or repository.ErrSessionNotFound.
func (s *redisStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var record redisRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	session := &entity.Session{
		ID:        id,
		UserID:    record.UserID,
		IPAddress: record.IPAddress,
		UserAgent: record.UserAgent,
		ExpiresAt: record.ExpiresAt,
		CreatedAt: record.CreatedAt,
	}
	if session.IsExpiredAt(s.now()) {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session key.
func (s *redisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired is a no-op; redis expires keys itself.
func (s *redisStore) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}
