package postgres

import (
	"testing"
	"time"

	"passwarden/internal/domain/entity"
	"passwarden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := t.Context()
	user := createTestUser(t, db, "alice")

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		IPAddress: "192.0.2.1",
		UserAgent: "test-agent",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "192.0.2.1", found.IPAddress)

	require.NoError(t, repo.Delete(ctx, session.ID))
	_, err = repo.FindByID(ctx, session.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	// Deleting twice is harmless.
	require.NoError(t, repo.Delete(ctx, session.ID))
}

func TestSessionRepository_Expired(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := t.Context()
	user := createTestUser(t, db, "alice")

	expired := &entity.Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)}
	live := &entity.Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, live))

	_, err := repo.FindByID(ctx, expired.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindByID(ctx, live.ID)
	assert.NoError(t, err)
}
