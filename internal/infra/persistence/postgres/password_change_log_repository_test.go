package postgres

import (
	"testing"
	"time"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordChangeLogRepository_AppendAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewPasswordChangeLogRepository(db)
	ctx := t.Context()

	manager := createTestUser(t, db, "manager")
	alice := createTestUser(t, db, "alice")

	reason := "forgot password"
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := []*entity.PasswordChangeLog{
		{ActorID: alice.ID, TargetID: alice.ID, Timestamp: base},
		{ActorID: manager.ID, TargetID: alice.ID, Reason: &reason, Timestamp: base.Add(time.Minute)},
		{ActorID: manager.ID, TargetID: manager.ID, Timestamp: base.Add(2 * time.Minute)},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Append(ctx, entry))
		assert.NotZero(t, entry.ID)
	}
	assert.Less(t, entries[0].ID, entries[1].ID)

	logs, err := repo.ListRecent(ctx, 200)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, entries[2].ID, logs[0].ID)
	assert.Equal(t, entries[0].ID, logs[2].ID)
	require.NotNil(t, logs[1].Reason)
	assert.Equal(t, reason, *logs[1].Reason)
	assert.Nil(t, logs[0].Reason)
	assert.Nil(t, logs[0].IP)

	limited, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, entries[2].ID, limited[0].ID)
	assert.Equal(t, entries[1].ID, limited[1].ID)
}

func TestPasswordChangeLogRepository_AppendFillsTimestamp(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	entry := &entity.PasswordChangeLog{ActorID: user.ID, TargetID: user.ID}
	require.NoError(t, NewPasswordChangeLogRepository(db).Append(t.Context(), entry))

	assert.False(t, entry.Timestamp.IsZero())
	assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Minute)
}

func TestPasswordChangeLogRepository_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	err := NewPasswordChangeLogRepository(db).Append(t.Context(), &entity.PasswordChangeLog{
		ActorID:  user.ID,
		TargetID: uuid.New(),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrAuditReferenceInvalid), "got %v", err)
}
