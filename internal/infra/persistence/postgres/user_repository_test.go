package postgres

import (
	"testing"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	user := createTestUser(t, db, "alice")
	assert.Equal(t, uuid.Version(7), user.ID.Version())
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, entity.RoleStandard, byID.Role)
	assert.Equal(t, user.PasswordHash, byID.PasswordHash)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	locked, err := repo.FindByIDForUpdate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, locked.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = repo.UpdatePasswordHash(ctx, uuid.New(), "hash")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = repo.UpdateRole(ctx, uuid.New(), entity.RolePasswordManager)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "alice")

	err := repo.Create(t.Context(), &entity.User{Username: "alice", PasswordHash: "x", Role: entity.RoleStandard})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists), "got %v", err)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "alice")
	other := createTestUser(t, db, "Alice")

	found, err := NewUserRepository(db).FindByUsername(t.Context(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.ID)
}

func TestUserRepository_Updates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()
	user := createTestUser(t, db, "bob")

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "new-hash"))
	require.NoError(t, repo.UpdateRole(ctx, user.ID, entity.RolePasswordManager))
	// Granting an existing role matches the row and succeeds.
	require.NoError(t, repo.UpdateRole(ctx, user.ID, entity.RolePasswordManager))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Equal(t, entity.RolePasswordManager, updated.Role)
}
