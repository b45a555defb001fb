package postgres

import (
	"testing"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsBothWrites(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	txManager := NewTransactionManager(db)
	ctx := t.Context()

	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().UpdatePasswordHash(ctx, user.ID, "rotated"); err != nil {
			return err
		}

		return repos.PasswordChangeLogRepo().Append(ctx, &entity.PasswordChangeLog{ActorID: user.ID, TargetID: user.ID})
	})
	require.NoError(t, err)

	stored, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "rotated", stored.PasswordHash)

	logs, err := NewPasswordChangeLogRepository(db).ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	txManager := NewTransactionManager(db)
	ctx := t.Context()
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().UpdatePasswordHash(ctx, user.ID, "rotated"); err != nil {
			return err
		}

		return errBoom
	})
	assert.True(t, errors.Is(err, errBoom))

	stored, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestTransactionManager_FailedAuditRollsBackMutation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	txManager := NewTransactionManager(db)
	ctx := t.Context()

	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().UpdatePasswordHash(ctx, user.ID, "rotated"); err != nil {
			return err
		}

		// Target does not exist, so the audit insert fails.
		return repos.PasswordChangeLogRepo().Append(ctx, &entity.PasswordChangeLog{ActorID: user.ID})
	})
	require.Error(t, err)

	stored, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)

	logs, err := NewPasswordChangeLogRepository(db).ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	txManager := NewTransactionManager(db)
	ctx := t.Context()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			_ = repos.UserRepo().UpdateRole(ctx, user.ID, entity.RolePasswordManager)
			panic("unexpected")
		})
	})

	stored, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStandard, stored.Role)
}

func TestTransactionManager_BeginFailureIsTransactionFailed(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	err = NewTransactionManager(db).Execute(t.Context(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TRANSACTION_FAILED", appErr.ErrorCode())
}
