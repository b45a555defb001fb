// Package postgres contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production database; SQLite is supported for development and tests.
package postgres

import (
	"context"

	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"
	"passwarden/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a GORM transaction and hands out repositories bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction is also a *gorm.DB
}

// UserRepo returns a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// PasswordChangeLogRepo returns an audit log repository bound to the transaction.
func (f *gormRepositoryFactory) PasswordChangeLogRepo() repository.PasswordChangeLogRepository {
	return NewPasswordChangeLogRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction. The transaction is rolled back when fn
// returns an error or panics, and committed otherwise.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Join(domainerrors.ErrTransactionFailed, errors.Wrap(tx.Error, "failed to begin transaction"))
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the business error; the rollback failure is only context.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Join(domainerrors.ErrTransactionFailed, errors.Wrap(err, "failed to commit transaction"))
	}

	return nil
}
