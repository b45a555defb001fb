package postgres

import (
	"passwarden/internal/errors"
	"passwarden/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the users, password_change_logs and sessions tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.PasswordChangeLogModel{},
		&model.SessionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
