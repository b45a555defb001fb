package postgres

import (
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. GORM's translated errors cover most cases;
// the driver-level checks catch errors surfaced without translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if pgErrorCode(err) == pgerrcode.UniqueViolation {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
