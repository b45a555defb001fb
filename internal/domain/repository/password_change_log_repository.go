package repository

import (
	"context"

	"passwarden/internal/domain/entity"
)

// PasswordChangeLogRepository is the append-only store behind the audit trail.
// It exposes no update or delete operation.
type PasswordChangeLogRepository interface {
	// Append inserts a new entry and fills in its ID and Timestamp.
	Append(ctx context.Context, log *entity.PasswordChangeLog) error

	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.PasswordChangeLog, error)
}
