package impl

import (
	"context"

	"passwarden/internal/domain/entity"
	"passwarden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// auditLog appends password change entries inside the caller's transaction.
type auditLog struct {
	logs repository.PasswordChangeLogRepository
}

func newAuditLog(logs repository.PasswordChangeLogRepository) *auditLog {
	return &auditLog{logs: logs}
}

// record appends one entry. Empty reason or origin are stored as absent.
func (a *auditLog) record(ctx context.Context, actorID, targetID uuid.UUID, reason, origin string) (*entity.PasswordChangeLog, error) {
	entry := &entity.PasswordChangeLog{
		ActorID:  actorID,
		TargetID: targetID,
		Reason:   optional(reason),
		IP:       optional(origin),
	}

	if err := a.logs.Append(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to append password change log")
	}

	return entry, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
