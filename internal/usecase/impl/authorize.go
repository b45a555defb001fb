// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"passwarden/internal/domain/entity"
	"passwarden/internal/domain/policy"
	"passwarden/internal/domain/service"

	"github.com/google/uuid"
)

// authorize applies the policy decision table and records denials.
func authorize(ctx context.Context, logger *slog.Logger, metrics service.MetricsRecorder, actor *entity.Actor, op policy.Operation, target uuid.UUID) error {
	err := policy.Authorize(actor, op, target)
	if err == nil {
		return nil
	}

	metrics.RecordAuthorizationDenial(op.String())

	attrs := []slog.Attr{slog.String("operation", op.String()), slog.Any("error", err)}
	if actor.IsAuthenticated() {
		attrs = append(attrs,
			slog.String("actor_id", actor.UserID.String()),
			slog.String("actor_role", actor.Role.String()),
		)
	}
	if target != uuid.Nil {
		attrs = append(attrs, slog.String("target_id", target.String()))
	}
	logger.LogAttrs(ctx, slog.LevelWarn, "Authorization denied", attrs...)

	return err
}
