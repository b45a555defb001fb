package usecase

import (
	"context"

	"passwarden/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeOwnPasswordInput carries the proof of the current password and its replacement.
type ChangeOwnPasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AdminResetPasswordInput defines a manager-initiated reset. Reason is optional.
type AdminResetPasswordInput struct {
	TargetUserID uuid.UUID
	NewPassword  string
	Reason       string
}

// PasswordUsecase defines password mutations, role grants and audit log access.
// Every method authorizes the actor before touching any data.
type PasswordUsecase interface {
	ChangeOwnPassword(ctx context.Context, actor *entity.Actor, input *ChangeOwnPasswordInput) error

	// AdminResetPassword replaces the target's password without knowledge of the current one.
	AdminResetPassword(ctx context.Context, actor *entity.Actor, input *AdminResetPasswordInput) error

	// GrantManager promotes the target to RolePasswordManager. Granting twice is not an error.
	GrantManager(ctx context.Context, actor *entity.Actor, targetUserID uuid.UUID) (*entity.User, error)

	// ListLogs returns up to limit audit entries, newest first. A zero limit selects the maximum.
	ListLogs(ctx context.Context, actor *entity.Actor, limit int) ([]*entity.PasswordChangeLog, error)
}
