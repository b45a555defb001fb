package impl

import (
	"context"
	"fmt"
	"log/slog"

	"passwarden/config"
	deliverycontext "passwarden/internal/delivery/context"
	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/policy"
	"passwarden/internal/domain/repository"
	"passwarden/internal/domain/service"
	"passwarden/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordService implements the PasswordUsecase interface.
// Each mutation and its audit entry are written in one transaction.
type passwordService struct {
	txManager          repository.TransactionManager
	logRepo            repository.PasswordChangeLogRepository
	hasher             service.PasswordHasher
	policy             service.PasswordPolicy
	metrics            service.MetricsRecorder
	defaultResetReason string
	maxListLimit       int
	logger             *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	LogRepo        repository.PasswordChangeLogRepository
	Hasher         service.PasswordHasher
	PasswordPolicy service.PasswordPolicy
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	defaultResetReason := entity.ReasonAdminReset
	maxListLimit := config.DefaultMaxListLimit
	if params.Config != nil && params.Config.Audit != nil {
		if params.Config.Audit.DefaultResetReason != "" {
			defaultResetReason = params.Config.Audit.DefaultResetReason
		}
		if params.Config.Audit.MaxListLimit > 0 {
			maxListLimit = params.Config.Audit.MaxListLimit
		}
	}

	return &passwordService{
		txManager:          params.TxManager,
		logRepo:            params.LogRepo,
		hasher:             params.Hasher,
		policy:             params.PasswordPolicy,
		metrics:            params.Metrics,
		defaultResetReason: defaultResetReason,
		maxListLimit:       maxListLimit,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangeOwnPassword replaces the actor's password after re-verifying the current one.
func (srv *passwordService) ChangeOwnPassword(ctx context.Context, actor *entity.Actor, input *usecase.ChangeOwnPasswordInput) error {
	target := uuid.Nil
	if actor != nil {
		target = actor.UserID
	}
	if err := authorize(ctx, srv.log(ctx), srv.metrics, actor, policy.OpChangeOwnPassword, target); err != nil {
		return err
	}

	if input.CurrentPassword == "" {
		return domainerrors.ErrInvalidInput.WithDetails("current_password is required")
	}
	if err := srv.policy.Validate(input.NewPassword); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store := newCredentialStore(repoFactory.UserRepo(), srv.hasher)

		user, err := store.findForUpdate(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrCurrentPasswordIncorrect
		}

		if err := store.updatePassword(ctx, user.ID, input.NewPassword); err != nil {
			return err
		}

		_, err = newAuditLog(repoFactory.PasswordChangeLogRepo()).
			record(ctx, actor.UserID, actor.UserID, entity.ReasonSelfChange, actor.Origin)

		return err
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrCurrentPasswordIncorrect) {
			srv.log(ctx).Warn("Password change rejected: current password incorrect",
				slog.String("user_id", actor.UserID.String()))
		}

		return err
	}

	srv.metrics.RecordPasswordChange(entity.ReasonSelfChange)
	srv.log(ctx).Info("Password changed", slog.String("user_id", actor.UserID.String()))

	return nil
}

// AdminResetPassword replaces the target's password without proof of the current one.
// Only password managers pass authorization; the audit entry records who did it.
func (srv *passwordService) AdminResetPassword(ctx context.Context, actor *entity.Actor, input *usecase.AdminResetPasswordInput) error {
	if err := authorize(ctx, srv.log(ctx), srv.metrics, actor, policy.OpAdminResetPassword, input.TargetUserID); err != nil {
		return err
	}

	if err := srv.policy.Validate(input.NewPassword); err != nil {
		return err
	}

	reason := input.Reason
	if reason == "" {
		reason = srv.defaultResetReason
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store := newCredentialStore(repoFactory.UserRepo(), srv.hasher)

		target, err := store.findForUpdate(ctx, input.TargetUserID)
		if err != nil {
			return err
		}

		if err := store.updatePassword(ctx, target.ID, input.NewPassword); err != nil {
			return err
		}

		_, err = newAuditLog(repoFactory.PasswordChangeLogRepo()).
			record(ctx, actor.UserID, target.ID, reason, actor.Origin)

		return err
	})
	if err != nil {
		return err
	}

	srv.metrics.RecordPasswordChange(entity.ReasonAdminReset)
	srv.log(ctx).Warn("Administrative password reset",
		slog.String("actor_id", actor.UserID.String()),
		slog.String("target_id", input.TargetUserID.String()),
		slog.String("reason", reason),
	)

	return nil
}

// GrantManager promotes the target to password manager.
func (srv *passwordService) GrantManager(ctx context.Context, actor *entity.Actor, targetUserID uuid.UUID) (*entity.User, error) {
	if err := authorize(ctx, srv.log(ctx), srv.metrics, actor, policy.OpGrantManager, targetUserID); err != nil {
		return nil, err
	}

	var target *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store := newCredentialStore(repoFactory.UserRepo(), srv.hasher)

		var err error
		target, err = store.findForUpdate(ctx, targetUserID)
		if err != nil {
			return err
		}
		if target.IsManager() {
			return nil
		}

		if err := store.setRole(ctx, target.ID, entity.RolePasswordManager); err != nil {
			return err
		}
		target.Role = entity.RolePasswordManager

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Warn("Password manager role granted",
		slog.String("actor_id", actor.UserID.String()),
		slog.String("target_id", target.ID.String()),
	)

	return target, nil
}

// ListLogs returns the most recent audit entries, newest first.
func (srv *passwordService) ListLogs(ctx context.Context, actor *entity.Actor, limit int) ([]*entity.PasswordChangeLog, error) {
	if err := authorize(ctx, srv.log(ctx), srv.metrics, actor, policy.OpViewAuditLog, uuid.Nil); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = srv.maxListLimit
	}
	if limit < 0 || limit > srv.maxListLimit {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("limit must be between 1 and %d", srv.maxListLimit))
	}

	logs, err := srv.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list password change logs")
	}

	return logs, nil
}
