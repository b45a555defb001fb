package impl

import (
	"context"
	"log/slog"
	"strings"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"
	"passwarden/internal/domain/service"
	"passwarden/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bootstrapService implements the BootstrapUsecase interface.
type bootstrapService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	policy    service.PasswordPolicy
	logger    *slog.Logger
}

// BootstrapServiceParams holds dependencies for BootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	PasswordPolicy service.PasswordPolicy
	Logger         *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		policy:    params.PasswordPolicy,
		logger:    params.Logger,
	}
}

// EnsureManager creates username as a password manager, or promotes it if it already exists.
func (srv *bootstrapService) EnsureManager(ctx context.Context, username, password string) (*usecase.EnsureManagerOutput, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("username is required")
	}

	output := &usecase.EnsureManagerOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.UserRepo()
		store := newCredentialStore(users, srv.hasher)

		existing, err := users.FindByUsername(ctx, username)
		switch {
		case err == nil:
			output.User = existing
			if existing.IsManager() {
				return nil
			}
			if err := store.setRole(ctx, existing.ID, entity.RolePasswordManager); err != nil {
				return err
			}
			existing.Role = entity.RolePasswordManager

			return nil
		case errors.Is(err, repository.ErrUserNotFound):
			if err := srv.policy.Validate(password); err != nil {
				return err
			}
			output.User, err = store.createUser(ctx, username, password, entity.RolePasswordManager)
			output.Created = err == nil

			return err
		default:
			return errors.Wrap(err, "failed to find user")
		}
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Warn("Password manager provisioned out of band",
		slog.String("user_id", output.User.ID.String()),
		slog.String("username", output.User.Username),
		slog.Bool("created", output.Created),
	)

	return output, nil
}

// PromoteByUsername grants the password manager role to an existing user.
func (srv *bootstrapService) PromoteByUsername(ctx context.Context, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("username is required")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.UserRepo()

		var err error
		user, err = users.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsManager() {
			return nil
		}

		if err := newCredentialStore(users, srv.hasher).setRole(ctx, user.ID, entity.RolePasswordManager); err != nil {
			return err
		}
		user.Role = entity.RolePasswordManager

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Warn("Password manager role granted out of band",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return user, nil
}
