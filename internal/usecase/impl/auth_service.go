package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

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

// dummyPassword is hashed once and verified against when a login names an unknown user,
// so both failure paths spend the same hashing work.
const dummyPassword = "passwarden-timing-equaliser"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	dummyHash    func() string
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	SessionRepo    repository.SessionRepository
	Hasher         service.PasswordHasher
	PasswordPolicy service.PasswordPolicy
	TokenService   service.TokenService
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		policy:       params.PasswordPolicy,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
	srv.dummyHash = sync.OnceValue(func() string {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare dummy password hash", slog.Any("error", err))
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a standard user with a unique username.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := authorize(ctx, srv.log(ctx), srv.metrics, nil, policy.OpRegister, uuid.Nil); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		srv.metrics.RecordRegistration(service.ResultInvalid)

		return nil, domainerrors.ErrInvalidInput.WithDetails("username is required")
	}
	if err := srv.policy.Validate(input.Password); err != nil {
		srv.metrics.RecordRegistration(service.ResultInvalid)

		return nil, err
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = newCredentialStore(repoFactory.UserRepo(), srv.hasher).
			createUser(ctx, username, input.Password, entity.RoleStandard)

		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrUserAlreadyExists):
			srv.metrics.RecordRegistration(service.ResultConflict)
		case errors.Is(err, domainerrors.ErrPasswordPolicy):
			srv.metrics.RecordRegistration(service.ResultInvalid)
		default:
			srv.metrics.RecordRegistration(service.ResultError)
		}

		return nil, err
	}

	srv.metrics.RecordRegistration(service.ResultSuccess)
	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()), slog.String("username", user.Username))

	return user, nil
}

// Login verifies the credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := authorize(ctx, srv.log(ctx), srv.metrics, nil, policy.OpLogin, uuid.Nil); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		srv.metrics.RecordLogin(service.ResultInvalid)

		return nil, domainerrors.ErrInvalidInput.WithDetails("username and password are required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		srv.metrics.RecordLogin(service.ResultError)

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user == nil {
		srv.hasher.Check(input.Password, srv.dummyHash())

		return nil, srv.loginFailed(ctx, username)
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, srv.loginFailed(ctx, username)
	}

	sessionID, err := uuid.NewV7()
	if err != nil {
		srv.metrics.RecordLogin(service.ResultError)

		return nil, errors.Wrap(err, "failed to generate session id")
	}

	now := srv.now()
	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		ExpiresAt: now.Add(srv.tokenService.SessionTTL()),
		CreatedAt: now,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.metrics.RecordLogin(service.ResultError)

		return nil, errors.Wrap(err, "failed to create session")
	}

	token, err := srv.tokenService.GenerateSessionToken(user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		srv.metrics.RecordLogin(service.ResultError)
		if delErr := srv.sessionRepo.Delete(ctx, session.ID); delErr != nil {
			srv.log(ctx).Warn("Failed to discard unused session", slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.metrics.RecordLogin(service.ResultSuccess)
	srv.log(ctx).Info("User logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("session_id", session.ID.String()),
	)

	return &usecase.LoginOutput{
		User:         user,
		SessionToken: token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// loginFailed records the failure and returns the single error shared by every credential mismatch.
func (srv *authService) loginFailed(ctx context.Context, username string) error {
	srv.metrics.RecordLogin(service.ResultFailure)
	srv.log(ctx).Warn("Login failed", slog.String("username", username))

	return domainerrors.ErrInvalidCredentials
}

// Logout deletes the actor's session.
func (srv *authService) Logout(ctx context.Context, actor *entity.Actor) error {
	if err := authorize(ctx, srv.log(ctx), srv.metrics, actor, policy.OpLogout, uuid.Nil); err != nil {
		return err
	}

	if err := srv.sessionRepo.Delete(ctx, actor.SessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out",
		slog.String("user_id", actor.UserID.String()),
		slog.String("session_id", actor.SessionID.String()),
	)

	return nil
}

// Authenticate validates the session token, checks the session is still live and reloads the user
// so the returned actor carries the current role.
func (srv *authService) Authenticate(ctx context.Context, token, origin string) (*entity.Actor, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.UserID != claims.UserID {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return &entity.Actor{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: session.ID,
		Origin:    origin,
	}, nil
}
