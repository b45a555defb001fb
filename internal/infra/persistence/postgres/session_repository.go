package postgres

import (
	"context"
	"time"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"
	"passwarden/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository stores login sessions in the 'sessions' table.
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := &model.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
		ExpiresAt: session.ExpiresAt.UTC(),
		CreatedAt: session.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Omit("User").Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID returns the session if it exists and has not expired.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, repo.now()).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.Session{
		ID:        sessionM.ID,
		UserID:    sessionM.UserID,
		IPAddress: sessionM.IPAddress,
		UserAgent: sessionM.UserAgent,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

// Delete removes the session. Missing sessions are ignored.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired removes sessions that expired before now and returns how many were removed.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", repo.now()).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}
