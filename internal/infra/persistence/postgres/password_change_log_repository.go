package postgres

import (
	"context"
	"time"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"
	"passwarden/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passwordChangeLogRepository implements repository.PasswordChangeLogRepository. It only inserts and reads.
type passwordChangeLogRepository struct {
	db *gorm.DB
}

// NewPasswordChangeLogRepository is the constructor for passwordChangeLogRepository.
func NewPasswordChangeLogRepository(db *gorm.DB) repository.PasswordChangeLogRepository {
	return &passwordChangeLogRepository{
		db: db,
	}
}

// Append inserts one audit entry and fills in its ID and Timestamp.
func (repo *passwordChangeLogRepository) Append(ctx context.Context, log *entity.PasswordChangeLog) error {
	logM := fromPasswordChangeLogDomain(log)
	if logM.Timestamp.IsZero() {
		logM.Timestamp = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Omit("Actor", "Target").Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAuditReferenceInvalid
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append password change log")
	}

	log.ID = logM.ID
	log.Timestamp = logM.Timestamp

	return nil
}

// ListRecent returns at most limit entries ordered newest first.
func (repo *passwordChangeLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.PasswordChangeLog, error) {
	var logModels []*model.PasswordChangeLogModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list password change logs")
	}

	logs := make([]*entity.PasswordChangeLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toPasswordChangeLogDomain(logM))
	}

	return logs, nil
}

func toPasswordChangeLogDomain(data *model.PasswordChangeLogModel) *entity.PasswordChangeLog {
	return &entity.PasswordChangeLog{
		ID:        data.ID,
		ActorID:   data.ActorID,
		TargetID:  data.TargetID,
		Reason:    data.Reason,
		IP:        data.IP,
		Timestamp: data.Timestamp,
	}
}

func fromPasswordChangeLogDomain(data *entity.PasswordChangeLog) *model.PasswordChangeLogModel {
	return &model.PasswordChangeLogModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		TargetID:  data.TargetID,
		Reason:    data.Reason,
		IP:        data.IP,
		Timestamp: data.Timestamp,
	}
}
