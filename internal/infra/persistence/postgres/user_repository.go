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
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate locks the row with SELECT ... FOR UPDATE on PostgreSQL.
// SQLite runs one writer at a time, so a plain read is sufficient there.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	db := repo.db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	return repo.findOne(ctx, db, "id = ?", id)
}

// FindByUsername retrieves a user by exact, case-sensitive username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "username = ?", username)
}

func (repo *userRepository) findOne(_ context.Context, db *gorm.DB, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := db.Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The ID is generated when unset.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash}, "failed to update password hash")
}

// UpdateRole overwrites the user's role.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	return repo.updateColumns(ctx, id, map[string]any{"role": role.String()}, "failed to update role")
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         entity.ParseRole(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleStandard
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
