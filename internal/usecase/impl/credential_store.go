package impl

import (
	"context"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"
	"passwarden/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialStore owns user records for the duration of one transaction.
// Plaintext passwords enter here and only hashes leave for the repository.
type credentialStore struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
}

func newCredentialStore(users repository.UserRepository, hasher service.PasswordHasher) *credentialStore {
	return &credentialStore{users: users, hasher: hasher}
}

// createUser stores a new standard user.
func (s *credentialStore) createUser(ctx context.Context, username, password string, role entity.Role) (*entity.User, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// findForUpdate loads and locks the user, translating absence to ErrUserNotFound.
func (s *credentialStore) findForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// updatePassword replaces the user's password hash.
func (s *credentialStore) updatePassword(ctx context.Context, id uuid.UUID, password string) error {
	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, id, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

// setRole overwrites the user's role.
func (s *credentialStore) setRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update role")
	}

	return nil
}

func (s *credentialStore) hash(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		// Policy rejections from the hasher (e.g. bcrypt's length cap) are client errors.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return "", err
		}

		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	if hash == "" {
		return "", domainerrors.ErrPasswordHashFailed
	}

	return hash, nil
}
