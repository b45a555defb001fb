package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passwarden/config"
	"passwarden/internal/domain/entity"
	"passwarden/internal/domain/repository"
	mockRepo "passwarden/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Audit: &config.AuditConfig{
			DefaultResetReason: entity.ReasonAdminReset,
			MaxListLimit:       config.DefaultMaxListLimit,
		},
	}
}

// expectTransaction makes txManager run the callback against a factory handing out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo *mockRepo.MockUserRepository,
	logRepo *mockRepo.MockPasswordChangeLogRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().PasswordChangeLogRepo().Return(logRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newActor(role entity.Role) *entity.Actor {
	return &entity.Actor{
		UserID:    uuid.New(),
		Username:  "actor",
		Role:      role,
		SessionID: uuid.New(),
		Origin:    "192.0.2.7",
	}
}
