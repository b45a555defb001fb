package impl

import (
	"context"
	"testing"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/domain/repository"
	mockRepo "passwarden/internal/mocks/repository"
	mockSvc "passwarden/internal/mocks/service"
	"passwarden/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bootstrapServiceFixtures struct {
	service    usecase.BootstrapUsecase
	txManager  *mockRepo.MockTransactionManager
	txUserRepo *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
	policy     *mockSvc.MockPasswordPolicy
}

func createTestBootstrapService(t *testing.T) bootstrapServiceFixtures {
	fx := bootstrapServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		txUserRepo: mockRepo.NewMockUserRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		policy:     mockSvc.NewMockPasswordPolicy(t),
	}

	fx.service = NewBootstrapService(BootstrapServiceParams{
		TxManager:      fx.txManager,
		Hasher:         fx.hasher,
		PasswordPolicy: fx.policy,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestBootstrapService_EnsureManager_CreatesUser(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.txUserRepo, nil)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, "root").Return(nil, repository.ErrUserNotFound)
	fx.policy.EXPECT().Validate("s3cret").Return(nil)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "root" && user.Role == entity.RolePasswordManager
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)

	output, err := fx.service.EnsureManager(ctx, " root ", "s3cret")

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, entity.RolePasswordManager, output.User.Role)
}

func TestBootstrapService_EnsureManager_PromotesExisting(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Username: "bob", Role: entity.RoleStandard}

	expectTransaction(t, fx.txManager, fx.txUserRepo, nil)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, "bob").Return(existing, nil)
	fx.txUserRepo.EXPECT().UpdateRole(ctx, existing.ID, entity.RolePasswordManager).Return(nil)

	output, err := fx.service.EnsureManager(ctx, "bob", "")

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, entity.RolePasswordManager, output.User.Role)
}

func TestBootstrapService_EnsureManager_AlreadyManager(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Username: "bob", Role: entity.RolePasswordManager}

	expectTransaction(t, fx.txManager, fx.txUserRepo, nil)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, "bob").Return(existing, nil)

	output, err := fx.service.EnsureManager(ctx, "bob", "ignored")

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestBootstrapService_EnsureManager_RequiresUsername(t *testing.T) {
	fx := createTestBootstrapService(t)

	_, err := fx.service.EnsureManager(context.Background(), " ", "pw")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestBootstrapService_PromoteByUsername(t *testing.T) {
	t.Run("promotes", func(t *testing.T) {
		fx := createTestBootstrapService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Username: "carol", Role: entity.RoleStandard}

		expectTransaction(t, fx.txManager, fx.txUserRepo, nil)
		fx.txUserRepo.EXPECT().FindByUsername(ctx, "carol").Return(user, nil)
		fx.txUserRepo.EXPECT().UpdateRole(ctx, user.ID, entity.RolePasswordManager).Return(nil)

		promoted, err := fx.service.PromoteByUsername(ctx, "carol")

		require.NoError(t, err)
		assert.Equal(t, entity.RolePasswordManager, promoted.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestBootstrapService(t)

		expectTransaction(t, fx.txManager, fx.txUserRepo, nil)
		fx.txUserRepo.EXPECT().FindByUsername(mock.Anything, "nobody").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.PromoteByUsername(context.Background(), "nobody")

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
