package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/mocks"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	active := &model.Principal{
		ID:           uuid.New(),
		Email:        "agent@example.com",
		Role:         model.RoleAgent,
		PasswordHash: hashed,
		Active:       true,
	}

	newService := func(principals *mocks.MockPrincipalRepositoryIface) *service.PrincipalService {
		return service.NewPrincipalService(
			principals,
			mocks.NewMockClientGrantRepositoryIface(ctrl),
			hasher,
			auth.NewTokenManager("test_secret", time.Hour),
		)
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		principals.EXPECT().
			FindByEmail(gomock.Any(), "agent@example.com").
			Return(active, nil)

		output, err := newService(principals).Authenticate(context.Background(), "agent@example.com", "correct_password")
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, active.ID, output.Principal.ID)
	})

	t.Run("wrong password fails closed", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		principals.EXPECT().
			FindByEmail(gomock.Any(), "agent@example.com").
			Return(active, nil)

		_, err := newService(principals).Authenticate(context.Background(), "agent@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error as a bad password", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		principals.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.ErrPrincipalNotFound)

		_, err := newService(principals).Authenticate(context.Background(), "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		inactive := &model.Principal{
			ID:           uuid.New(),
			Email:        "gone@example.com",
			PasswordHash: hashed,
			Active:       false,
		}
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		principals.EXPECT().
			FindByEmail(gomock.Any(), "gone@example.com").
			Return(inactive, nil)

		_, err := newService(principals).Authenticate(context.Background(), "gone@example.com", "correct_password")
		assert.ErrorIs(t, err, domain.ErrPrincipalInactive)
	})
}

func TestReplaceGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	superAdmin := &model.Principal{ID: uuid.New(), Role: model.RoleSuperAdmin, Active: true}
	targetID := uuid.New()

	t.Run("replaces grants for a scoped principal", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		grants := mocks.NewMockClientGrantRepositoryIface(ctrl)
		svc := service.NewPrincipalService(principals, grants, hasher, tokenManager)

		clientIDs := []uuid.UUID{uuid.New(), uuid.New()}
		principals.EXPECT().
			FindByID(gomock.Any(), targetID).
			Return(&model.Principal{ID: targetID, Role: model.RoleClientAdmin, Active: true}, nil)
		grants.EXPECT().
			ReplaceForPrincipal(gomock.Any(), targetID, clientIDs).
			Return(nil)

		err := svc.ReplaceGrants(context.Background(), superAdmin, targetID, clientIDs)
		assert.NoError(t, err)
	})

	t.Run("refuses grants on a global role", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		grants := mocks.NewMockClientGrantRepositoryIface(ctrl)
		svc := service.NewPrincipalService(principals, grants, hasher, tokenManager)

		principals.EXPECT().
			FindByID(gomock.Any(), targetID).
			Return(&model.Principal{ID: targetID, Role: model.RoleAgent, Active: true}, nil)

		err := svc.ReplaceGrants(context.Background(), superAdmin, targetID, []uuid.UUID{uuid.New()})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("non-administrators are refused outright", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		grants := mocks.NewMockClientGrantRepositoryIface(ctrl)
		svc := service.NewPrincipalService(principals, grants, hasher, tokenManager)

		agent := &model.Principal{ID: uuid.New(), Role: model.RoleAgent, Active: true}
		err := svc.ReplaceGrants(context.Background(), agent, targetID, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)
	superAdmin := &model.Principal{ID: uuid.New(), Role: model.RoleSuperAdmin, Active: true}

	t.Run("flips active to false without deleting", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		grants := mocks.NewMockClientGrantRepositoryIface(ctrl)
		svc := service.NewPrincipalService(principals, grants, hasher, tokenManager)

		targetID := uuid.New()
		principals.EXPECT().
			FindByID(gomock.Any(), targetID).
			Return(&model.Principal{ID: targetID, Role: model.RoleAgent, Active: true}, nil)
		principals.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Principal) error {
				assert.False(t, p.Active)
				return nil
			})

		err := svc.Deactivate(context.Background(), superAdmin, targetID)
		assert.NoError(t, err)
	})

	t.Run("deactivating twice is a no-op", func(t *testing.T) {
		principals := mocks.NewMockPrincipalRepositoryIface(ctrl)
		grants := mocks.NewMockClientGrantRepositoryIface(ctrl)
		svc := service.NewPrincipalService(principals, grants, hasher, tokenManager)

		targetID := uuid.New()
		principals.EXPECT().
			FindByID(gomock.Any(), targetID).
			Return(&model.Principal{ID: targetID, Role: model.RoleAgent, Active: false}, nil)

		err := svc.Deactivate(context.Background(), superAdmin, targetID)
		assert.NoError(t, err)
	})
}
