package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/credit-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/credit-engine/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (*UserUseCase, *persistencemocks.MockUserRepository, *coremocks.MockIDGenerator) {
	mockRepo := persistencemocks.NewMockUserRepository(t)
	mockIDs := coremocks.NewMockIDGenerator(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	mockLogger := coremocks.NewPermissiveLogger(t)

	return NewUserUseCase(mockRepo, mockIDs, mockTime, mockLogger, entity.DefaultFreeCredits), mockRepo, mockIDs
}

func TestResolveUser(t *testing.T) {
	ctx := context.Background()
	existing := &entity.User{ID: "user-1", PhoneNumber: "9876543210", FreeCredits: 100}

	t.Run("should resolve by ID first", func(t *testing.T) {
		// Arrange
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(existing, nil).Once()

		// Act
		user, err := uc.ResolveUser(ctx, usecase.UserRef{UserID: " user-1 ", PhoneNumber: "9876543210"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, existing, user)
		mockRepo.AssertNotCalled(t, "GetByPhoneNumber", mock.Anything, mock.Anything)
	})

	t.Run("should resolve by phone number", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByPhoneNumber(mock.Anything, "9876543210").Return(existing, nil).Once()

		user, err := uc.ResolveUser(ctx, usecase.UserRef{PhoneNumber: "9876543210"})

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("should not create unknown users", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByPhoneNumber(mock.Anything, "9123456789").Return(nil, errs.ErrUserNotFound).Once()

		user, err := uc.ResolveUser(ctx, usecase.UserRef{PhoneNumber: "9123456789"})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject malformed phone numbers", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		_, err := uc.ResolveUser(ctx, usecase.UserRef{PhoneNumber: "12-34"})

		assert.ErrorIs(t, err, errs.ErrInvalidPhoneNumber)
	})

	t.Run("should require an identifier", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		_, err := uc.ResolveUser(ctx, usecase.UserRef{})

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestGetCreditBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should derive available credits", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").
			Return(&entity.User{ID: "user-1", FreeCredits: 100, PaidCredits: 500, UsedCredits: 40}, nil).Once()

		balance, err := uc.GetCreditBalance(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, int64(560), balance.AvailableCredits)
		assert.Equal(t, int64(500), balance.PaidCredits)
	})

	t.Run("should surface not found", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.GetCreditBalance(ctx, "missing")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should reject empty ID", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		_, err := uc.GetCreditBalance(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("should create user with default free credits", func(t *testing.T) {
		// Arrange
		uc, mockRepo, mockIDs := newTestUseCase(t)
		mockIDs.EXPECT().NewID().Return("generated-id").Once()
		mockRepo.EXPECT().GetByPhoneNumber(mock.Anything, "9876543210").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "generated-id" && u.FreeCredits == entity.DefaultFreeCredits && u.PaidCredits == 0
		})).Return(nil).Once()

		// Act
		user, err := uc.CreateUser(ctx, "9876543210", nil)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "generated-id", user.ID)
		assert.Equal(t, int64(100), user.AvailableCredits())
	})

	t.Run("should honour explicit free credits", func(t *testing.T) {
		uc, mockRepo, mockIDs := newTestUseCase(t)
		free := int64(0)
		mockIDs.EXPECT().NewID().Return("generated-id").Once()
		mockRepo.EXPECT().GetByPhoneNumber(mock.Anything, "9876543210").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		user, err := uc.CreateUser(ctx, "9876543210", &free)

		require.NoError(t, err)
		assert.Zero(t, user.FreeCredits)
	})

	t.Run("should reject duplicate phone numbers", func(t *testing.T) {
		uc, mockRepo, mockIDs := newTestUseCase(t)
		mockIDs.EXPECT().NewID().Return("generated-id").Once()
		mockRepo.EXPECT().GetByPhoneNumber(mock.Anything, "9876543210").Return(&entity.User{ID: "other"}, nil).Once()

		_, err := uc.CreateUser(ctx, "9876543210", nil)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("should reject invalid phone numbers before touching storage", func(t *testing.T) {
		uc, _, mockIDs := newTestUseCase(t)
		mockIDs.EXPECT().NewID().Return("generated-id").Once()

		_, err := uc.CreateUser(ctx, "abc", nil)

		assert.ErrorIs(t, err, errs.ErrInvalidPhoneNumber)
	})
}

func TestCreateDefaultUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("should create only missing users", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "user_demo_1").Return(&entity.User{ID: "user_demo_1"}, nil).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, "user_demo_2").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, "user_demo_3").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().GetByPhoneNumber(mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound).Twice()
		mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Twice()

		err := uc.CreateDefaultUsers(ctx)

		require.NoError(t, err)
	})

	t.Run("should stop on storage errors", func(t *testing.T) {
		uc, mockRepo, _ := newTestUseCase(t)
		dbErr := errors.New("connection refused")
		mockRepo.EXPECT().GetByID(mock.Anything, "user_demo_1").Return(nil, dbErr).Once()

		err := uc.CreateDefaultUsers(ctx)

		assert.ErrorIs(t, err, dbErr)
	})
}
