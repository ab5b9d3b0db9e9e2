package credit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/credit-engine/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerMocks struct {
	uow    *persistencemocks.MockUnitOfWork
	users  *persistencemocks.MockUserRepository
	grants *persistencemocks.MockCreditGrantRepository
	ids    *coremocks.MockIDGenerator
}

func newTestLedger(t *testing.T) (*Ledger, ledgerMocks) {
	m := ledgerMocks{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		users:  persistencemocks.NewMockUserRepository(t),
		grants: persistencemocks.NewMockCreditGrantRepository(t),
		ids:    coremocks.NewMockIDGenerator(t),
	}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	// Run the callback inline, the way a joined transaction would
	m.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).Maybe()

	return NewLedger(m.uow, m.users, m.grants, m.ids, mockTime, coremocks.NewPermissiveLogger(t)), m
}

func TestGrantCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("should record grant and increment paid credits", func(t *testing.T) {
		// Arrange
		ledger, m := newTestLedger(t)
		m.ids.EXPECT().NewID().Return("grant-1").Once()
		m.grants.EXPECT().Create(mock.Anything, mock.MatchedBy(func(g *entity.CreditGrant) bool {
			return g.ID == "grant-1" && g.UserID == "user-1" && g.GatewayPaymentID == "pay_1" && g.Credits == 100
		})).Return(nil).Once()
		m.users.EXPECT().IncrementPaidCredits(mock.Anything, "user-1", int64(100)).
			Return(&entity.User{ID: "user-1", FreeCredits: 100, PaidCredits: 100}, nil).Once()

		// Act
		user, err := ledger.GrantCredits(ctx, "user-1", 100, "pay_1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(200), user.AvailableCredits())
	})

	t.Run("should not increment balance on duplicate grant", func(t *testing.T) {
		ledger, m := newTestLedger(t)
		m.ids.EXPECT().NewID().Return("grant-2").Once()
		m.grants.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateGrant).Once()

		user, err := ledger.GrantCredits(ctx, "user-1", 100, "pay_1")

		assert.ErrorIs(t, err, errs.ErrDuplicateGrant)
		assert.Nil(t, user)
		m.users.AssertNotCalled(t, "IncrementPaidCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should surface increment failures", func(t *testing.T) {
		ledger, m := newTestLedger(t)
		m.ids.EXPECT().NewID().Return("grant-3").Once()
		m.grants.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.users.EXPECT().IncrementPaidCredits(mock.Anything, "user-1", int64(5)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := ledger.GrantCredits(ctx, "user-1", 5, "pay_2")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should reject invalid input without touching storage", func(t *testing.T) {
		ledger, _ := newTestLedger(t)

		testCases := []struct {
			name      string
			userID    string
			credits   int64
			paymentID string
			check     func(error) bool
		}{
			{"zero credits", "user-1", 0, "pay_1", func(err error) bool { return errors.Is(err, errs.ErrInvalidCredits) }},
			{"negative credits", "user-1", -10, "pay_1", func(err error) bool { return errors.Is(err, errs.ErrInvalidCredits) }},
			{"empty user", "", 10, "pay_1", func(err error) bool { return errors.Is(err, errs.ErrInvalidUserID) }},
			{"empty payment", "user-1", 10, " ", errs.IsValidationError},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ledger.GrantCredits(ctx, tc.userID, tc.credits, tc.paymentID)
				assert.True(t, tc.check(err))
			})
		}
	})
}
