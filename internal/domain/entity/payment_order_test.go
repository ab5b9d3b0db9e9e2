package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusCanTransitionTo(t *testing.T) {
	statuses := []PaymentStatus{StatusCreated, StatusSuccess, StatusFailed, StatusRefunded}
	legal := map[PaymentStatus]map[PaymentStatus]bool{
		StatusCreated: {StatusSuccess: true, StatusFailed: true},
		StatusSuccess: {StatusRefunded: true},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, legal[from][to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusCreated.IsTerminal())
	assert.True(t, StatusSuccess.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, PaymentStatus("PENDING").IsValid())
}

func TestNewPaymentOrder(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("should create order in CREATED state with defaults", func(t *testing.T) {
		order, err := NewPaymentOrder("id-1", "user-1", "order_ABC", 50000, "", 500, "", "rcpt_1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusCreated, order.Status)
		assert.Equal(t, DefaultCurrency, order.Currency)
		assert.Equal(t, DefaultPaymentMethod, order.PaymentMethod)
		assert.Equal(t, int64(500), order.CreditsPurchased)
		assert.Equal(t, int64(50000), order.AmountMinorUnits)
		assert.Empty(t, order.GatewayPaymentID)
		assert.Equal(t, fixedTime, order.CreatedAt)
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := NewPaymentOrder("id-1", "", "order_ABC", 100, "INR", 1, "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewPaymentOrder("id-1", "user-1", "", 100, "INR", 1, "", "", mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewPaymentOrder("id-1", "user-1", "order_ABC", 100, "INR", 0, "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidCredits)
	})
}

func TestPaymentOrderTransition(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()

	order, err := NewPaymentOrder("id-1", "user-1", "order_ABC", 100, "INR", 1, "", "", mockTime)
	require.NoError(t, err)

	t.Run("should allow CREATED to SUCCESS", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(later).Once()

		err := order.Transition(StatusSuccess, mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, order.Status)
		assert.Equal(t, later, order.UpdatedAt)
	})

	t.Run("should reject SUCCESS to FAILED", func(t *testing.T) {
		err := order.Transition(StatusFailed, mockTime)

		var te *errs.TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "SUCCESS", te.From)
		assert.Equal(t, "FAILED", te.To)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, StatusSuccess, order.Status)
	})

	t.Run("should reject leaving REFUNDED", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(later).Once()
		require.NoError(t, order.Transition(StatusRefunded, mockTime))

		for _, next := range []PaymentStatus{StatusCreated, StatusSuccess, StatusFailed, StatusRefunded} {
			assert.ErrorIs(t, order.Transition(next, mockTime), errs.ErrIllegalTransition)
		}
	})
}
