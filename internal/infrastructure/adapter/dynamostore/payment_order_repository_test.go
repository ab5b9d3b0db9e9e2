package dynamostore

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/logger"
)

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newOrder(gatewayOrderID, userID string, createdAt time.Time) *entity.PaymentOrder {
	return &entity.PaymentOrder{
		ID:               "id-" + gatewayOrderID,
		UserID:           userID,
		GatewayOrderID:   gatewayOrderID,
		AmountMinorUnits: 5000,
		Currency:         "INR",
		CreditsPurchased: 50,
		Status:           entity.StatusCreated,
		PaymentMethod:    "razorpay",
		Receipt:          "rcpt_" + gatewayOrderID,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
}

func newRepo(api *fakeAPI) *PaymentOrderRepository {
	return NewPaymentOrderRepository(api, "", "", logger.NewNoopLogger())
}

func TestPaymentOrderRepository_CreateAndGet(t *testing.T) {
	t.Run("should round-trip an order", func(t *testing.T) {
		// Arrange
		repo := newRepo(newFakeAPI())
		order := newOrder("order_1", "u1", baseTime)

		// Act
		require.NoError(t, repo.Create(context.Background(), order))
		got, err := repo.GetByGatewayOrderID(context.Background(), "order_1")

		// Assert
		require.NoError(t, err)
		assert.True(t, order.CreatedAt.Equal(got.CreatedAt))
		got.CreatedAt, got.UpdatedAt = order.CreatedAt, order.UpdatedAt
		assert.Equal(t, order, got)
	})

	t.Run("should reject a duplicate gateway order id", func(t *testing.T) {
		repo := newRepo(newFakeAPI())
		require.NoError(t, repo.Create(context.Background(), newOrder("order_1", "u1", baseTime)))

		err := repo.Create(context.Background(), newOrder("order_1", "u2", baseTime))

		assert.ErrorIs(t, err, errs.ErrDuplicateOrder)
	})

	t.Run("should report a missing order", func(t *testing.T) {
		repo := newRepo(newFakeAPI())

		_, err := repo.GetByGatewayOrderID(context.Background(), "order_x")

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("should wrap store failures as connection errors", func(t *testing.T) {
		api := newFakeAPI()
		api.failWith = errThrottled
		repo := newRepo(api)

		_, err := repo.GetByGatewayOrderID(context.Background(), "order_1")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestPaymentOrderRepository_ClaimSuccess(t *testing.T) {
	t.Run("should claim a created order once", func(t *testing.T) {
		// Arrange
		repo := newRepo(newFakeAPI())
		require.NoError(t, repo.Create(context.Background(), newOrder("order_1", "u1", baseTime)))
		at := baseTime.Add(time.Minute)

		// Act
		first, err := repo.ClaimSuccess(context.Background(), "order_1", "pay_1", at)
		require.NoError(t, err)
		second, err := repo.ClaimSuccess(context.Background(), "order_1", "pay_2", at)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, entity.ClaimClaimed, first.Result)
		assert.Equal(t, entity.StatusCreated, first.PreviousStatus)
		assert.Equal(t, entity.StatusSuccess, first.Order.Status)
		assert.Equal(t, "pay_1", first.Order.GatewayPaymentID)
		assert.Equal(t, at, first.Order.UpdatedAt)

		assert.Equal(t, entity.ClaimAlreadyTerminal, second.Result)
		assert.Equal(t, entity.StatusSuccess, second.PreviousStatus)
		assert.Equal(t, "pay_1", second.Order.GatewayPaymentID)
	})

	t.Run("should report an unknown order as not found without error", func(t *testing.T) {
		repo := newRepo(newFakeAPI())

		outcome, err := repo.ClaimSuccess(context.Background(), "order_x", "pay_1", baseTime)

		require.NoError(t, err)
		assert.Equal(t, entity.ClaimNotFound, outcome.Result)
		assert.Nil(t, outcome.Order)
	})

	t.Run("should not override a failed order", func(t *testing.T) {
		repo := newRepo(newFakeAPI())
		order := newOrder("order_1", "u1", baseTime)
		order.Status = entity.StatusFailed
		require.NoError(t, repo.Create(context.Background(), order))

		outcome, err := repo.ClaimSuccess(context.Background(), "order_1", "pay_1", baseTime)

		require.NoError(t, err)
		assert.Equal(t, entity.ClaimAlreadyTerminal, outcome.Result)
		assert.Equal(t, entity.StatusFailed, outcome.Order.Status)
		assert.Empty(t, outcome.Order.GatewayPaymentID)
	})

	t.Run("should let exactly one concurrent claim win", func(t *testing.T) {
		repo := newRepo(newFakeAPI())
		require.NoError(t, repo.Create(context.Background(), newOrder("order_1", "u1", baseTime)))

		const racers = 20
		var claimed atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				outcome, err := repo.ClaimSuccess(context.Background(), "order_1", fmt.Sprintf("pay_%d", i), baseTime)
				assert.NoError(t, err)
				if outcome.Claimed() {
					claimed.Add(1)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(1), claimed.Load())
	})
}

func TestPaymentOrderRepository_CompareAndSetStatus(t *testing.T) {
	t.Run("should fail a created order and keep the payment id empty", func(t *testing.T) {
		repo := newRepo(newFakeAPI())
		require.NoError(t, repo.Create(context.Background(), newOrder("order_1", "u1", baseTime)))

		outcome, err := repo.CompareAndSetStatus(context.Background(), "order_1", entity.StatusCreated, entity.StatusFailed, baseTime)

		require.NoError(t, err)
		assert.True(t, outcome.Claimed())
		assert.Equal(t, entity.StatusFailed, outcome.Order.Status)
		stored, err := repo.GetByGatewayOrderID(context.Background(), "order_1")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, stored.Status)
	})

	t.Run("should refund only a successful order", func(t *testing.T) {
		repo := newRepo(newFakeAPI())
		require.NoError(t, repo.Create(context.Background(), newOrder("order_1", "u1", baseTime)))

		early, err := repo.CompareAndSetStatus(context.Background(), "order_1", entity.StatusSuccess, entity.StatusRefunded, baseTime)
		require.NoError(t, err)
		_, err = repo.ClaimSuccess(context.Background(), "order_1", "pay_1", baseTime)
		require.NoError(t, err)
		refund, err := repo.CompareAndSetStatus(context.Background(), "order_1", entity.StatusSuccess, entity.StatusRefunded, baseTime)
		require.NoError(t, err)

		assert.Equal(t, entity.ClaimAlreadyTerminal, early.Result)
		assert.Equal(t, entity.StatusCreated, early.PreviousStatus)
		assert.True(t, refund.Claimed())
		assert.Equal(t, entity.StatusRefunded, refund.Order.Status)
		assert.Equal(t, "pay_1", refund.Order.GatewayPaymentID)
	})
}

func TestPaymentOrderRepository_ListByUser(t *testing.T) {
	t.Run("should list newest first across pages", func(t *testing.T) {
		// Arrange
		api := newFakeAPI()
		api.pageSize = 2
		repo := newRepo(api)
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Create(context.Background(), newOrder(fmt.Sprintf("order_%d", i), "u1", baseTime.Add(time.Duration(i)*time.Second))))
		}
		require.NoError(t, repo.Create(context.Background(), newOrder("order_other", "u2", baseTime)))

		// Act
		orders, err := repo.ListByUser(context.Background(), "u1")

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 5)
		for i, order := range orders {
			assert.Equal(t, fmt.Sprintf("order_%d", 4-i), order.GatewayOrderID)
		}
	})

	t.Run("should return an empty slice for a user without orders", func(t *testing.T) {
		repo := newRepo(newFakeAPI())

		orders, err := repo.ListByUser(context.Background(), "nobody")

		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}

func TestPaymentOrderRepository_EnsureTable(t *testing.T) {
	t.Run("should create a missing table", func(t *testing.T) {
		api := newFakeAPI()
		repo := newRepo(api)

		err := repo.EnsureTable(context.Background())

		require.NoError(t, err)
		assert.True(t, api.tables[DefaultTable])
	})

	t.Run("should leave an existing table alone", func(t *testing.T) {
		api := newFakeAPI()
		api.tables["orders"] = true
		repo := NewPaymentOrderRepository(api, "orders", "by-user", logger.NewNoopLogger())

		assert.NoError(t, repo.EnsureTable(context.Background()))
	})

	t.Run("should never join a SQL transaction", func(t *testing.T) {
		assert.False(t, newRepo(newFakeAPI()).Transactional())
	})
}

func TestTimeLayoutSortsLexically(t *testing.T) {
	earlier := formatTime(baseTime.Add(500 * time.Millisecond))
	later := formatTime(baseTime.Add(time.Second))

	assert.Less(t, earlier, later)
}
