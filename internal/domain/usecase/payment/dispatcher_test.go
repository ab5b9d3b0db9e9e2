package payment

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedCallback(orderID, paymentID, userID string) usecase.ClientCallbackInput {
	return usecase.ClientCallbackInput{
		GatewayOrderID:   orderID,
		GatewayPaymentID: paymentID,
		Signature:        signature.Sign(signature.ClientCallbackMessage(orderID, paymentID), testKeySecret),
		UserID:           userID,
	}
}

func capturedEvent(orderID, paymentID string) []byte {
	return []byte(`{"entity":"event","event":"payment.captured","payload":{"payment":{"entity":{"id":"` +
		paymentID + `","order_id":"` + orderID + `","amount":10000,"method":"upi","status":"captured"}}}}`)
}

func expectGrant(f *fixture, userID string, credits int64, paymentID string, paidAfter int64) {
	f.grants.EXPECT().Create(mock.Anything, mock.MatchedBy(func(g *entity.CreditGrant) bool {
		return g.UserID == userID && g.Credits == credits && g.GatewayPaymentID == paymentID
	})).Return(nil).Once()
	f.users.EXPECT().IncrementPaidCredits(mock.Anything, userID, credits).
		Return(&entity.User{ID: userID, FreeCredits: 100, PaidCredits: paidAfter}, nil).Once()
}

func TestConfirmClientCallback(t *testing.T) {
	ctx := context.Background()
	order := createdOrder("order_1", "user-1", 100)

	t.Run("should claim and grant credits once", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(claimed(order, "pay_1"), nil).Once()
		expectGrant(f, "user-1", 100, "pay_1", 100)

		// Act
		result, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", "user-1"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.ClaimClaimed, result.Result)
		assert.Equal(t, int64(100), result.CreditsGranted)
		assert.Equal(t, int64(200), result.AvailableCredits)
		f.metrics.AssertCalled(t, "Claim", "client_callback", "claimed")
		f.metrics.AssertCalled(t, "CreditsGranted", int64(100))
	})

	t.Run("should report duplicates without granting", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).
			Return(alreadyTerminal(order, entity.StatusSuccess), nil).Once()

		result, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", ""))

		require.NoError(t, err)
		assert.True(t, result.Duplicate())
		f.grants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "IncrementPaidCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a bad signature without any state change", func(t *testing.T) {
		f := newFixture(t)
		input := signedCallback("order_1", "pay_1", "user-1")
		input.Signature = signature.Sign(signature.ClientCallbackMessage("order_1", "pay_1"), testWebhookSecret)

		_, err := f.service().ConfirmClientCallback(ctx, input)

		assert.True(t, errs.IsAuthenticationError(err))
		assert.Equal(t, http.StatusBadRequest, errs.HTTPStatus(err))
		assert.NotContains(t, err.Error(), input.Signature)
		f.orders.AssertNotCalled(t, "GetByGatewayOrderID", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.metrics.AssertCalled(t, "SignatureFailure", "client_callback")
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_x").Return(nil, errs.ErrOrderNotFound).Once()

		_, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_x", "pay_1", ""))

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
		assert.Equal(t, http.StatusNotFound, errs.HTTPStatus(err))
	})

	t.Run("should reject callbacks naming another user", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()

		_, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", "user-2"))

		assert.True(t, errs.IsValidationError(err))
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should roll back the claim when the grant fails in a shared transaction", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("connection reset by peer")
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(claimed(order, "pay_1"), nil).Once()
		f.orders.EXPECT().Transactional().Return(true).Once()
		f.grants.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", ""))

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errs.IsInconsistencyError(err))
		f.metrics.AssertNotCalled(t, "CreditsGranted", mock.Anything)
	})

	t.Run("should raise inconsistency when a separate order store already committed the claim", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(claimed(order, "pay_1"), nil).Once()
		f.orders.EXPECT().Transactional().Return(false).Once()
		f.grants.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.users.EXPECT().IncrementPaidCredits(mock.Anything, "user-1", int64(100)).Return(nil, errors.New("timeout")).Once()

		_, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", ""))

		assert.True(t, errs.IsInconsistencyError(err))
		f.metrics.AssertCalled(t, "Inconsistency")
	})

	t.Run("should raise inconsistency when the grant fails to commit after a separate claim", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		commitErr := errors.New("commit: driver: bad connection")
		f.failCommit(t, commitErr)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(claimed(order, "pay_1"), nil).Once()
		f.orders.EXPECT().Transactional().Return(false).Once()
		expectGrant(f, "user-1", 100, "pay_1", 100)

		// Act
		_, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", ""))

		// Assert
		assert.True(t, errs.IsInconsistencyError(err))
		assert.ErrorIs(t, err, commitErr)
		f.logger.AssertCalled(t, "Error", "Payment claimed but credits not granted", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["alert"] == true && fields["stage"] == "commit_grant" && fields["pending_grant_credits"] == int64(100)
		}))
		f.metrics.AssertCalled(t, "Inconsistency")
		f.metrics.AssertCalled(t, "Claim", "client_callback", "error")
		f.metrics.AssertNotCalled(t, "CreditsGranted", mock.Anything)
	})

	t.Run("should not raise inconsistency when a shared transaction fails to commit", func(t *testing.T) {
		f := newFixture(t)
		commitErr := errors.New("commit: driver: bad connection")
		f.failCommit(t, commitErr)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(claimed(order, "pay_1"), nil).Once()
		f.orders.EXPECT().Transactional().Return(true).Once()
		expectGrant(f, "user-1", 100, "pay_1", 100)

		_, err := f.service().ConfirmClientCallback(ctx, signedCallback("order_1", "pay_1", ""))

		assert.ErrorIs(t, err, commitErr)
		assert.False(t, errs.IsInconsistencyError(err))
		f.metrics.AssertNotCalled(t, "Inconsistency")
	})

	t.Run("should require the full triplet", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service().ConfirmClientCallback(ctx, usecase.ClientCallbackInput{GatewayOrderID: "order_1", GatewayPaymentID: "pay_1"})

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()
	order := createdOrder("order_1", "user-1", 100)

	webhook := func(f *fixture, body []byte, eventID string) (*usecase.WebhookResult, error) {
		return f.service().HandleWebhook(ctx, usecase.WebhookInput{
			RawBody:   body,
			Signature: signature.Sign(body, testWebhookSecret),
			EventID:   eventID,
		})
	}

	recordedOutcome := func(outcome entity.WebhookOutcome) interface{} {
		return mock.MatchedBy(func(e *entity.WebhookEvent) bool { return e.Outcome == outcome })
	}

	t.Run("should claim and grant on payment.captured", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		body := capturedEvent("order_1", "pay_1")
		f.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(claimed(order, "pay_1"), nil).Once()
		expectGrant(f, "user-1", 100, "pay_1", 100)
		f.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.WebhookEvent) bool {
			return e.Outcome == entity.WebhookProcessed && e.EventType == "payment.captured" &&
				e.GatewayOrderID == "order_1" && string(e.Payload) == string(body)
		})).Return(nil).Once()
		f.dedup.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil).Once()

		// Act
		result, err := webhook(f, body, "evt_1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.WebhookProcessed, result.Outcome)
		f.metrics.AssertCalled(t, "Claim", "webhook", "claimed")
	})

	t.Run("should acknowledge an already claimed order", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).
			Return(alreadyTerminal(order, entity.StatusSuccess), nil).Once()
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookDuplicate)).Return(nil).Once()

		result, err := webhook(f, capturedEvent("order_1", "pay_1"), "")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookDuplicate, result.Outcome)
		f.grants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should acknowledge unknown orders without crediting", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_x", "pay_1", fixedNow).
			Return(entity.ClaimOutcome{Result: entity.ClaimNotFound}, nil).Once()
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookUnmatched)).Return(nil).Once()

		result, err := webhook(f, capturedEvent("order_x", "pay_1"), "")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookUnmatched, result.Outcome)
	})

	t.Run("should ignore other event types", func(t *testing.T) {
		f := newFixture(t)
		body := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookIgnored)).Return(nil).Once()

		result, err := webhook(f, body, "")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookIgnored, result.Outcome)
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should skip events already handled", func(t *testing.T) {
		f := newFixture(t)
		f.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(true, nil).Once()
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookDuplicate)).Return(nil).Once()

		result, err := webhook(f, capturedEvent("order_1", "pay_1"), "evt_1")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookDuplicate, result.Outcome)
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fall back to the state machine when the dedup cache fails", func(t *testing.T) {
		f := newFixture(t)
		f.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, errors.New("redis down")).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).
			Return(alreadyTerminal(order, entity.StatusSuccess), nil).Once()
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookDuplicate)).Return(nil).Once()
		f.dedup.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(errors.New("redis down")).Once()

		result, err := webhook(f, capturedEvent("order_1", "pay_1"), "evt_1")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookDuplicate, result.Outcome)
	})

	t.Run("should not mark failed events as handled", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("connection refused")
		f.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
		f.orders.EXPECT().ClaimSuccess(mock.Anything, "order_1", "pay_1", fixedNow).Return(entity.ClaimOutcome{}, dbErr).Once()
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookFailed)).Return(nil).Once()

		_, err := webhook(f, capturedEvent("order_1", "pay_1"), "evt_1")

		assert.ErrorIs(t, err, dbErr)
		f.dedup.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	})

	t.Run("should reject a bad signature and store nothing", func(t *testing.T) {
		f := newFixture(t)
		body := capturedEvent("order_1", "pay_1")

		_, err := f.service().HandleWebhook(ctx, usecase.WebhookInput{
			RawBody:   body,
			Signature: signature.Sign(body, testKeySecret),
		})

		assert.True(t, errs.IsAuthenticationError(err))
		f.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.metrics.AssertCalled(t, "SignatureFailure", "webhook")
	})

	t.Run("should acknowledge authenticated but malformed payloads as failed", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.WebhookEvent) bool {
			return e.Outcome == entity.WebhookFailed && e.ProcessingError != "" && string(e.Payload) == `{"event":`
		})).Return(nil).Once()
		f.dedup.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil).Once()

		// Act
		result, err := webhook(f, []byte(`{"event":`), "evt_1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.WebhookFailed, result.Outcome)
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.metrics.AssertCalled(t, "WebhookEvent", "unknown", "failed")
	})

	t.Run("should acknowledge a captured event without ids as failed", func(t *testing.T) {
		f := newFixture(t)
		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1"}}}}`)
		f.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
		f.events.EXPECT().Create(mock.Anything, recordedOutcome(entity.WebhookFailed)).Return(nil).Once()
		f.dedup.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil).Once()

		result, err := webhook(f, body, "evt_1")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookFailed, result.Outcome)
		assert.Equal(t, "payment.captured", result.EventType)
		f.orders.AssertNotCalled(t, "ClaimSuccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.grants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should keep responding when the audit write fails", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		result, err := webhook(f, []byte(`{"event":"order.paid"}`), "")

		require.NoError(t, err)
		assert.Equal(t, entity.WebhookIgnored, result.Outcome)
	})
}

func TestReportCancellation(t *testing.T) {
	ctx := context.Background()
	order := createdOrder("order_1", "user-1", 100)

	t.Run("should fail a created order", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().CompareAndSetStatus(mock.Anything, "order_1", entity.StatusCreated, entity.StatusFailed, fixedNow).
			Return(entity.ClaimOutcome{Result: entity.ClaimClaimed, PreviousStatus: entity.StatusCreated, Order: order}, nil).Once()

		result, err := f.service().ReportCancellation(ctx, "order_1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, result.Status)
		assert.False(t, result.Duplicate)
	})

	t.Run("should treat repeated cancellation as duplicate", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().CompareAndSetStatus(mock.Anything, "order_1", entity.StatusCreated, entity.StatusFailed, fixedNow).
			Return(alreadyTerminal(order, entity.StatusFailed), nil).Once()

		result, err := f.service().ReportCancellation(ctx, "order_1", "")

		require.NoError(t, err)
		assert.True(t, result.Duplicate)
	})

	t.Run("should refuse to cancel a paid order", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().GetByGatewayOrderID(mock.Anything, "order_1").Return(order, nil).Once()
		f.orders.EXPECT().CompareAndSetStatus(mock.Anything, "order_1", entity.StatusCreated, entity.StatusFailed, fixedNow).
			Return(alreadyTerminal(order, entity.StatusSuccess), nil).Once()

		_, err := f.service().ReportCancellation(ctx, "order_1", "")

		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, http.StatusConflict, errs.HTTPStatus(err))
	})
}

func TestListHistory(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	newer := createdOrder("order_2", "user-1", 50)
	newer.Status = entity.StatusSuccess
	newer.GatewayPaymentID = "pay_2"
	older := createdOrder("order_1", "user-1", 100)
	f.userUC.EXPECT().ResolveUser(mock.Anything, usecase.UserRef{UserID: "user-1"}).Return(&entity.User{ID: "user-1"}, nil).Once()
	f.orders.EXPECT().ListByUser(mock.Anything, "user-1").Return([]*entity.PaymentOrder{newer, older}, nil).Once()

	history, err := f.service().ListHistory(ctx, usecase.UserRef{UserID: "user-1"})

	require.NoError(t, err)
	require.Len(t, history.Payments, 2)
	assert.Equal(t, "order_2", history.Payments[0].GatewayOrderID)
	assert.Equal(t, "pay_2", history.Payments[0].GatewayPaymentID)
	assert.Equal(t, int64(5000), history.Payments[0].AmountMinorUnits)
	assert.Equal(t, entity.StatusCreated, history.Payments[1].Status)
}
