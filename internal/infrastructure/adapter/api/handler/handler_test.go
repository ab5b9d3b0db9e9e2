package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/routes"
	coremocks "github.com/amirhossein-jamali/credit-engine/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/credit-engine/mocks/port/usecase"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type testServer struct {
	router   *gin.Engine
	payments *usecasemocks.MockPaymentUseCase
	users    *usecasemocks.MockUserUseCase
}

func newTestServer(t *testing.T, pingErr error) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := coremocks.NewPermissiveLogger(t)
	payments := usecasemocks.NewMockPaymentUseCase(t)
	users := usecasemocks.NewMockUserUseCase(t)

	router := gin.New()
	routes.SetupMiddlewares(router, logger, false)
	routes.SetupRoutes(router,
		handler.NewPaymentHandler(payments, 64, logger),
		handler.NewUserHandler(users, logger),
		handler.NewHealthHandler(stubPinger{err: pingErr}, logger),
	)
	return &testServer{router: router, payments: payments, users: users}
}

func (s *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPaymentHandler_CreateOrder(t *testing.T) {
	t.Run("should return the checkout payload", func(t *testing.T) {
		// Arrange
		s := newTestServer(t, nil)
		s.payments.EXPECT().CreateOrder(mock.Anything, usecase.CreateOrderInput{PhoneNumber: "9876543210", Credits: 50}).
			Return(&usecase.CreateOrderOutput{
				GatewayOrderID:   "order_1",
				AmountMinorUnits: 5000,
				Currency:         "INR",
				GatewayKeyID:     "rzp_test_key",
				CreditsPurchased: 50,
				UserID:           "u1",
			}, nil)

		// Act
		rec := s.do(http.MethodPost, "/api/payment/create-order", `{"phoneNumber":" 9876543210 ","credits":50}`, nil)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.CreateOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "order_1", body.OrderID)
		assert.Equal(t, int64(5000), body.Amount)
		assert.Equal(t, "INR", body.Currency)
		assert.Equal(t, "rzp_test_key", body.GatewayKeyID)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("should reject a missing credits field", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/payment/create-order", `{"userId":"u1"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("should map invalid credits to 400", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidCredits)

		rec := s.do(http.MethodPost, "/api/payment/create-order", `{"userId":"u1","credits":0}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidCredits, decodeError(t, rec).Code)
	})

	t.Run("should hide gateway details behind a 500", func(t *testing.T) {
		s := newTestServer(t, nil)
		upstream := errs.NewUpstreamError("razorpay", "create_order", 401,
			errors.Join(errs.ErrGatewayRejected, errors.New("authentication failed for rzp_test_key")))
		s.payments.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, upstream)

		rec := s.do(http.MethodPost, "/api/payment/create-order", `{"userId":"u1","credits":5}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, errs.CodeUpstreamGateway, body.Code)
		assert.Equal(t, "Payment gateway error", body.Message)
		assert.NotContains(t, rec.Body.String(), "rzp_test_key")
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	t.Run("should accept razorpay field aliases", func(t *testing.T) {
		// Arrange
		s := newTestServer(t, nil)
		s.payments.EXPECT().ConfirmClientCallback(mock.Anything, usecase.ClientCallbackInput{
			GatewayOrderID:   "order_1",
			GatewayPaymentID: "pay_1",
			Signature:        "abc",
			UserID:           "u1",
		}).Return(&usecase.ConfirmationResult{
			Result:           entity.ClaimClaimed,
			GatewayOrderID:   "order_1",
			CreditsGranted:   50,
			UserID:           "u1",
			AvailableCredits: 150,
		}, nil)

		// Act
		rec := s.do(http.MethodPost, "/api/payment/verify",
			`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"abc","userId":"u1"}`, nil)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.VerifyPaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, int64(50), body.CreditsGranted)
		assert.Equal(t, int64(150), body.AvailableCredits)
	})

	t.Run("should answer a duplicate callback with 400", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().ConfirmClientCallback(mock.Anything, mock.Anything).
			Return(&usecase.ConfirmationResult{Result: entity.ClaimAlreadyTerminal, GatewayOrderID: "order_1"}, nil)

		rec := s.do(http.MethodPost, "/api/payment/verify",
			`{"gatewayOrderId":"order_1","gatewayPaymentId":"pay_1","signature":"abc"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, errs.CodeAlreadyProcessed, body.Code)
		assert.Equal(t, "Invalid or duplicate payment", body.Message)
	})

	t.Run("should answer a bad signature with a generic 400", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().ConfirmClientCallback(mock.Anything, mock.Anything).
			Return(nil, errs.NewAuthenticationError("client_callback"))

		rec := s.do(http.MethodPost, "/api/payment/verify",
			`{"gatewayOrderId":"order_1","gatewayPaymentId":"pay_1","signature":"deadbeef"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, errs.CodeInvalidSignature, body.Code)
		assert.Equal(t, "Invalid payment signature", body.Message)
		assert.NotContains(t, rec.Body.String(), "deadbeef")
	})

	t.Run("should answer an unknown order with 404", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().ConfirmClientCallback(mock.Anything, mock.Anything).Return(nil, errs.ErrOrderNotFound)

		rec := s.do(http.MethodPost, "/api/payment/verify",
			`{"gatewayOrderId":"order_x","gatewayPaymentId":"pay_1","signature":"abc"}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Unknown order", decodeError(t, rec).Message)
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("should pass the raw body and headers through", func(t *testing.T) {
		// Arrange
		s := newTestServer(t, nil)
		raw := `{"event":"payment.captured",  "payload":{}}`
		s.payments.EXPECT().HandleWebhook(mock.Anything, usecase.WebhookInput{
			RawBody:   []byte(raw),
			Signature: "sig",
			EventID:   "evt_1",
		}).Return(&usecase.WebhookResult{EventType: "payment.captured", Outcome: entity.WebhookDuplicate}, nil)

		// Act
		rec := s.do(http.MethodPost, "/api/payment/webhook", raw, map[string]string{
			handler.WebhookSignatureHeader: "sig",
			handler.WebhookEventIDHeader:   "evt_1",
		})

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.WebhookResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "duplicate", body.Outcome)
	})

	t.Run("should reject a forged webhook with 400", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(nil, errs.NewAuthenticationError("webhook"))

		rec := s.do(http.MethodPost, "/api/payment/webhook", `{}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 500 on internal failure so the gateway retries", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection)

		rec := s.do(http.MethodPost, "/api/payment/webhook", `{}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("should reject an oversized body before verification", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/payment/webhook", `{"padding":"`+strings.Repeat("x", 128)+`"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.payments.AssertNotCalled(t, "HandleWebhook", mock.Anything, mock.Anything)
	})
}

func TestPaymentHandler_CancelAndHistory(t *testing.T) {
	t.Run("should cancel an open order", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().ReportCancellation(mock.Anything, "order_1", "u1").
			Return(&usecase.CancellationResult{GatewayOrderID: "order_1", Status: entity.StatusFailed}, nil)

		rec := s.do(http.MethodPost, "/api/payment/cancel", `{"gatewayOrderId":"order_1","userId":"u1"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"status":"FAILED"}`, rec.Body.String())
	})

	t.Run("should refuse to cancel a paid order", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().ReportCancellation(mock.Anything, "order_1", "").
			Return(nil, errs.NewTransitionError("order_1", "SUCCESS", "FAILED"))

		rec := s.do(http.MethodPost, "/api/payment/cancel", `{"gatewayOrderId":"order_1"}`, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, errs.CodeIllegalTransition, decodeError(t, rec).Code)
	})

	t.Run("should list history newest first", func(t *testing.T) {
		s := newTestServer(t, nil)
		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		s.payments.EXPECT().ListHistory(mock.Anything, usecase.UserRef{PhoneNumber: "9876543210"}).
			Return(&usecase.PaymentHistory{UserID: "u1", Payments: []usecase.PaymentHistoryItem{
				{AmountMinorUnits: 5000, Currency: "INR", CreditsPurchased: 50, Status: entity.StatusSuccess,
					GatewayPaymentID: "pay_2", GatewayOrderID: "order_2", PaymentMethod: "razorpay", CreatedAt: now},
				{AmountMinorUnits: 1000, Currency: "INR", CreditsPurchased: 10, Status: entity.StatusCreated,
					GatewayOrderID: "order_1", PaymentMethod: "razorpay", CreatedAt: now.Add(-time.Hour)},
			}}, nil)

		rec := s.do(http.MethodGet, "/api/payment/history?phoneNumber=9876543210", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.PaymentHistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.TotalPayments)
		require.NotNil(t, body.Payments[0].GatewayPaymentID)
		assert.Equal(t, "pay_2", *body.Payments[0].GatewayPaymentID)
		assert.Nil(t, body.Payments[1].GatewayPaymentID)
	})

	t.Run("should require a user reference for history", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodGet, "/api/payment/history", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_GetCredits(t *testing.T) {
	t.Run("should return the derived available credits", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.EXPECT().GetCreditBalance(mock.Anything, "u1").Return(&entity.CreditBalance{
			UserID: "u1", PhoneNumber: "9876543210", FreeCredits: 100, PaidCredits: 50, UsedCredits: 30, AvailableCredits: 120,
		}, nil)

		rec := s.do(http.MethodGet, "/api/users/u1/credits", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":"u1","phoneNumber":"9876543210","freeCredits":100,"paidCredits":50,"usedCredits":30,"availableCredits":120}`, rec.Body.String())
	})

	t.Run("should return 404 for an unknown user", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.EXPECT().GetCreditBalance(mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound)

		rec := s.do(http.MethodGet, "/api/users/nobody/credits", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeError(t, rec).Message)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("should report ok", func(t *testing.T) {
		rec := newTestServer(t, nil).do(http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should report a degraded database", func(t *testing.T) {
		rec := newTestServer(t, errors.New("down")).do(http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRecovery(t *testing.T) {
	t.Run("should turn a panic into a 500 body", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().ListHistory(mock.Anything, mock.Anything).Run(func(context.Context, usecase.UserRef) {
			panic("boom")
		})

		rec := s.do(http.MethodGet, "/api/payment/history?userId=u1", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, errs.CodeInternalServer, decodeError(t, rec).Code)
	})
}
