package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/logger"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *RazorpayGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRazorpayGateway(RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "key-secret",
		BaseURL:   server.URL + "/",
		Timeout:   time.Second,
	}, logger.NewNoopLogger())
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	request := gateway.OrderRequest{
		AmountMinorUnits: 5000,
		Currency:         "INR",
		Receipt:          "rcpt_01HX",
		Notes:            map[string]string{"user_id": "u1"},
	}

	t.Run("should create order with basic auth", func(t *testing.T) {
		// Arrange
		var received razorpayOrderRequest
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "key-secret", pass)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"order_abc","entity":"order","amount":5000,"currency":"INR","receipt":"rcpt_01HX","status":"created"}`))
		})

		// Act
		order, err := gw.CreateOrder(context.Background(), request)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "order_abc", order.ID)
		assert.Equal(t, int64(5000), order.AmountMinorUnits)
		assert.Equal(t, "created", order.Status)
		assert.Equal(t, int64(5000), received.Amount)
		assert.Equal(t, "rcpt_01HX", received.Receipt)
		assert.Equal(t, "u1", received.Notes["user_id"])
	})

	t.Run("should map 401 to rejected with auth status", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
		})

		_, err := gw.CreateOrder(context.Background(), request)

		require.Error(t, err)
		var upstream *errs.UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		assert.NotContains(t, err.Error(), "key-secret")
	})

	t.Run("should map 400 to rejected with the gateway description", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The amount must be atleast INR 1.00"}}`))
		})

		_, err := gw.CreateOrder(context.Background(), request)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		assert.Contains(t, err.Error(), "The amount must be atleast INR 1.00")
		assert.Equal(t, http.StatusInternalServerError, errs.HTTPStatus(err))
	})

	t.Run("should map 5xx to unavailable", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := gw.CreateOrder(context.Background(), request)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
		assert.True(t, errs.IsUpstreamError(err))
	})

	t.Run("should map a timeout to unavailable", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := gw.CreateOrder(ctx, request)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("should map an undecodable body to unavailable", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := gw.CreateOrder(context.Background(), request)

		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestRazorpayGateway_Identity(t *testing.T) {
	gw := NewRazorpayGateway(RazorpayConfig{KeyID: "rzp_live_x"}, logger.NewNoopLogger())

	assert.Equal(t, ProviderRazorpay, gw.Name())
	assert.Equal(t, "rzp_live_x", gw.KeyID())
	assert.Equal(t, DefaultRazorpayBaseURL, gw.baseURL)
	assert.Equal(t, DefaultTimeout, gw.client.Timeout)
}

func TestMockGateway(t *testing.T) {
	t.Run("should create distinct orders", func(t *testing.T) {
		gw := NewMockGateway("", logger.NewNoopLogger())

		first, err := gw.CreateOrder(context.Background(), gateway.OrderRequest{AmountMinorUnits: 100, Currency: "INR", Receipt: "r1"})
		require.NoError(t, err)
		second, err := gw.CreateOrder(context.Background(), gateway.OrderRequest{AmountMinorUnits: 200, Currency: "INR", Receipt: "r2"})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Regexp(t, `^order_[0-9A-Z]{26}$`, first.ID)
		stored, ok := gw.Order(second.ID)
		assert.True(t, ok)
		assert.Equal(t, int64(200), stored.AmountMinorUnits)
		assert.Equal(t, MockKeyID, gw.KeyID())
	})

	t.Run("should honour a cancelled context", func(t *testing.T) {
		gw := NewMockGateway("k", logger.NewNoopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gw.CreateOrder(ctx, gateway.OrderRequest{AmountMinorUnits: 100})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
