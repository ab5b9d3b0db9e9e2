package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()

	t.Run("should count claims per channel and result", func(t *testing.T) {
		// Arrange
		before := testutil.ToFloat64(claims.WithLabelValues("webhook", "claimed"))

		// Act
		recorder.Claim("Webhook", "claimed")
		recorder.Claim("webhook", " claimed ")

		// Assert
		assert.Equal(t, before+2, testutil.ToFloat64(claims.WithLabelValues("webhook", "claimed")))
	})

	t.Run("should add granted credits and ignore non-positive amounts", func(t *testing.T) {
		before := testutil.ToFloat64(creditsGranted)

		recorder.CreditsGranted(50)
		recorder.CreditsGranted(0)
		recorder.CreditsGranted(-3)

		assert.Equal(t, before+50, testutil.ToFloat64(creditsGranted))
	})

	t.Run("should label empty values as unknown", func(t *testing.T) {
		before := testutil.ToFloat64(signatureFailures.WithLabelValues("unknown"))

		recorder.SignatureFailure("")

		assert.Equal(t, before+1, testutil.ToFloat64(signatureFailures.WithLabelValues("unknown")))
	})

	t.Run("should observe gateway latency", func(t *testing.T) {
		recorder.GatewayRequest("create_order", "auth_error", 120*time.Millisecond)

		assert.Positive(t, testutil.CollectAndCount(gatewayRequestDuration))
	})

	t.Run("should register collectors only once", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewRecorder()
			MustRegister()
		})
	})
}

func TestObserveHTTPRequest(t *testing.T) {
	t.Run("should fall back to unmatched for an empty route", func(t *testing.T) {
		before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))

		ObserveHTTPRequest("GET", "", 404, time.Millisecond)

		assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
	})
}
