package signature

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keySecret     = "key_secret_test"
	webhookSecret = "webhook_secret_test"
)

func TestVerifyClientCallback(t *testing.T) {
	orderID := "order_N5n5QpX1"
	paymentID := "pay_N5n6Zk0a"
	valid := Sign(ClientCallbackMessage(orderID, paymentID), keySecret)

	t.Run("should accept a correct signature", func(t *testing.T) {
		assert.True(t, VerifyClientCallback(orderID, paymentID, valid, keySecret))
	})

	t.Run("should accept an uppercase hex signature", func(t *testing.T) {
		assert.True(t, VerifyClientCallback(orderID, paymentID, strings.ToUpper(valid), keySecret))
	})

	t.Run("should reject tampered or malformed input", func(t *testing.T) {
		testCases := []struct {
			name      string
			orderID   string
			paymentID string
			sig       string
			secret    string
		}{
			{"other payment", orderID, "pay_other", valid, keySecret},
			{"other order", "order_other", paymentID, valid, keySecret},
			{"webhook secret", orderID, paymentID, valid, webhookSecret},
			{"empty secret", orderID, paymentID, valid, ""},
			{"empty signature", orderID, paymentID, "", keySecret},
			{"not hex", orderID, paymentID, "zz" + valid[2:], keySecret},
			{"truncated", orderID, paymentID, valid[:32], keySecret},
			{"empty order", "", paymentID, valid, keySecret},
			{"empty payment", orderID, "", valid, keySecret},
			{"separator moved", orderID + "|", strings.TrimPrefix(paymentID, "p"), valid, keySecret},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.False(t, VerifyClientCallback(tc.orderID, tc.paymentID, tc.sig, tc.secret))
			})
		}
	})
}

func TestVerifyWebhook(t *testing.T) {
	raw := []byte(`{"entity":"event","event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","amount":10000}}}}`)
	header := Sign(raw, webhookSecret)

	t.Run("should accept the signature over the raw bytes", func(t *testing.T) {
		assert.True(t, VerifyWebhook(raw, header, webhookSecret))
	})

	t.Run("should reject a signature made with the key secret", func(t *testing.T) {
		assert.False(t, VerifyWebhook(raw, Sign(raw, keySecret), webhookSecret))
	})

	t.Run("should reject a re-serialized payload", func(t *testing.T) {
		// Arrange: same JSON value, different bytes
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		reserialized, err := json.Marshal(decoded)
		require.NoError(t, err)

		var indented bytes.Buffer
		require.NoError(t, json.Indent(&indented, raw, "", "  "))

		// Assert
		require.NotEqual(t, raw, reserialized)
		assert.False(t, VerifyWebhook(reserialized, header, webhookSecret))
		assert.False(t, VerifyWebhook(indented.Bytes(), header, webhookSecret))
		assert.True(t, VerifyWebhook(raw, header, webhookSecret))
	})

	t.Run("should reject empty body or header", func(t *testing.T) {
		assert.False(t, VerifyWebhook(nil, header, webhookSecret))
		assert.False(t, VerifyWebhook(raw, "", webhookSecret))
		assert.False(t, VerifyWebhook(raw, header, ""))
	})
}
