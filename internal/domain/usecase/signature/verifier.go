// Package signature authenticates inbound payment confirmations.
//
// The checkout callback and the gateway webhook are signed with different
// secrets over different messages, so each has its own function.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ClientCallbackMessage builds the canonical message signed for a checkout callback
func ClientCallbackMessage(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// Sign returns the lowercase hex HMAC-SHA256 of message under secret
func Sign(message []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyClientCallback checks the signature the gateway hands the checkout client
// over "{orderId}|{paymentId}" with the API key secret.
func VerifyClientCallback(orderID, paymentID, sig, secret string) bool {
	if orderID == "" || paymentID == "" {
		return false
	}
	return verify(ClientCallbackMessage(orderID, paymentID), sig, secret)
}

// VerifyWebhook checks a webhook signature header against the raw request body.
// rawBody must be the bytes exactly as received.
func VerifyWebhook(rawBody []byte, header, secret string) bool {
	if len(rawBody) == 0 {
		return false
	}
	return verify(rawBody, header, secret)
}

func verify(message []byte, sig, secret string) bool {
	if secret == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(sig))
	if err != nil || len(got) != sha256.Size {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hmac.Equal(got, mac.Sum(nil))
}
