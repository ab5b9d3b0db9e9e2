package payment

import (
	"encoding/json"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
)

// webhookPayload is the subset of a gateway event the engine reads.
// It is decoded only after the signature over the raw bytes was verified.
type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
				Method  string `json:"method"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func parseWebhookPayload(rawBody []byte) (*webhookPayload, error) {
	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, errs.NewValidationError("body", "malformed webhook payload", nil)
	}
	if payload.Event == "" {
		return nil, errs.NewValidationError("event", "is required", nil)
	}
	return &payload, nil
}

func (p *webhookPayload) gatewayOrderID() string {
	return p.Payload.Payment.Entity.OrderID
}

func (p *webhookPayload) gatewayPaymentID() string {
	return p.Payload.Payment.Entity.ID
}
