package payment

import (
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// Settings holds the pricing and secret material the payment flow needs
type Settings struct {
	KeySecret           string        // Signs checkout callbacks
	WebhookSecret       string        // Signs gateway webhooks
	Currency            string        // Currency orders are charged in
	MinorUnitsPerCredit int64         // Price of one credit in minor units
	MaxCreditsPerOrder  int64         // Upper bound on a single purchase, 0 means unbounded
	PaymentMethod       string        // Tag stored on new orders
	GatewayTimeout      time.Duration // Bound on the remote create-order call
}

// withDefaults fills zero values
func (s Settings) withDefaults() Settings {
	if s.Currency == "" {
		s.Currency = entity.DefaultCurrency
	}
	if s.MinorUnitsPerCredit <= 0 {
		s.MinorUnitsPerCredit = entity.DefaultMinorUnitsPerCredit
	}
	if s.PaymentMethod == "" {
		s.PaymentMethod = entity.DefaultPaymentMethod
	}
	if s.GatewayTimeout <= 0 {
		s.GatewayTimeout = 10 * time.Second
	}
	return s
}
