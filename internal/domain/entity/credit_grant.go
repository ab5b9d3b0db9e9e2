package entity

import "time"

// CreditGrant records that purchased credits were applied to a user for one gateway payment.
// A gateway payment id can be granted at most once.
type CreditGrant struct {
	ID               string
	UserID           string
	GatewayPaymentID string
	Credits          int64
	CreatedAt        time.Time
}
