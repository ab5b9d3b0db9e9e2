package dto

import "time"

// CreateOrderRequest identifies the buyer by userId or phoneNumber
type CreateOrderRequest struct {
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	Credits     *int64 `json:"credits" binding:"required"`
}

// CreateOrderResponse carries what the checkout widget needs
type CreateOrderResponse struct {
	OrderID          string `json:"orderId"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	GatewayKeyID     string `json:"gatewayKeyId"`
	CreditsPurchased int64  `json:"creditsPurchased"`
	UserID           string `json:"userId"`
}

// VerifyPaymentRequest is the client callback. The razorpay_* names are what the
// hosted checkout hands to its success handler and are accepted as aliases.
type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	Signature        string `json:"signature"`
	UserID           string `json:"userId"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Normalize folds the razorpay_* aliases into the canonical fields
func (r *VerifyPaymentRequest) Normalize() {
	if r.GatewayOrderID == "" {
		r.GatewayOrderID = r.RazorpayOrderID
	}
	if r.GatewayPaymentID == "" {
		r.GatewayPaymentID = r.RazorpayPaymentID
	}
	if r.Signature == "" {
		r.Signature = r.RazorpaySignature
	}
}

// VerifyPaymentResponse reports a successful confirmation
type VerifyPaymentResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	GatewayOrderID   string `json:"gatewayOrderId"`
	CreditsGranted   int64  `json:"creditsGranted"`
	AvailableCredits int64  `json:"availableCredits"`
}

// CancelPaymentRequest reports an abandoned checkout
type CancelPaymentRequest struct {
	GatewayOrderID string `json:"gatewayOrderId" binding:"required"`
	UserID         string `json:"userId"`
}

// CancelPaymentResponse reports the order status after cancellation
type CancelPaymentResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// WebhookResponse acknowledges an authenticated webhook
type WebhookResponse struct {
	Message string `json:"message"`
	Outcome string `json:"outcome"`
}

// PaymentHistoryItem is one payment in the history listing
type PaymentHistoryItem struct {
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	CreditsPurchased int64     `json:"creditsPurchased"`
	Status           string    `json:"status"`
	GatewayPaymentID *string   `json:"gatewayPaymentId"`
	GatewayOrderID   string    `json:"gatewayOrderId"`
	PaymentMethod    string    `json:"paymentMethod"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PaymentHistoryResponse lists a user's payments newest first
type PaymentHistoryResponse struct {
	TotalPayments int                  `json:"totalPayments"`
	Payments      []PaymentHistoryItem `json:"payments"`
}
