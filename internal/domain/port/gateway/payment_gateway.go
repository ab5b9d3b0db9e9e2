package gateway

import "context"

// OrderRequest is the remote order the engine asks the gateway to create
type OrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Receipt          string
	Notes            map[string]string
}

// Order is the gateway's view of a created order
type Order struct {
	ID               string
	AmountMinorUnits int64
	Currency         string
	Receipt          string
	Status           string
}

// PaymentGateway is the external payment processor client
type PaymentGateway interface {
	// Name identifies the provider in logs and metrics
	Name() string

	// KeyID is the public key the checkout client needs. It is not a secret.
	KeyID() string

	// CreateOrder creates a remote order.
	//
	// Possible errors:
	// - UpstreamError wrapping ErrGatewayUnavailable: network fault or timeout
	// - UpstreamError wrapping ErrGatewayRejected: auth fault or invalid amount
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}
