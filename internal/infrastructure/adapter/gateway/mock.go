package gateway

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/gateway"
)

const (
	ProviderMock = "mock"
	MockKeyID    = "rzp_test_mock"
)

// MockGateway creates orders locally without calling a remote API.
// It is used for development and load testing.
type MockGateway struct {
	keyID  string
	logger coreport.Logger

	mu     sync.Mutex
	orders map[string]gateway.Order
}

var _ gateway.PaymentGateway = (*MockGateway)(nil)

// NewMockGateway creates a new MockGateway. An empty keyID uses MockKeyID.
func NewMockGateway(keyID string, logger coreport.Logger) *MockGateway {
	if keyID == "" {
		keyID = MockKeyID
	}
	return &MockGateway{
		keyID:  keyID,
		logger: logger,
		orders: make(map[string]gateway.Order),
	}
}

func (g *MockGateway) Name() string { return ProviderMock }

func (g *MockGateway) KeyID() string { return g.keyID }

// CreateOrder returns an order_<ULID> id for the request
func (g *MockGateway) CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order := gateway.Order{
		ID:               "order_" + ulid.Make().String(),
		AmountMinorUnits: req.AmountMinorUnits,
		Currency:         req.Currency,
		Receipt:          req.Receipt,
		Status:           "created",
	}

	g.mu.Lock()
	g.orders[order.ID] = order
	g.mu.Unlock()

	g.logger.Debug("Mock gateway order created", map[string]any{
		"gateway_order_id": order.ID,
		"receipt":          order.Receipt,
	})
	return &order, nil
}

// Order returns an order created by this gateway
func (g *MockGateway) Order(id string) (gateway.Order, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	o, ok := g.orders[id]
	return o, ok
}
