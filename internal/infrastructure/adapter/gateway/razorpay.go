package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/gateway"
)

const (
	ProviderRazorpay       = "razorpay"
	DefaultRazorpayBaseURL = "https://api.razorpay.com/v1"
	DefaultTimeout         = 10 * time.Second

	opCreateOrder   = "create_order"
	maxErrorBodyLen = 64 << 10
)

// RazorpayConfig holds the API credentials. KeySecret is only sent as basic auth.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// RazorpayGateway implements PaymentGateway against the Razorpay Orders API
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
	logger    coreport.Logger
}

var _ gateway.PaymentGateway = (*RazorpayGateway)(nil)

// NewRazorpayGateway creates a new Razorpay client
func NewRazorpayGateway(cfg RazorpayConfig, logger coreport.Logger) *RazorpayGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultRazorpayBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &RazorpayGateway{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type razorpayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
		Field       string `json:"field"`
	} `json:"error"`
}

func (g *RazorpayGateway) Name() string { return ProviderRazorpay }

func (g *RazorpayGateway) KeyID() string { return g.keyID }

// CreateOrder issues POST /orders
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	body, err := json.Marshal(razorpayOrderRequest{
		Amount:   req.AmountMinorUnits,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, errs.NewUpstreamError(ProviderRazorpay, opCreateOrder, 0,
			errors.Join(errs.ErrGatewayUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError(resp)
	}

	var order razorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errs.NewUpstreamError(ProviderRazorpay, opCreateOrder, resp.StatusCode,
			errors.Join(errs.ErrGatewayUnavailable, fmt.Errorf("decode order response: %w", err)))
	}

	g.logger.Debug("Razorpay order created", map[string]any{
		"gateway_order_id": order.ID,
		"receipt":          order.Receipt,
		"status":           order.Status,
	})

	return &gateway.Order{
		ID:               order.ID,
		AmountMinorUnits: order.Amount,
		Currency:         order.Currency,
		Receipt:          order.Receipt,
		Status:           order.Status,
	}, nil
}

// statusError maps a non-200 response. 5xx is retryable by the caller, 4xx is not.
func (g *RazorpayGateway) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))

	detail := http.StatusText(resp.StatusCode)
	var apiErr razorpayError
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Description != "" {
		detail = apiErr.Error.Code + ": " + apiErr.Error.Description
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		kind = errs.ErrGatewayRejected
		detail = "authentication failed"
	case resp.StatusCode >= 500:
		kind = errs.ErrGatewayUnavailable
	default:
		kind = errs.ErrGatewayRejected
	}
	return errs.NewUpstreamError(ProviderRazorpay, opCreateOrder, resp.StatusCode, errors.Join(kind, errors.New(detail)))
}
