package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Gateway webhook headers
const (
	WebhookSignatureHeader = "X-Razorpay-Signature"
	WebhookEventIDHeader   = "X-Razorpay-Event-Id"

	DefaultWebhookMaxBodyBytes int64 = 1 << 20
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentUseCase      usecase.PaymentUseCase
	webhookMaxBodyBytes int64
	logger              coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	paymentUseCase usecase.PaymentUseCase,
	webhookMaxBodyBytes int64,
	logger coreport.Logger,
) *PaymentHandler {
	if webhookMaxBodyBytes <= 0 {
		webhookMaxBodyBytes = DefaultWebhookMaxBodyBytes
	}
	return &PaymentHandler{
		paymentUseCase:      paymentUseCase,
		webhookMaxBodyBytes: webhookMaxBodyBytes,
		logger:              logger,
	}
}

// CreateOrder handles POST /api/payment/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.NewValidationError("", "invalid request body: credits is required", err))
		return
	}

	output, err := h.paymentUseCase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		UserID:      strings.TrimSpace(req.UserID),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Credits:     *req.Credits,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		OrderID:          output.GatewayOrderID,
		Amount:           output.AmountMinorUnits,
		Currency:         output.Currency,
		GatewayKeyID:     output.GatewayKeyID,
		CreditsPurchased: output.CreditsPurchased,
		UserID:           output.UserID,
	})
}

// VerifyPayment handles POST /api/payment/verify, the checkout client callback.
// A callback for an order that is already terminal is answered with 400.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.NewValidationError("", "invalid request body", err))
		return
	}
	req.Normalize()

	result, err := h.paymentUseCase.ConfirmClientCallback(c.Request.Context(), usecase.ClientCallbackInput{
		GatewayOrderID:   strings.TrimSpace(req.GatewayOrderID),
		GatewayPaymentID: strings.TrimSpace(req.GatewayPaymentID),
		Signature:        strings.TrimSpace(req.Signature),
		UserID:           strings.TrimSpace(req.UserID),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if result.Duplicate() {
		_ = c.Error(domainerr.ErrAlreadyProcessed)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Success:          true,
		Message:          "Payment verified successfully",
		GatewayOrderID:   result.GatewayOrderID,
		CreditsGranted:   result.CreditsGranted,
		AvailableCredits: result.AvailableCredits,
	})
}

// CancelPayment handles POST /api/payment/cancel
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	var req dto.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domainerr.NewValidationError("gatewayOrderId", "is required", err))
		return
	}

	result, err := h.paymentUseCase.ReportCancellation(c.Request.Context(),
		strings.TrimSpace(req.GatewayOrderID), strings.TrimSpace(req.UserID))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelPaymentResponse{
		Success:   true,
		Status:    string(result.Status),
		Duplicate: result.Duplicate,
	})
}

// Webhook handles POST /api/payment/webhook. The body is read as raw bytes so
// the signature is checked against exactly what the gateway signed.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.webhookMaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(domainerr.NewValidationError("body", "payload too large", err))
			return
		}
		_ = c.Error(domainerr.NewValidationError("body", "unreadable payload", err))
		return
	}

	result, err := h.paymentUseCase.HandleWebhook(c.Request.Context(), usecase.WebhookInput{
		RawBody:   body,
		Signature: c.GetHeader(WebhookSignatureHeader),
		EventID:   c.GetHeader(WebhookEventIDHeader),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Message: "Webhook received",
		Outcome: string(result.Outcome),
	})
}

// History handles GET /api/payment/history?userId=..|phoneNumber=..
func (h *PaymentHandler) History(c *gin.Context) {
	ref := usecase.UserRef{
		UserID:      strings.TrimSpace(c.Query("userId")),
		PhoneNumber: strings.TrimSpace(c.Query("phoneNumber")),
	}
	if ref.IsZero() {
		_ = c.Error(domainerr.NewValidationError("", "userId or phoneNumber is required", domainerr.ErrInvalidUserID))
		return
	}

	history, err := h.paymentUseCase.ListHistory(c.Request.Context(), ref)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := dto.PaymentHistoryResponse{
		TotalPayments: len(history.Payments),
		Payments:      make([]dto.PaymentHistoryItem, 0, len(history.Payments)),
	}
	for _, p := range history.Payments {
		response.Payments = append(response.Payments, toHistoryItem(p))
	}

	c.JSON(http.StatusOK, response)
}

func toHistoryItem(p usecase.PaymentHistoryItem) dto.PaymentHistoryItem {
	item := dto.PaymentHistoryItem{
		Amount:           p.AmountMinorUnits,
		Currency:         p.Currency,
		CreditsPurchased: p.CreditsPurchased,
		Status:           string(p.Status),
		GatewayOrderID:   p.GatewayOrderID,
		PaymentMethod:    p.PaymentMethod,
		CreatedAt:        p.CreatedAt,
	}
	if p.GatewayPaymentID != "" {
		id := p.GatewayPaymentID
		item.GatewayPaymentID = &id
	}
	return item
}
