package payment

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/metrics"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/credit"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/signature"
)

// Dispatcher is the entry point for payment confirmations. Both the checkout
// callback and the gateway webhook go through signature check, claim and grant.
type Dispatcher struct {
	uow           persistence.UnitOfWork
	orders        persistence.PaymentOrderRepository
	webhookEvents persistence.WebhookEventRepository
	stateMachine  *StateMachine
	ledger        *credit.Ledger
	idempotency   *IdempotencyHandler
	validator     *PaymentValidator
	idGenerator   coreport.IDGenerator
	timeProvider  coreport.TimeProvider
	metrics       metrics.Recorder
	logger        coreport.Logger
	keySecret     string
	webhookSecret string
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(
	uow persistence.UnitOfWork,
	orders persistence.PaymentOrderRepository,
	webhookEvents persistence.WebhookEventRepository,
	stateMachine *StateMachine,
	ledger *credit.Ledger,
	idempotency *IdempotencyHandler,
	validator *PaymentValidator,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	recorder metrics.Recorder,
	logger coreport.Logger,
	settings Settings,
) *Dispatcher {
	return &Dispatcher{
		uow:           uow,
		orders:        orders,
		webhookEvents: webhookEvents,
		stateMachine:  stateMachine,
		ledger:        ledger,
		idempotency:   idempotency,
		validator:     validator,
		idGenerator:   idGenerator,
		timeProvider:  timeProvider,
		metrics:       recorder,
		logger:        logger,
		keySecret:     settings.KeySecret,
		webhookSecret: settings.WebhookSecret,
	}
}

// ConfirmClientCallback handles the signed triplet posted by the checkout client.
// A repeated callback returns a result with ClaimAlreadyTerminal and no error.
func (d *Dispatcher) ConfirmClientCallback(ctx context.Context, input usecase.ClientCallbackInput) (*usecase.ConfirmationResult, error) {
	if err := d.validator.ValidateClientCallback(input); err != nil {
		return nil, err
	}

	if !signature.VerifyClientCallback(input.GatewayOrderID, input.GatewayPaymentID, input.Signature, d.keySecret) {
		d.metrics.SignatureFailure(metrics.ChannelClientCallback)
		d.logger.Warn("Client callback signature mismatch", map[string]any{
			"gateway_order_id":  input.GatewayOrderID,
			"signature_present": input.Signature != "",
		})
		return nil, errs.NewAuthenticationError(metrics.ChannelClientCallback)
	}

	order, err := d.orders.GetByGatewayOrderID(ctx, input.GatewayOrderID)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			d.metrics.Claim(metrics.ChannelClientCallback, string(entity.ClaimNotFound))
		}
		return nil, err
	}
	if err := d.validator.ValidateOwner(input.UserID, order.UserID); err != nil {
		d.logger.Warn("Client callback for another user's order", map[string]any{
			"gateway_order_id": input.GatewayOrderID,
			"request_user_id":  input.UserID,
			"owner_user_id":    order.UserID,
		})
		return nil, err
	}

	result, err := d.confirm(ctx, metrics.ChannelClientCallback, input.GatewayOrderID, input.GatewayPaymentID)
	if err != nil {
		return nil, err
	}
	if result.Result == entity.ClaimNotFound {
		return nil, errs.ErrOrderNotFound
	}
	return result, nil
}

// HandleWebhook handles a gateway notification. rawBody must be the unmodified request body.
// Every authenticated event that was handled, including duplicates, unknown orders,
// ignored event types and payloads that can never be processed, returns a result and
// no error. Only internal failures return an error so the gateway retries.
func (d *Dispatcher) HandleWebhook(ctx context.Context, rawBody []byte, signatureHeader, eventID string) (*usecase.WebhookResult, error) {
	if !signature.VerifyWebhook(rawBody, signatureHeader, d.webhookSecret) {
		d.metrics.SignatureFailure(metrics.ChannelWebhook)
		d.logger.Warn("Webhook signature mismatch", map[string]any{
			"event_id":          eventID,
			"signature_present": signatureHeader != "",
			"body_bytes":        len(rawBody),
		})
		return nil, errs.NewAuthenticationError(metrics.ChannelWebhook)
	}

	event := &entity.WebhookEvent{
		ID:         d.idGenerator.NewID(),
		EventID:    eventID,
		Payload:    rawBody,
		ReceivedAt: d.timeProvider.Now(),
	}

	payload, err := parseWebhookPayload(rawBody)
	if err != nil {
		return d.rejectWebhook(ctx, event, err), nil
	}
	event.EventType = payload.Event
	event.GatewayOrderID = payload.gatewayOrderID()
	event.GatewayPaymentID = payload.gatewayPaymentID()

	if d.idempotency.AlreadyHandled(ctx, eventID) {
		d.finishWebhook(ctx, event, entity.WebhookDuplicate, nil)
		return webhookResult(event), nil
	}

	if payload.Event != entity.EventPaymentCaptured {
		d.finishWebhook(ctx, event, entity.WebhookIgnored, nil)
		d.idempotency.MarkHandled(ctx, eventID)
		return webhookResult(event), nil
	}

	if event.GatewayOrderID == "" || event.GatewayPaymentID == "" {
		err := errs.NewValidationError("payload.payment.entity", "order_id and id are required", nil)
		return d.rejectWebhook(ctx, event, err), nil
	}

	result, err := d.confirm(ctx, metrics.ChannelWebhook, event.GatewayOrderID, event.GatewayPaymentID)
	if err != nil {
		d.finishWebhook(ctx, event, entity.WebhookFailed, err)
		return nil, err
	}

	switch result.Result {
	case entity.ClaimNotFound:
		d.logger.Warn("Captured payment for unknown order", map[string]any{
			"gateway_order_id":   event.GatewayOrderID,
			"gateway_payment_id": event.GatewayPaymentID,
			"event_id":           eventID,
		})
		d.finishWebhook(ctx, event, entity.WebhookUnmatched, nil)
	case entity.ClaimAlreadyTerminal:
		d.finishWebhook(ctx, event, entity.WebhookDuplicate, nil)
	default:
		d.finishWebhook(ctx, event, entity.WebhookProcessed, nil)
	}
	d.idempotency.MarkHandled(ctx, eventID)

	return webhookResult(event), nil
}

// ReportCancellation marks an order FAILED after the client abandoned checkout.
// It never overrides a successful payment.
func (d *Dispatcher) ReportCancellation(ctx context.Context, gatewayOrderID, userID string) (*usecase.CancellationResult, error) {
	if err := d.validator.ValidateGatewayOrderID(gatewayOrderID); err != nil {
		return nil, err
	}

	order, err := d.orders.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if err := d.validator.ValidateOwner(userID, order.UserID); err != nil {
		return nil, err
	}

	outcome, err := d.stateMachine.ClaimFailure(ctx, gatewayOrderID)
	if err != nil {
		if errors.Is(err, errs.ErrIllegalTransition) {
			d.metrics.Claim(metrics.ChannelCancellation, "illegal_transition")
		}
		return nil, err
	}
	d.metrics.Claim(metrics.ChannelCancellation, string(outcome.Result))

	return &usecase.CancellationResult{
		GatewayOrderID: gatewayOrderID,
		Status:         entity.StatusFailed,
		Duplicate:      outcome.Result == entity.ClaimAlreadyTerminal,
	}, nil
}

// confirm runs claim and grant. With a transactional order store both share one
// transaction, so a failed grant also undoes the claim. Otherwise the claim is
// already durable and a failed grant is an inconsistency.
func (d *Dispatcher) confirm(ctx context.Context, channel, gatewayOrderID, gatewayPaymentID string) (*usecase.ConfirmationResult, error) {
	var outcome entity.ClaimOutcome
	var user *entity.User

	err := d.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		outcome, err = d.stateMachine.ClaimSuccess(txCtx, gatewayOrderID, gatewayPaymentID)
		if err != nil || !outcome.Claimed() {
			return err
		}

		user, err = d.ledger.GrantCredits(txCtx, outcome.Order.UserID, outcome.Order.CreditsPurchased, gatewayPaymentID)
		if err != nil && !d.orders.Transactional() {
			return errs.NewInconsistencyError(gatewayOrderID, outcome.Order.UserID, "grant_credits", err)
		}
		return err
	})
	if err != nil && user != nil && !errs.IsInconsistencyError(err) && !d.orders.Transactional() {
		// the grant ran but did not commit while the claim in the separate store is durable
		err = errs.NewInconsistencyError(gatewayOrderID, outcome.Order.UserID, "commit_grant", err)
	}
	if err != nil {
		d.metrics.Claim(channel, "error")
		if errs.IsInconsistencyError(err) {
			fields := errs.LogFields(err)
			fields["channel"] = channel
			fields["gateway_payment_id"] = gatewayPaymentID
			fields["pending_grant_credits"] = outcome.Order.CreditsPurchased
			d.logger.Error("Payment claimed but credits not granted", fields)
			d.metrics.Inconsistency()
		}
		return nil, err
	}

	d.metrics.Claim(channel, string(outcome.Result))

	result := &usecase.ConfirmationResult{
		Result:         outcome.Result,
		GatewayOrderID: gatewayOrderID,
	}
	if outcome.Order != nil {
		result.UserID = outcome.Order.UserID
	}
	if outcome.Claimed() {
		d.metrics.CreditsGranted(outcome.Order.CreditsPurchased)
		result.CreditsGranted = outcome.Order.CreditsPurchased
		result.AvailableCredits = user.AvailableCredits()
		d.logger.Info("Payment confirmed", map[string]any{
			"channel":            channel,
			"gateway_order_id":   gatewayOrderID,
			"gateway_payment_id": gatewayPaymentID,
			"user_id":            user.ID,
			"credits":            outcome.Order.CreditsPurchased,
		})
	}

	return result, nil
}

// rejectWebhook acknowledges an authenticated event that cannot be processed. It is
// stored as failed and marked handled so a gateway redelivery is not processed again.
func (d *Dispatcher) rejectWebhook(ctx context.Context, event *entity.WebhookEvent, cause error) *usecase.WebhookResult {
	d.logger.Warn("Unprocessable webhook payload", map[string]any{
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"error":      cause.Error(),
	})
	d.finishWebhook(ctx, event, entity.WebhookFailed, cause)
	d.idempotency.MarkHandled(ctx, event.EventID)
	return webhookResult(event)
}

// finishWebhook stamps the outcome, records metrics and appends the audit row.
// A failed audit write is logged and does not change the response.
func (d *Dispatcher) finishWebhook(ctx context.Context, event *entity.WebhookEvent, outcome entity.WebhookOutcome, cause error) {
	processedAt := d.timeProvider.Now()
	event.Outcome = outcome
	event.ProcessedAt = &processedAt
	if cause != nil {
		event.ProcessingError = cause.Error()
	}

	eventType := event.EventType
	if eventType == "" {
		eventType = "unknown"
	}
	d.metrics.WebhookEvent(eventType, string(outcome))

	if err := d.webhookEvents.Create(ctx, event); err != nil {
		d.logger.Error("Failed to record webhook event", map[string]any{
			"event_id":         event.EventID,
			"event_type":       eventType,
			"gateway_order_id": event.GatewayOrderID,
			"outcome":          string(outcome),
			"error":            err.Error(),
		})
	}
}

func webhookResult(event *entity.WebhookEvent) *usecase.WebhookResult {
	return &usecase.WebhookResult{
		EventType:      event.EventType,
		GatewayOrderID: event.GatewayOrderID,
		Outcome:        event.Outcome,
	}
}
