package payment

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
)

// PaymentValidator provides validation for payment requests
type PaymentValidator struct {
	maxCreditsPerOrder int64
}

// NewPaymentValidator creates a new PaymentValidator
func NewPaymentValidator(maxCreditsPerOrder int64) *PaymentValidator {
	return &PaymentValidator{maxCreditsPerOrder: maxCreditsPerOrder}
}

// ValidateCreateOrder validates a purchase request
func (v *PaymentValidator) ValidateCreateOrder(input usecase.CreateOrderInput) error {
	if strings.TrimSpace(input.UserID) == "" && strings.TrimSpace(input.PhoneNumber) == "" {
		return errs.NewValidationError("userId", "userId or phoneNumber is required", errs.ErrInvalidUserID)
	}

	if input.Credits <= 0 {
		return errs.ErrInvalidCredits
	}

	if v.maxCreditsPerOrder > 0 && input.Credits > v.maxCreditsPerOrder {
		return errs.NewValidationError("credits", fmt.Sprintf("must not exceed %d", v.maxCreditsPerOrder), errs.ErrCreditsTooLarge)
	}

	return nil
}

// ValidateClientCallback checks that the callback carries everything needed to verify it
func (v *PaymentValidator) ValidateClientCallback(input usecase.ClientCallbackInput) error {
	if err := v.ValidateGatewayOrderID(input.GatewayOrderID); err != nil {
		return err
	}

	if strings.TrimSpace(input.GatewayPaymentID) == "" {
		return errs.NewValidationError("gatewayPaymentId", "is required", nil)
	}

	if strings.TrimSpace(input.Signature) == "" {
		return errs.NewValidationError("signature", "is required", nil)
	}

	return nil
}

// ValidateGatewayOrderID checks a gateway order id reference
func (v *PaymentValidator) ValidateGatewayOrderID(gatewayOrderID string) error {
	if strings.TrimSpace(gatewayOrderID) == "" {
		return errs.NewValidationError("gatewayOrderId", "is required", nil)
	}
	return nil
}

// ValidateOwner rejects a request that names a user other than the order owner
func (v *PaymentValidator) ValidateOwner(requestUserID, ownerID string) error {
	requestUserID = strings.TrimSpace(requestUserID)
	if requestUserID != "" && requestUserID != ownerID {
		return errs.NewValidationError("userId", "does not match the order owner", nil)
	}
	return nil
}
