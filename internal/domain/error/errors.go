package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidCredits     = 4001
	CodeInvalidPhoneNumber = 4002
	CodeInvalidUserID      = 4003
	CodeInvalidRequest     = 4004
	CodeInvalidSignature   = 4010
	CodeUserNotFound       = 4040
	CodeOrderNotFound      = 4041
	CodeAlreadyProcessed   = 4090
	CodeIllegalTransition  = 4091

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeInconsistency   = 5001
	CodeUpstreamGateway = 5020
)

// Base error types
var (
	// ErrInvalidCredits is returned when the requested credit quantity is not a positive integer
	ErrInvalidCredits = errors.New("credits must be a positive integer")

	// ErrCreditsTooLarge is returned when the credit quantity exceeds the per-order limit
	ErrCreditsTooLarge = errors.New("credits exceed the per-order limit")

	// ErrInvalidUserID is returned when the user ID is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidPhoneNumber is returned when the phone number does not match the accepted format
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidSignature is returned when a confirmation fails authenticity verification
	ErrInvalidSignature = errors.New("signature verification failed")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrOrderNotFound is returned when no payment order exists for a gateway order id
	ErrOrderNotFound = errors.New("payment order not found")

	// ErrAlreadyProcessed is returned when a confirmation targets an order that is already terminal
	ErrAlreadyProcessed = errors.New("payment already processed")

	// ErrIllegalTransition is returned when a status change is not allowed by the payment lifecycle
	ErrIllegalTransition = errors.New("illegal payment status transition")

	// ErrDuplicateOrder is returned when a payment order with the same gateway order id already exists
	ErrDuplicateOrder = errors.New("payment order already exists")

	// ErrDuplicateGrant is returned when credits were already granted for a gateway payment id
	ErrDuplicateGrant = errors.New("credits already granted for this payment")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrGatewayUnavailable is returned when the payment gateway cannot be reached or timed out
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRejected is returned when the payment gateway refused the request
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrInconsistentState is returned when remote and local payment state diverged
	ErrInconsistentState = errors.New("payment state inconsistency")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredits), errors.Is(err, ErrCreditsTooLarge):
		return CodeInvalidCredits
	case errors.Is(err, ErrInvalidPhoneNumber):
		return CodeInvalidPhoneNumber
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrAlreadyProcessed), errors.Is(err, ErrDuplicateGrant):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrIllegalTransition):
		return CodeIllegalTransition
	case errors.Is(err, ErrInconsistentState):
		return CodeInconsistency
	case errors.Is(err, ErrGatewayUnavailable), errors.Is(err, ErrGatewayRejected):
		return CodeUpstreamGateway
	case errors.Is(err, ErrInvalidRequest), IsValidationError(err):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the HTTP status code reported to callers
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidationError(err), IsAuthenticationError(err), IsDuplicateError(err):
		return http.StatusBadRequest
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrIllegalTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns a caller-safe message for an error.
// Wrapped driver or gateway text never reaches the response body.
func PublicMessage(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case IsAuthenticationError(err):
		return "Invalid payment signature"
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrOrderNotFound):
		return "Unknown order"
	case IsDuplicateError(err):
		return "Invalid or duplicate payment"
	case errors.Is(err, ErrIllegalTransition):
		return "Payment is not in a state that allows this operation"
	case IsUpstreamError(err):
		return "Payment gateway error"
	case errors.Is(err, ErrInvalidCredits), errors.Is(err, ErrCreditsTooLarge),
		errors.Is(err, ErrInvalidPhoneNumber), errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidRequest):
		return capitalize(unwrapSentinel(err).Error())
	default:
		return "Internal server error"
	}
}

// ValidationError describes bad input shape or values
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for a request field
func NewValidationError(field, reason string, err error) error {
	if err == nil {
		err = ErrInvalidRequest
	}
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// AuthenticationError reports a failed signature check. It carries
// no signature material.
type AuthenticationError struct {
	Channel string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s confirmation: %s", e.Channel, ErrInvalidSignature.Error())
}

// Is checks if the target error is an ErrInvalidSignature
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrInvalidSignature
}

// LogFields returns a map of fields for structured logging
func (e *AuthenticationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "authentication_error",
		"channel":    e.Channel,
		"error_code": CodeInvalidSignature,
	}
}

// NewAuthenticationError creates an authentication error for a confirmation channel
func NewAuthenticationError(channel string) error {
	return &AuthenticationError{Channel: channel}
}

// TransitionError reports a rejected payment status change
type TransitionError struct {
	GatewayOrderID string
	From           string
	To             string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot move from %s to %s", e.GatewayOrderID, e.From, e.To)
}

// Is checks if the target error is an ErrIllegalTransition
func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "transition_error",
		"gateway_order_id": e.GatewayOrderID,
		"from":             e.From,
		"to":               e.To,
		"error_code":       CodeIllegalTransition,
	}
}

// NewTransitionError creates a detailed transition error
func NewTransitionError(gatewayOrderID, from, to string) error {
	return &TransitionError{GatewayOrderID: gatewayOrderID, From: from, To: to}
}

// UpstreamError wraps a failure reported by the payment gateway
type UpstreamError struct {
	Provider   string
	Operation  string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s failed with status %d: %v", e.Provider, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "upstream_error",
		"provider":    e.Provider,
		"operation":   e.Operation,
		"status_code": e.StatusCode,
		"error":       e.Err.Error(),
		"error_code":  CodeUpstreamGateway,
	}
}

// NewUpstreamError creates a gateway error. err should wrap ErrGatewayUnavailable
// or ErrGatewayRejected so that callers can branch on it.
func NewUpstreamError(provider, operation string, statusCode int, err error) error {
	return &UpstreamError{Provider: provider, Operation: operation, StatusCode: statusCode, Err: err}
}

// InconsistencyError reports that the gateway and the local store disagree about an order.
// It is never recovered automatically.
type InconsistencyError struct {
	GatewayOrderID string
	UserID         string
	Stage          string
	Err            error
}

// Error implements the error interface
func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent state for order %s (user %s) at %s: %v",
		e.GatewayOrderID, e.UserID, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *InconsistencyError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrInconsistentState
func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistentState
}

// LogFields returns a map of fields for structured logging
func (e *InconsistencyError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "inconsistency_error",
		"severity":         "critical",
		"alert":            true,
		"gateway_order_id": e.GatewayOrderID,
		"user_id":          e.UserID,
		"stage":            e.Stage,
		"error":            e.Err.Error(),
		"error_code":       CodeInconsistency,
	}
}

// NewInconsistencyError creates a new inconsistency error
func NewInconsistencyError(gatewayOrderID, userID, stage string, err error) error {
	return &InconsistencyError{GatewayOrderID: gatewayOrderID, UserID: userID, Stage: stage, Err: err}
}

// IsValidationError checks if the error is caused by bad input
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrInvalidCredits) ||
		errors.Is(err, ErrCreditsTooLarge) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidPhoneNumber) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsAuthenticationError checks if the error is a signature failure
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrInvalidSignature)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrOrderNotFound)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsDuplicateError checks if the error reports an already applied confirmation
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed) || errors.Is(err, ErrDuplicateGrant)
}

// IsUpstreamError checks if the error came from the payment gateway
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) ||
		errors.Is(err, ErrGatewayUnavailable) ||
		errors.Is(err, ErrGatewayRejected)
}

// IsInconsistencyError checks if the error reports diverged remote and local state
func IsInconsistencyError(err error) bool {
	return errors.Is(err, ErrInconsistentState)
}

// LogFields extracts structured fields from an error when it provides them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

func unwrapSentinel(err error) error {
	for _, s := range []error{ErrInvalidCredits, ErrCreditsTooLarge, ErrInvalidPhoneNumber, ErrInvalidUserID, ErrInvalidRequest} {
		if errors.Is(err, s) {
			return s
		}
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
