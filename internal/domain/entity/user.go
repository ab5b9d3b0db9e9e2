package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

// DefaultFreeCredits is the number of complimentary credits a new user starts with
const DefaultFreeCredits int64 = 100

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// User represents a user known to the credit engine.
// The user record is owned by the user-management collaborator; the engine only
// reads it and increments PaidCredits.
type User struct {
	ID          string    // Opaque identifier
	PhoneNumber string    // Digits only, 10 to 15 characters
	FreeCredits int64     // Complimentary credits
	PaidCredits int64     // Credits bought through the gateway
	UsedCredits int64     // Credits consumed by the product
	CreatedAt   time.Time // When the user was created
	UpdatedAt   time.Time // When the user was last updated
}

// NewUser creates a new user with the given identity and free credit allowance
func NewUser(id, phoneNumber string, freeCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if freeCredits < 0 {
		return nil, errs.NewValidationError("freeCredits", "must not be negative", errs.ErrInvalidCredits)
	}

	now := timeProvider.Now()
	return &User{
		ID:          id,
		PhoneNumber: phoneNumber,
		FreeCredits: freeCredits,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AvailableCredits returns free + paid - used. It is always derived, never stored.
func (u *User) AvailableCredits() int64 {
	return u.FreeCredits + u.PaidCredits - u.UsedCredits
}

// ApplyGrant adds purchased credits to the in-memory copy of the user.
// Persistence uses an atomic increment; this keeps the returned entity in sync.
func (u *User) ApplyGrant(credits int64, timeProvider coreport.TimeProvider) {
	u.PaidCredits += credits
	u.UpdatedAt = timeProvider.Now()
}

// ValidatePhoneNumber checks that a phone number contains 10 to 15 digits only
func ValidatePhoneNumber(phoneNumber string) error {
	if !phoneNumberPattern.MatchString(phoneNumber) {
		return errs.NewValidationError("phoneNumber", "must contain 10 to 15 digits", errs.ErrInvalidPhoneNumber)
	}
	return nil
}
