package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// UserRef identifies a user either by ID or by phone number. ID wins when both are set.
type UserRef struct {
	UserID      string
	PhoneNumber string
}

// IsZero reports whether neither identifier is set
func (r UserRef) IsZero() bool {
	return r.UserID == "" && r.PhoneNumber == ""
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// ResolveUser finds an existing user by ID or phone number. It never creates one.
	ResolveUser(ctx context.Context, ref UserRef) (*entity.User, error)

	// GetCreditBalance returns the user's credit counters, including the derived available credits
	GetCreditBalance(ctx context.Context, userID string) (*entity.CreditBalance, error)

	// CreateUser registers a user on behalf of the user-management collaborator.
	// A nil freeCredits applies the configured default.
	CreateUser(ctx context.Context, phoneNumber string, freeCredits *int64) (*entity.User, error)

	// CreateDefaultUsers seeds the development users
	CreateDefaultUsers(ctx context.Context) error
}
