package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// UserRepository defines the user-balance store the engine consumes.
// Users are created by the user-management collaborator; Create exists for seeding and tooling.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByPhoneNumber retrieves a user by phone number
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the phone number
	// - ErrDatabaseConnection: If database connection fails
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same ID or phone number already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// IncrementPaidCredits atomically adds credits to the user's paid counter
	// and returns the updated user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	IncrementPaidCredits(ctx context.Context, userID string, credits int64) (*entity.User, error)
}
