package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// CreditGrantRepository records applied grants keyed by gateway payment id
type CreditGrantRepository interface {
	// Create stores a grant
	//
	// Possible errors:
	// - ErrDuplicateGrant: If a grant for the same gateway payment id exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, grant *entity.CreditGrant) error
}
