package migration

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
)

// SeedDefaultUsers creates the development users through the user use case,
// so seeding follows the same validation as any other user creation
func SeedDefaultUsers(ctx context.Context, users usecase.UserUseCase) error {
	return users.CreateDefaultUsers(ctx)
}
