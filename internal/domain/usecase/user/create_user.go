package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
)

// defaultUsers are seeded outside production so the checkout can be exercised locally
var defaultUsers = []struct {
	id          string
	phoneNumber string
}{
	{id: "user_demo_1", phoneNumber: "9000000001"},
	{id: "user_demo_2", phoneNumber: "9000000002"},
	{id: "user_demo_3", phoneNumber: "9000000003"},
}

// CreateUser registers a new user with a generated ID
func (u *UserUseCase) CreateUser(ctx context.Context, phoneNumber string, freeCredits *int64) (*entity.User, error) {
	credits := u.defaultFreeCredits
	if freeCredits != nil {
		credits = *freeCredits
	}
	return u.createUser(ctx, u.idGenerator.NewID(), phoneNumber, credits)
}

// CreateDefaultUsers creates the demo users if they do not exist yet
func (u *UserUseCase) CreateDefaultUsers(ctx context.Context) error {
	for _, defaultUser := range defaultUsers {
		_, err := u.userRepo.GetByID(ctx, defaultUser.id)
		if err == nil {
			u.logger.Info("Default user already exists", map[string]any{
				"user_id": defaultUser.id,
			})
			continue
		}
		if !errors.Is(err, errs.ErrUserNotFound) {
			return err
		}

		if _, err := u.createUser(ctx, defaultUser.id, defaultUser.phoneNumber, u.defaultFreeCredits); err != nil {
			return err
		}
	}

	u.logger.Info("Default users created or verified", nil)
	return nil
}

func (u *UserUseCase) createUser(ctx context.Context, id, phoneNumber string, freeCredits int64) (*entity.User, error) {
	user, err := entity.NewUser(id, phoneNumber, freeCredits, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// Phone numbers identify users at checkout, so they must stay unique
	_, err = u.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	switch {
	case err == nil:
		return nil, errs.ErrDuplicateUser
	case !errors.Is(err, errs.ErrUserNotFound):
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"user_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id":      id,
		"free_credits": freeCredits,
	})

	return user, nil
}
