package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo           persistence.UserRepository
	idGenerator        coreport.IDGenerator
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	defaultFreeCredits int64
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultFreeCredits int64,
) *UserUseCase {
	if defaultFreeCredits < 0 {
		defaultFreeCredits = entity.DefaultFreeCredits
	}
	return &UserUseCase{
		userRepo:           userRepo,
		idGenerator:        idGenerator,
		timeProvider:       timeProvider,
		logger:             logger,
		defaultFreeCredits: defaultFreeCredits,
	}
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// ResolveUser finds an existing user by ID or, failing that, by phone number
func (u *UserUseCase) ResolveUser(ctx context.Context, ref usecase.UserRef) (*entity.User, error) {
	userID := strings.TrimSpace(ref.UserID)
	phoneNumber := strings.TrimSpace(ref.PhoneNumber)

	switch {
	case userID != "":
		return u.userRepo.GetByID(ctx, userID)
	case phoneNumber != "":
		if err := entity.ValidatePhoneNumber(phoneNumber); err != nil {
			return nil, err
		}
		return u.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	default:
		return nil, errs.NewValidationError("userId", "userId or phoneNumber is required", errs.ErrInvalidUserID)
	}
}

// GetCreditBalance returns a user's credit counters
func (u *UserUseCase) GetCreditBalance(ctx context.Context, userID string) (*entity.CreditBalance, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to get user", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	balance := entity.UserToCreditBalance(user)

	u.logger.Debug("User credits retrieved", map[string]any{
		"user_id":           userID,
		"available_credits": balance.AvailableCredits,
	})

	return &balance, nil
}
