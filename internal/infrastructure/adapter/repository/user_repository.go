package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:          userModel.ID,
		PhoneNumber: userModel.PhoneNumber,
		FreeCredits: userModel.FreeCredits,
		PaidCredits: userModel.PaidCredits,
		UsedCredits: userModel.UsedCredits,
		CreatedAt:   userModel.CreatedAt,
		UpdatedAt:   userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", fields)
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user", fields)
		return errs.ErrDuplicateUser
	}

	fields["error"] = err.Error()
	fields["error_type"] = string(r.errorClassifier.Classify(err))
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return wrapDatabaseError(err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return r.modelToEntity(&userModel), nil
}

// GetByPhoneNumber retrieves a user by phone number
func (r *UserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var userModel model.User
	if err := conn(ctx, r.db).Where("phone_number = ?", phoneNumber).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by phone", err, map[string]any{"phone_present": phoneNumber != ""})
	}
	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		FreeCredits: user.FreeCredits,
		PaidCredits: user.PaidCredits,
		UsedCredits: user.UsedCredits,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	if err := conn(ctx, r.db).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"user_id": user.ID})
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":      user.ID,
		"free_credits": user.FreeCredits,
	})
	return nil
}

// IncrementPaidCredits adds credits with a single UPDATE so concurrent grants
// never lose an increment, then reads the row back in the same connection.
func (r *UserRepository) IncrementPaidCredits(ctx context.Context, userID string, credits int64) (*entity.User, error) {
	db := conn(ctx, r.db)
	fields := map[string]any{"user_id": userID, "credits": credits}

	result := db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"paid_credits": gorm.Expr("paid_credits + ?", credits),
			"updated_at":   r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("incrementing paid credits", result.Error, fields)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during credit increment", fields)
		return nil, errs.ErrUserNotFound
	}

	var userModel model.User
	if err := db.Where("id = ?", userID).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("reading user after increment", err, fields)
	}

	user := r.modelToEntity(&userModel)
	r.logger.Debug("Paid credits incremented", map[string]any{
		"user_id":           userID,
		"credits":           credits,
		"paid_credits":      user.PaidCredits,
		"available_credits": user.AvailableCredits(),
	})
	return user, nil
}
