package repository

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditGrantRepository implements CreditGrantRepository using GORM
type CreditGrantRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreditGrantRepository creates a new CreditGrantRepository instance
func NewCreditGrantRepository(db *gorm.DB, logger coreport.Logger) *CreditGrantRepository {
	return &CreditGrantRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create stores a grant. The unique gateway_payment_id makes a second grant for
// the same payment fail inside the caller's transaction.
func (r *CreditGrantRepository) Create(ctx context.Context, grant *entity.CreditGrant) error {
	grantModel := model.CreditGrant{
		ID:               grant.ID,
		UserID:           grant.UserID,
		GatewayPaymentID: grant.GatewayPaymentID,
		Credits:          grant.Credits,
		CreatedAt:        grant.CreatedAt,
	}

	err := conn(ctx, r.db).Omit(clause.Associations).Create(&grantModel).Error
	if err == nil {
		return nil
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate credit grant detected", map[string]any{
			"gateway_payment_id": grant.GatewayPaymentID,
			"user_id":            grant.UserID,
		})
		return errs.ErrDuplicateGrant
	}

	r.logger.Error("Failed to create credit grant", map[string]any{
		"gateway_payment_id": grant.GatewayPaymentID,
		"user_id":            grant.UserID,
		"error":              err.Error(),
	})
	return wrapDatabaseError(err)
}
