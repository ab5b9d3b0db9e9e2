package model

import (
	"time"
)

// CreditGrant records credits applied for one captured payment
type CreditGrant struct {
	ID               string    `gorm:"primaryKey;size:64"`
	UserID           string    `gorm:"not null;size:64;index"`
	GatewayPaymentID string    `gorm:"uniqueIndex;not null;size:64"`
	Credits          int64     `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for CreditGrant
func (CreditGrant) TableName() string {
	return "credit_grants"
}
