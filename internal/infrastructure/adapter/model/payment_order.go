package model

import (
	"time"
)

// PaymentOrder represents the database model for payment orders.
// gateway_order_id is the natural key every confirmation arrives with.
type PaymentOrder struct {
	ID               string    `gorm:"primaryKey;size:64"`
	UserID           string    `gorm:"not null;size:64;index:idx_payment_orders_user_created,priority:1"`
	GatewayOrderID   string    `gorm:"uniqueIndex;not null;size:64"`
	GatewayPaymentID *string   `gorm:"size:64"`
	AmountMinorUnits int64     `gorm:"not null"`
	Currency         string    `gorm:"not null;size:3"`
	CreditsPurchased int64     `gorm:"not null"`
	Status           string    `gorm:"not null;size:16;index"`
	PaymentMethod    string    `gorm:"not null;size:32"`
	Receipt          string    `gorm:"size:64"`
	CreatedAt        time.Time `gorm:"not null;index:idx_payment_orders_user_created,priority:2,sort:desc"`
	UpdatedAt        time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for PaymentOrder
func (PaymentOrder) TableName() string {
	return "payment_orders"
}
