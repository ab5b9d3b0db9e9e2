package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID          string    `gorm:"primaryKey;size:64"`
	PhoneNumber string    `gorm:"uniqueIndex;not null;size:15"`
	FreeCredits int64     `gorm:"not null;default:0"`
	PaidCredits int64     `gorm:"not null;default:0"`
	UsedCredits int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
