package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Username  string    `gorm:"uniqueIndex;not null;size:100"`
	Balance   int64     `gorm:"not null"` // Balance in cents
	Role      string    `gorm:"not null;size:20"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
