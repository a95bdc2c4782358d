package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UserID      string    `gorm:"not null;size:36;index"`
	AmountCents int64     `gorm:"not null"` // signed; debits are negative
	Type        string    `gorm:"not null;size:50;index"`
	Status      string    `gorm:"not null;size:20;index"`
	Reference   string    `gorm:"size:36"` // bet or withdrawal this entry settles
	CreatedAt   time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
