package model

import (
	"time"
)

// Bet represents the database model for bets. A partial unique index on
// (user_id, match_id) restricted to status = 'OPEN' enforces at most one
// open bet per user per match; see the migration package.
type Bet struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UserID      string    `gorm:"not null;size:36;index"`
	MatchID     string    `gorm:"not null;size:36;index"`
	Choice      string    `gorm:"not null;size:20"`
	StakeCents  int64     `gorm:"not null"`
	PayoutCents int64     `gorm:"not null"`
	Status      string    `gorm:"not null;size:20;index"`
	CreatedAt   time.Time `gorm:"not null"`
	SettledAt   *time.Time

	// Define relationships
	User  User  `gorm:"foreignKey:UserID;references:ID"`
	Match Match `gorm:"foreignKey:MatchID;references:ID"`
}

// TableName specifies the table name for Bet
func (Bet) TableName() string {
	return "bets"
}
