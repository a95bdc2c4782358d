package model

import (
	"time"
)

// Match represents the database model for matches
type Match struct {
	ID            string    `gorm:"primaryKey;size:36"`
	TeamA         string    `gorm:"not null;size:100"`
	TeamB         string    `gorm:"not null;size:100"`
	Sport         string    `gorm:"not null;size:50"`
	StartTime     time.Time `gorm:"not null;index"`
	Status        string    `gorm:"not null;size:20;index"`
	OddsHome      string    `gorm:"not null;size:20"`
	OddsAway      string    `gorm:"not null;size:20"`
	OddsDraw      *string   `gorm:"size:20"`
	OddsOver      *string   `gorm:"size:20"`
	OddsUnder     *string   `gorm:"size:20"`
	OddsHomeOver  *string   `gorm:"size:20"`
	OddsAwayOver  *string   `gorm:"size:20"`
	OddsBothYes   *string   `gorm:"size:20"`
	OddsBothNo    *string   `gorm:"size:20"`
	OverUnderLine *string   `gorm:"size:20"`
	ScoreA        *int
	ScoreB        *int
	Result     string     `gorm:"size:20"`
	ArchivedAt *time.Time `gorm:"index"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Match
func (Match) TableName() string {
	return "matches"
}
