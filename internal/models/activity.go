package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity is one journal entry. AudioPath is relative to the media root and
// empty when the entry has no recording attached.
type Activity struct {
	ID         uint      `gorm:"primaryKey"`
	Date       time.Time `gorm:"type:date;not null;index"`
	AudioPath  string
	Transcript string
	Summary    string
	Reminders  string
	Spending   decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
