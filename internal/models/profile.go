package models

import "time"

// Profile is created lazily on first access, one row per user.
type Profile struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	ProfilePhoto string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
