package models

import "time"

// WeeklyQuote expires seven days after it is written; editing resets the
// window from the edit day.
type WeeklyQuote struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

type WeeklyQuestionnaire struct {
	ID            uint      `gorm:"primaryKey"`
	WeekStartDate string    `gorm:"not null;uniqueIndex"`
	Question      string    `gorm:"not null"`
	Answer        string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}
