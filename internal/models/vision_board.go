package models

import "time"

const DefaultBoardSessionTarget = 7

// VisionBoard is a user-supplied image revealed step by step as sessions
// complete during its week. Exactly one board may be current at a time; past
// boards remain in the album.
type VisionBoard struct {
	ID                string    `gorm:"primaryKey"`
	ImageURI          string    `gorm:"not null"`
	WeekStartDate     string    `gorm:"not null;index"`
	CompletedSessions int       `gorm:"not null;default:0"`
	TotalSessions     int       `gorm:"not null;default:7"`
	IsCompleted       bool      `gorm:"not null;default:false"`
	IsCurrent         bool      `gorm:"not null;default:false;index"`
	CreatedAt         time.Time `gorm:"not null"`
}
