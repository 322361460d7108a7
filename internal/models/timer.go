package models

import "time"

// TimerSnapshot is the resumable state of the in-call countdown. Remaining
// time is always derived from StartedAt plus accumulated pause time; it is
// never persisted as a decrementing counter.
type TimerSnapshot struct {
	ID                 uint `gorm:"primaryKey"`
	SessionID          string
	StartedAt          time.Time `gorm:"not null"`
	TotalPausedSeconds int       `gorm:"not null;default:0"`
	LastPausedAt       *time.Time
	UpdatedAt          time.Time
}
