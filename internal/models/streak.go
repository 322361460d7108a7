package models

import "time"

// StreakRecord tracks completed days within a single week. WeekStartDate is
// the Monday anchor as YYYY-MM-DD; a record whose anchor no longer matches
// the current week is treated as reset, never migrated.
type StreakRecord struct {
	ID             uint     `gorm:"primaryKey"`
	WeekStartDate  string   `gorm:"not null"`
	CurrentStreak  int      `gorm:"not null;default:0"`
	CompletedDates []string `gorm:"serializer:json"`
	UpdatedAt      time.Time
}

const LifetimeCounterName = "lifetime_completed_days"

type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
