package models

import "time"

// Session is a single scheduled check-in at a local calendar date and
// wall-clock time. Date is stored as a plain YYYY-MM-DD string so range
// queries can compare lexicographically.
type Session struct {
	ID          string `gorm:"primaryKey"`
	Date        string `gorm:"not null;index"`
	Hour        int    `gorm:"not null"`
	Minute      int    `gorm:"not null"`
	Title       string
	Color       string
	IsCompleted bool       `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}
