package models

import "time"

// UserProfile is a singleton row; the app has exactly one local user.
type UserProfile struct {
	ID                  uint `gorm:"primaryKey"`
	Name                string
	Birthday            *time.Time
	AvatarURI           string
	MemberSinceYear     int  `gorm:"not null;default:0"`
	OnboardingCompleted bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
