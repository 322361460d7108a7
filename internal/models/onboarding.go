package models

import "time"

const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

// WeekdayNames maps the app's day index (Monday=0 .. Sunday=6) to names used
// in onboarding answers.
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DaySchedule is one weekday picked during onboarding together with its
// reminder time in 12-hour form.
type DaySchedule struct {
	Day      string `json:"day"`
	Selected bool   `json:"selected"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Period   string `json:"period"`
}

type OnboardingAnswers struct {
	ID               uint          `gorm:"primaryKey"`
	Habits           []string      `gorm:"serializer:json"`
	PrimaryFocus     string
	Question         string
	PossibleSolution string
	SelectedDays     []DaySchedule `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
