package db

import "gorm.io/gorm"

type Repositories struct {
	Sessions      *SessionRepository
	Streaks       *StreakRepository
	Counters      *CounterRepository
	VisionBoards  *VisionBoardRepository
	Profiles      *ProfileRepository
	Onboarding    *OnboardingRepository
	Notifications *NotificationRepository
	Timers        *TimerRepository
	Weekly        *WeeklyRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Sessions:      NewSessionRepository(database),
		Streaks:       NewStreakRepository(database),
		Counters:      NewCounterRepository(database),
		VisionBoards:  NewVisionBoardRepository(database),
		Profiles:      NewProfileRepository(database),
		Onboarding:    NewOnboardingRepository(database),
		Notifications: NewNotificationRepository(database),
		Timers:        NewTimerRepository(database),
		Weekly:        NewWeeklyRepository(database),
	}
}
