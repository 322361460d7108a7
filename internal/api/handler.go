package api

import (
	"time"

	"github.com/yotwinapp/yotwin/internal/db"
	"github.com/yotwinapp/yotwin/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	location *time.Location

	repositories  *db.Repositories
	sessions      *services.SessionService
	streaks       *services.StreakService
	boards        *services.VisionBoardService
	notifications *services.NotificationService
	timer         *services.TimerService
	completion    *services.CompletionService
	onboarding    *services.OnboardingService
	weekly        *services.WeeklyService
	profiles      *services.ProfileService
}

func NewHandler(database *gorm.DB, location *time.Location, gateway services.NotificationGateway) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	handler := &Handler{
		db:           database,
		location:     location,
		repositories: repositories,
	}

	handler.sessions = services.NewSessionService(repositories.Sessions, location)
	handler.boards = services.NewVisionBoardService(repositories.VisionBoards, location)
	handler.notifications = services.NewNotificationService(gateway, repositories.Notifications, repositories.Onboarding, location)
	handler.streaks = services.NewStreakService(
		repositories.Streaks,
		repositories.Counters,
		repositories.Profiles,
		repositories.VisionBoards,
		handler.notifications,
		location,
	)
	handler.timer = services.NewTimerService(repositories.Timers)
	handler.completion = services.NewCompletionService(handler.sessions, handler.streaks, handler.boards)
	handler.onboarding = services.NewOnboardingService(
		repositories.Onboarding,
		repositories.Profiles,
		handler.sessions,
		handler.notifications,
		location,
	)
	handler.weekly = services.NewWeeklyService(repositories.Weekly, repositories.Weekly, location)
	handler.profiles = services.NewProfileService(repositories.Profiles)
	return handler
}

// Streaks exposes the streak service for the lifecycle loop in main.
func (handler *Handler) Streaks() *services.StreakService {
	return handler.streaks
}

// Notifications exposes the notification service for the lifecycle loop.
func (handler *Handler) Notifications() *services.NotificationService {
	return handler.notifications
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
