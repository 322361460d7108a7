package services

import (
	"errors"
	"log"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

// TapFreshnessWindow bounds how old a delivered notification may be before a
// cold-start replay is ignored instead of navigating into a stale call.
const TapFreshnessWindow = 5 * time.Minute

var ErrInvalidDayOfWeek = errors.New("day of week must be 0 (Monday) through 6 (Sunday)")

// NotificationGateway is the platform one-shot primitive: it fires once per
// armed date and never recurs on its own.
type NotificationGateway interface {
	Schedule(payload models.NotificationPayload, fireAt time.Time) (string, error)
	CancelAll() error
	Scheduled() ([]models.ScheduledNotification, error)
}

type HandledNotificationRepository interface {
	IsHandled(identifier string) (bool, error)
	MarkHandled(identifier string, handledAt time.Time) error
	PurgeHandledBefore(cutoff time.Time) error
}

type ScheduleSource interface {
	LoadAnswers() (models.OnboardingAnswers, bool, error)
}

type NotificationService struct {
	gateway  NotificationGateway
	handled  HandledNotificationRepository
	schedule ScheduleSource
	location *time.Location
}

func NewNotificationService(
	gateway NotificationGateway,
	handled HandledNotificationRepository,
	schedule ScheduleSource,
	location *time.Location,
) *NotificationService {
	if location == nil {
		location = time.UTC
	}
	return &NotificationService{
		gateway:  gateway,
		handled:  handled,
		schedule: schedule,
		location: location,
	}
}

// NextOccurrence resolves a weekly (dayOfWeek, hour, minute) slot to its next
// concrete fire instant after now. A slot earlier today whose time has
// already passed rolls to next week; "exactly now" counts as passed.
func NextOccurrence(dayOfWeek int, hour24 int, minute int, now time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localNow := now.In(location)

	daysUntilTarget := (dayOfWeek - DayOfWeekIndex(localNow) + 7) % 7
	if daysUntilTarget == 0 {
		if localNow.Hour() > hour24 || (localNow.Hour() == hour24 && localNow.Minute() >= minute) {
			daysUntilTarget = 7
		}
	}

	target := DateAtLocation(localNow, location).AddDate(0, 0, daysUntilTarget)
	return time.Date(target.Year(), target.Month(), target.Day(), hour24, minute, 0, 0, location)
}

// ScheduleWeekly arms one one-shot for the next occurrence of the slot. The
// payload carries the slot so the reminder can be re-armed after it fires.
func (service *NotificationService) ScheduleWeekly(dayOfWeek int, hour12 int, minute int, period string, now time.Time) (string, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "", ErrInvalidDayOfWeek
	}
	if hour12 < 1 || hour12 > 12 || minute < 0 || minute > 59 || !IsValidPeriod(period) {
		return "", ErrInvalidClock
	}

	hour24 := To24Hour(hour12, period)
	fireAt := NextOccurrence(dayOfWeek, hour24, minute, now, service.location)

	payload := models.NotificationPayload{
		Type:      models.NotificationTypeIncomingCall,
		Screen:    models.ScreenIncomingCall,
		DayOfWeek: dayOfWeek,
		Hour:      hour12,
		Minute:    minute,
		Period:    period,
	}
	return service.gateway.Schedule(payload, fireAt)
}

func (service *NotificationService) CancelAll() error {
	return service.gateway.CancelAll()
}

func (service *NotificationService) Scheduled() ([]models.ScheduledNotification, error) {
	return service.gateway.Scheduled()
}

// RescheduleAll cancels everything armed and re-arms one one-shot per
// selected onboarding day. The one-shot primitive does not renew itself, so
// this runs on every app start; a single slot failing to arm costs that
// reminder only. Returns how many slots were armed.
func (service *NotificationService) RescheduleAll(now time.Time) (int, error) {
	answers, found, err := service.schedule.LoadAnswers()
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	if err := service.gateway.CancelAll(); err != nil {
		return 0, err
	}

	armed := 0
	for _, day := range answers.SelectedDays {
		if !day.Selected {
			continue
		}
		dayIndex := weekdayIndexByName(day.Day)
		if dayIndex < 0 {
			continue
		}
		if _, err := service.ScheduleWeekly(dayIndex, day.Hour, day.Minute, day.Period, now); err != nil {
			log.Printf("notifications: arm %s failed: %v", day.Day, err)
			continue
		}
		armed++
	}
	return armed, nil
}

// HandleTap decides whether a delivered notification should navigate to the
// incoming-call screen. The handled-identifier set keeps a double dispatch
// (cold-start replay plus live listener) from navigating twice, deliveries
// older than the freshness window stay inert, and nothing navigates while
// the user is already mid-session.
func (service *NotificationService) HandleTap(
	identifier string,
	payload models.NotificationPayload,
	deliveredAt time.Time,
	now time.Time,
	currentScreen string,
) (bool, error) {
	if payload.Type != models.NotificationTypeIncomingCall && payload.Screen != models.ScreenIncomingCall {
		return false, nil
	}
	if isInSessionScreen(currentScreen) {
		return false, nil
	}
	if now.Sub(deliveredAt) > TapFreshnessWindow {
		return false, nil
	}

	alreadyHandled, err := service.handled.IsHandled(identifier)
	if err != nil {
		return false, err
	}
	if alreadyHandled {
		return false, nil
	}

	if err := service.handled.MarkHandled(identifier, now); err != nil {
		return false, err
	}
	return true, nil
}

// PurgeHandled trims identifiers older than a week; deliveries that old can
// never pass the freshness window again.
func (service *NotificationService) PurgeHandled(now time.Time) error {
	return service.handled.PurgeHandledBefore(now.AddDate(0, 0, -7))
}

func isInSessionScreen(screen string) bool {
	switch screen {
	case models.ScreenIncomingCall, models.ScreenVideoCall, models.ScreenComplete:
		return true
	default:
		return false
	}
}

func weekdayIndexByName(name string) int {
	for index, weekday := range models.WeekdayNames {
		if weekday == name {
			return index
		}
	}
	return -1
}
