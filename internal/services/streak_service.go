package services

import (
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

type StreakRepository interface {
	LoadRecord() (models.StreakRecord, bool, error)
	SaveRecord(record *models.StreakRecord) error
}

type CounterRepository interface {
	Value(name string) (int64, error)
	Increment(name string) (int64, error)
}

// OnboardingFlagStore and the two interfaces below are the collaborators the
// weekly fresh-start cascade touches.
type OnboardingFlagStore interface {
	SetOnboardingCompleted(completed bool) error
}

type CurrentBoardClearer interface {
	ClearCurrent() error
}

type NotificationCanceller interface {
	CancelAll() error
}

type StreakService struct {
	streaks       StreakRepository
	counters      CounterRepository
	onboarding    OnboardingFlagStore
	boards        CurrentBoardClearer
	notifications NotificationCanceller
	location      *time.Location
}

func NewStreakService(
	streaks StreakRepository,
	counters CounterRepository,
	onboarding OnboardingFlagStore,
	boards CurrentBoardClearer,
	notifications NotificationCanceller,
	location *time.Location,
) *StreakService {
	if location == nil {
		location = time.UTC
	}
	return &StreakService{
		streaks:       streaks,
		counters:      counters,
		onboarding:    onboarding,
		boards:        boards,
		notifications: notifications,
		location:      location,
	}
}

// ResolveWeek is the week-rollover transition: a stored record whose anchor
// matches weekAnchor is returned as-is, anything else collapses to the empty
// state for weekAnchor. Pure so the transition is testable without storage.
func ResolveWeek(stored models.StreakRecord, found bool, weekAnchor string) (models.StreakRecord, bool) {
	if found && stored.WeekStartDate == weekAnchor {
		if stored.CompletedDates == nil {
			stored.CompletedDates = []string{}
		}
		return stored, false
	}
	fresh := models.StreakRecord{
		ID:             stored.ID,
		WeekStartDate:  weekAnchor,
		CompletedDates: []string{},
	}
	return fresh, true
}

func (service *StreakService) weekAnchor(now time.Time) string {
	return FormatDay(WeekStart(now, service.location))
}

// Current returns the logical streak for the week containing now. A stale
// stored record reads as reset; nothing is persisted here.
func (service *StreakService) Current(now time.Time) (models.StreakRecord, error) {
	stored, found, err := service.streaks.LoadRecord()
	if err != nil {
		return models.StreakRecord{WeekStartDate: service.weekAnchor(now), CompletedDates: []string{}}, err
	}
	record, _ := ResolveWeek(stored, found, service.weekAnchor(now))
	return record, nil
}

// MarkCompleted records today as a completed day. Completing the same day
// twice leaves the record unchanged and bumps the lifetime counter only once.
func (service *StreakService) MarkCompleted(now time.Time) (models.StreakRecord, error) {
	stored, found, err := service.streaks.LoadRecord()
	if err != nil {
		return models.StreakRecord{}, err
	}

	record, _ := ResolveWeek(stored, found, service.weekAnchor(now))
	today := FormatDay(DateAtLocation(now, service.location))
	for _, completed := range record.CompletedDates {
		if completed == today {
			return record, nil
		}
	}

	record.CompletedDates = append(record.CompletedDates, today)
	record.CurrentStreak = len(record.CompletedDates)
	if err := service.streaks.SaveRecord(&record); err != nil {
		return models.StreakRecord{}, err
	}
	if _, err := service.counters.Increment(models.LifetimeCounterName); err != nil {
		return models.StreakRecord{}, err
	}
	return record, nil
}

// Reset force-clears the streak to the empty state for the current week.
func (service *StreakService) Reset(now time.Time) (models.StreakRecord, error) {
	stored, _, err := service.streaks.LoadRecord()
	if err != nil {
		return models.StreakRecord{}, err
	}
	record := models.StreakRecord{
		ID:             stored.ID,
		WeekStartDate:  service.weekAnchor(now),
		CompletedDates: []string{},
	}
	if err := service.streaks.SaveRecord(&record); err != nil {
		return models.StreakRecord{}, err
	}
	return record, nil
}

func (service *StreakService) Lifetime() (int64, error) {
	return service.counters.Value(models.LifetimeCounterName)
}

// CheckAndResetWeek runs the weekly fresh-start policy: when the stored
// anchor is from a previous week it clears the streak, forces re-onboarding,
// drops the current vision board and cancels every armed notification.
// Returns true when the cascade ran.
func (service *StreakService) CheckAndResetWeek(now time.Time) (bool, error) {
	stored, found, err := service.streaks.LoadRecord()
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if stored.WeekStartDate == service.weekAnchor(now) {
		return false, nil
	}

	if _, err := service.Reset(now); err != nil {
		return false, err
	}
	if err := service.onboarding.SetOnboardingCompleted(false); err != nil {
		return false, err
	}
	if err := service.boards.ClearCurrent(); err != nil {
		return false, err
	}
	if err := service.notifications.CancelAll(); err != nil {
		return false, err
	}
	return true, nil
}
