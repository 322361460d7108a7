package services

import (
	"context"
	"log"
	"time"
)

type WeekResetRunner interface {
	CheckAndResetWeek(now time.Time) (bool, error)
}

type ReminderRearm interface {
	RescheduleAll(now time.Time) (int, error)
	PurgeHandled(now time.Time) error
}

// LifecycleService is the app-start hook: it applies the weekly fresh-start
// transition and re-arms the one-shot reminders, then keeps doing so on a
// ticker so a long-running process crosses week boundaries correctly.
type LifecycleService struct {
	streaks   WeekResetRunner
	reminders ReminderRearm
	interval  time.Duration
}

func NewLifecycleService(streaks WeekResetRunner, reminders ReminderRearm) *LifecycleService {
	return &LifecycleService{
		streaks:   streaks,
		reminders: reminders,
		interval:  time.Hour,
	}
}

func (service *LifecycleService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(service.interval)
		defer ticker.Stop()

		service.run(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case tick := <-ticker.C:
				service.run(tick)
			}
		}
	}()
}

func (service *LifecycleService) run(now time.Time) {
	didReset, err := service.streaks.CheckAndResetWeek(now)
	if err != nil {
		log.Printf("lifecycle: week reset check failed: %v", err)
	}
	if didReset {
		log.Printf("lifecycle: new week, state reset")
		// The cascade cancelled all reminders; re-onboarding re-arms them.
		return
	}

	armed, err := service.reminders.RescheduleAll(now)
	if err != nil {
		log.Printf("lifecycle: reschedule reminders failed: %v", err)
	} else if armed > 0 {
		log.Printf("lifecycle: armed %d weekly reminder(s)", armed)
	}
	if err := service.reminders.PurgeHandled(now); err != nil {
		log.Printf("lifecycle: purge handled notifications failed: %v", err)
	}
}
