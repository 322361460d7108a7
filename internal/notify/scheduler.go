// Package notify is the in-process stand-in for the platform's local
// notification primitive: one-shot, date-triggered, no native recurrence.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

// Delivery is a fired notification waiting for the client to act on it.
type Delivery struct {
	Notification models.ScheduledNotification `json:"notification"`
	DeliveredAt  time.Time                    `json:"deliveredAt"`
}

type armedEntry struct {
	notification models.ScheduledNotification
	timer        *time.Timer
}

// Scheduler arms one timer per scheduled notification and moves entries to
// the delivered feed when they fire. Everything is in memory; persistence
// of the weekly schedule lives with the onboarding answers, which is what
// rescheduling re-arms from.
type Scheduler struct {
	mu        sync.Mutex
	armed     map[string]*armedEntry
	delivered []Delivery
	onDeliver func(Delivery)
}

func NewScheduler() *Scheduler {
	return &Scheduler{armed: make(map[string]*armedEntry)}
}

// OnDeliver registers a callback invoked outside the scheduler lock each
// time a notification fires. Set it before arming anything.
func (scheduler *Scheduler) OnDeliver(callback func(Delivery)) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.onDeliver = callback
}

func (scheduler *Scheduler) Schedule(payload models.NotificationPayload, fireAt time.Time) (string, error) {
	identifier, err := newIdentifier()
	if err != nil {
		return "", fmt.Errorf("generate notification identifier: %w", err)
	}

	notification := models.ScheduledNotification{
		Identifier: identifier,
		FireAt:     fireAt,
		Payload:    payload,
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.armed[identifier] = &armedEntry{
		notification: notification,
		timer: time.AfterFunc(time.Until(fireAt), func() {
			scheduler.deliver(identifier)
		}),
	}
	return identifier, nil
}

func (scheduler *Scheduler) CancelAll() error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	for identifier, entry := range scheduler.armed {
		entry.timer.Stop()
		delete(scheduler.armed, identifier)
	}
	return nil
}

func (scheduler *Scheduler) Scheduled() ([]models.ScheduledNotification, error) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	notifications := make([]models.ScheduledNotification, 0, len(scheduler.armed))
	for _, entry := range scheduler.armed {
		notifications = append(notifications, entry.notification)
	}
	return notifications, nil
}

// Delivered returns fired notifications, newest last.
func (scheduler *Scheduler) Delivered() []Delivery {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	deliveries := make([]Delivery, len(scheduler.delivered))
	copy(deliveries, scheduler.delivered)
	return deliveries
}

func (scheduler *Scheduler) deliver(identifier string) {
	scheduler.mu.Lock()
	entry, ok := scheduler.armed[identifier]
	if !ok {
		scheduler.mu.Unlock()
		return
	}
	delete(scheduler.armed, identifier)

	delivery := Delivery{
		Notification: entry.notification,
		DeliveredAt:  time.Now(),
	}
	scheduler.delivered = append(scheduler.delivered, delivery)
	if len(scheduler.delivered) > 100 {
		scheduler.delivered = scheduler.delivered[len(scheduler.delivered)-100:]
	}
	callback := scheduler.onDeliver
	scheduler.mu.Unlock()

	if callback != nil {
		callback(delivery)
	}
}
