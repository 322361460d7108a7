package services

import (
	"errors"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

// SessionDurationSeconds is the fixed length of a video check-in.
const SessionDurationSeconds = 180

var ErrTimerNotRunning = errors.New("no active session timer")

type TimerRepository interface {
	LoadSnapshot() (models.TimerSnapshot, bool, error)
	SaveSnapshot(snapshot *models.TimerSnapshot) error
	ClearSnapshot() error
}

type TimerState struct {
	Active           bool   `json:"active"`
	Finished         bool   `json:"finished"`
	SessionID        string `json:"sessionId,omitempty"`
	RemainingSeconds int    `json:"remainingSeconds"`
}

type TimerService struct {
	timers TimerRepository
}

func NewTimerService(timers TimerRepository) *TimerService {
	return &TimerService{timers: timers}
}

// RemainingSeconds derives the countdown from absolute instants: elapsed
// wall time since start, minus everything spent paused (including a still
// open pause). Ticks never feed back into this; the snapshot alone decides.
func RemainingSeconds(snapshot models.TimerSnapshot, now time.Time) int {
	pausedSeconds := snapshot.TotalPausedSeconds
	if snapshot.LastPausedAt != nil {
		pausedSeconds += int(now.Sub(*snapshot.LastPausedAt).Seconds())
	}
	elapsedActive := int(now.Sub(snapshot.StartedAt).Seconds()) - pausedSeconds
	remaining := SessionDurationSeconds - elapsedActive
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Start begins a fresh countdown, replacing any previous snapshot.
func (service *TimerService) Start(sessionID string, now time.Time) (models.TimerSnapshot, error) {
	if err := service.timers.ClearSnapshot(); err != nil {
		return models.TimerSnapshot{}, err
	}
	snapshot := models.TimerSnapshot{
		SessionID: sessionID,
		StartedAt: now,
	}
	if err := service.timers.SaveSnapshot(&snapshot); err != nil {
		return models.TimerSnapshot{}, err
	}
	return snapshot, nil
}

// Background opens a pause when the app leaves the foreground. A pause that
// is already open stays open; backgrounding twice must not double count.
func (service *TimerService) Background(now time.Time) (TimerState, error) {
	snapshot, found, err := service.timers.LoadSnapshot()
	if err != nil {
		return TimerState{}, err
	}
	if !found {
		return TimerState{}, ErrTimerNotRunning
	}

	if snapshot.LastPausedAt == nil {
		pausedAt := now
		snapshot.LastPausedAt = &pausedAt
		if err := service.timers.SaveSnapshot(&snapshot); err != nil {
			return TimerState{}, err
		}
	}
	return TimerState{
		Active:           true,
		SessionID:        snapshot.SessionID,
		RemainingSeconds: RemainingSeconds(snapshot, now),
	}, nil
}

// Foreground resumes after a background gap or an app relaunch. The open
// pause is folded into the accumulated total, so background time never
// counts against the countdown. A countdown that ran out while suspended
// clears its state and reports finished.
func (service *TimerService) Foreground(now time.Time) (TimerState, error) {
	snapshot, found, err := service.timers.LoadSnapshot()
	if err != nil {
		return TimerState{}, err
	}
	if !found {
		return TimerState{}, nil
	}

	remaining := RemainingSeconds(snapshot, now)
	if remaining == 0 {
		if err := service.timers.ClearSnapshot(); err != nil {
			return TimerState{}, err
		}
		return TimerState{Finished: true, SessionID: snapshot.SessionID}, nil
	}

	if snapshot.LastPausedAt != nil {
		snapshot.TotalPausedSeconds += int(now.Sub(*snapshot.LastPausedAt).Seconds())
		snapshot.LastPausedAt = nil
		if err := service.timers.SaveSnapshot(&snapshot); err != nil {
			return TimerState{}, err
		}
	}
	return TimerState{
		Active:           true,
		SessionID:        snapshot.SessionID,
		RemainingSeconds: remaining,
	}, nil
}

// State reads the countdown without touching pause bookkeeping.
func (service *TimerService) State(now time.Time) (TimerState, error) {
	snapshot, found, err := service.timers.LoadSnapshot()
	if err != nil {
		return TimerState{}, err
	}
	if !found {
		return TimerState{}, nil
	}

	remaining := RemainingSeconds(snapshot, now)
	return TimerState{
		Active:           remaining > 0,
		Finished:         remaining == 0,
		SessionID:        snapshot.SessionID,
		RemainingSeconds: remaining,
	}, nil
}

// Stop abandons the countdown and clears persisted state.
func (service *TimerService) Stop() error {
	return service.timers.ClearSnapshot()
}
