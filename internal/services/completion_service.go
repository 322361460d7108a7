package services

import (
	"log"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

type CompletionSessions interface {
	Complete(sessionID string, now time.Time) (models.Session, error)
}

type CompletionStreak interface {
	MarkCompleted(now time.Time) (models.StreakRecord, error)
}

type CompletionBoards interface {
	IncrementProgress() (models.VisionBoard, bool, error)
}

type CompletionResult struct {
	Session models.Session      `json:"session"`
	Streak  models.StreakRecord `json:"streak"`
	Board   *models.VisionBoard `json:"board,omitempty"`
}

// CompletionService runs the end-of-call cascade: the session is marked
// done, the day counts toward the weekly streak and the vision board
// reveals one more step.
type CompletionService struct {
	sessions CompletionSessions
	streaks  CompletionStreak
	boards   CompletionBoards
}

func NewCompletionService(sessions CompletionSessions, streaks CompletionStreak, boards CompletionBoards) *CompletionService {
	return &CompletionService{
		sessions: sessions,
		streaks:  streaks,
		boards:   boards,
	}
}

func (service *CompletionService) CompleteSession(sessionID string, now time.Time) (CompletionResult, error) {
	session, err := service.sessions.Complete(sessionID, now)
	if err != nil {
		return CompletionResult{}, err
	}

	streak, err := service.streaks.MarkCompleted(now)
	if err != nil {
		return CompletionResult{}, err
	}

	result := CompletionResult{Session: session, Streak: streak}

	// Reveal progress is best effort: a board write failing must not undo a
	// completed session.
	board, incremented, err := service.boards.IncrementProgress()
	if err != nil {
		log.Printf("completion: vision board increment failed: %v", err)
		return result, nil
	}
	if incremented {
		result.Board = &board
	}
	return result, nil
}
