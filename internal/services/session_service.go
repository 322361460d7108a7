package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yotwinapp/yotwin/internal/models"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionOverlap     = errors.New("another session is scheduled at this time")
	ErrInvalidSessionTime = errors.New("invalid session time")
)

type SessionRepository interface {
	ListAll() ([]models.Session, error)
	FindByID(sessionID string) (models.Session, bool, error)
	Save(session *models.Session) error
	DeleteByID(sessionID string) error
	ListByDateRange(startDay string, endDay string) ([]models.Session, error)
	ListOpenAtSlot(day string, hour int, minute int) ([]models.Session, error)
	MarkCompleted(sessionID string, completedAt time.Time) error
}

type SessionInput struct {
	Date   string
	Hour   int
	Minute int
	Title  string
	Color  string
}

type SessionService struct {
	sessions SessionRepository
	location *time.Location
}

func NewSessionService(sessions SessionRepository, location *time.Location) *SessionService {
	if location == nil {
		location = time.UTC
	}
	return &SessionService{
		sessions: sessions,
		location: location,
	}
}

func (service *SessionService) List() ([]models.Session, error) {
	return service.sessions.ListAll()
}

func (service *SessionService) ListRange(fromDay string, toDay string) ([]models.Session, error) {
	if _, err := ParseDay(fromDay, service.location); err != nil {
		return nil, err
	}
	if _, err := ParseDay(toDay, service.location); err != nil {
		return nil, err
	}
	return service.sessions.ListByDateRange(fromDay, toDay)
}

func (service *SessionService) Create(input SessionInput, now time.Time) (models.Session, error) {
	if err := service.validateInput(&input); err != nil {
		return models.Session{}, err
	}

	overlaps, err := service.HasOverlap(input.Date, input.Hour, input.Minute, "")
	if err != nil {
		return models.Session{}, err
	}
	if overlaps {
		return models.Session{}, ErrSessionOverlap
	}

	session := models.Session{
		ID:        uuid.NewString(),
		Date:      input.Date,
		Hour:      input.Hour,
		Minute:    input.Minute,
		Title:     input.Title,
		Color:     input.Color,
		CreatedAt: now,
	}
	if err := service.sessions.Save(&session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (service *SessionService) Update(sessionID string, input SessionInput) (models.Session, error) {
	if err := service.validateInput(&input); err != nil {
		return models.Session{}, err
	}

	session, found, err := service.sessions.FindByID(sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if !found {
		return models.Session{}, ErrSessionNotFound
	}

	overlaps, err := service.HasOverlap(input.Date, input.Hour, input.Minute, sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if overlaps {
		return models.Session{}, ErrSessionOverlap
	}

	session.Date = input.Date
	session.Hour = input.Hour
	session.Minute = input.Minute
	session.Title = input.Title
	session.Color = input.Color
	if err := service.sessions.Save(&session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (service *SessionService) Delete(sessionID string) error {
	return service.sessions.DeleteByID(sessionID)
}

// HasOverlap reports whether a non-completed session already occupies the
// exact (date, hour, minute) slot. excludeID lets an edit validate against
// every session but itself.
func (service *SessionService) HasOverlap(day string, hour int, minute int, excludeID string) (bool, error) {
	open, err := service.sessions.ListOpenAtSlot(day, hour, minute)
	if err != nil {
		return false, err
	}
	for _, session := range open {
		if excludeID != "" && session.ID == excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

// Complete marks the session done. Calling it again overwrites CompletedAt
// with the newer instant; everything downstream stays idempotent per day.
func (service *SessionService) Complete(sessionID string, now time.Time) (models.Session, error) {
	session, found, err := service.sessions.FindByID(sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if !found {
		return models.Session{}, ErrSessionNotFound
	}

	if err := service.sessions.MarkCompleted(sessionID, now); err != nil {
		return models.Session{}, err
	}
	session.IsCompleted = true
	session.CompletedAt = &now
	return session, nil
}

func (service *SessionService) validateInput(input *SessionInput) error {
	input.Date = strings.TrimSpace(input.Date)
	input.Title = strings.TrimSpace(input.Title)
	if _, err := ParseDay(input.Date, service.location); err != nil {
		return err
	}
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return ErrInvalidSessionTime
	}
	return nil
}
