package db

import (
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) ListAll() ([]models.Session, error) {
	sessions := make([]models.Session, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *SessionRepository) FindByID(sessionID string) (models.Session, bool, error) {
	session := models.Session{}
	result := repo.database.Where("id = ?", sessionID).Limit(1).Find(&session)
	if result.Error != nil {
		return models.Session{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Session{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) Save(session *models.Session) error {
	return repo.database.Save(session).Error
}

func (repo *SessionRepository) DeleteByID(sessionID string) error {
	return repo.database.Where("id = ?", sessionID).Delete(&models.Session{}).Error
}

// ListByDateRange filters on the stored YYYY-MM-DD strings; the format sorts
// lexicographically the same as chronologically, so string comparison is the
// range contract. Bounds are inclusive.
func (repo *SessionRepository) ListByDateRange(startDay string, endDay string) ([]models.Session, error) {
	sessions := make([]models.Session, 0)
	if err := repo.database.
		Where("date >= ? AND date <= ?", startDay, endDay).
		Order("date ASC, hour ASC, minute ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListOpenAtSlot returns non-completed sessions at the exact (date, hour,
// minute) slot. Completed sessions never block new scheduling.
func (repo *SessionRepository) ListOpenAtSlot(day string, hour int, minute int) ([]models.Session, error) {
	sessions := make([]models.Session, 0)
	if err := repo.database.
		Where("date = ? AND hour = ? AND minute = ? AND is_completed = ?", day, hour, minute, false).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *SessionRepository) MarkCompleted(sessionID string, completedAt time.Time) error {
	return repo.database.Model(&models.Session{}).Where("id = ?", sessionID).Updates(map[string]any{
		"is_completed": true,
		"completed_at": completedAt,
	}).Error
}
