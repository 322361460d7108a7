package db

import (
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) IsHandled(identifier string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.HandledNotification{}).
		Where("identifier = ?", identifier).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *NotificationRepository) MarkHandled(identifier string, handledAt time.Time) error {
	return repo.database.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.HandledNotification{Identifier: identifier, HandledAt: handledAt}).Error
}

// PurgeHandledBefore drops stale identifiers so the set does not grow forever.
func (repo *NotificationRepository) PurgeHandledBefore(cutoff time.Time) error {
	return repo.database.Where("handled_at < ?", cutoff).Delete(&models.HandledNotification{}).Error
}
