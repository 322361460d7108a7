package db

import (
	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
)

type TimerRepository struct {
	database *gorm.DB
}

func NewTimerRepository(database *gorm.DB) *TimerRepository {
	return &TimerRepository{database: database}
}

func (repo *TimerRepository) LoadSnapshot() (models.TimerSnapshot, bool, error) {
	snapshot := models.TimerSnapshot{}
	result := repo.database.Order("id DESC").Limit(1).Find(&snapshot)
	if result.Error != nil {
		return models.TimerSnapshot{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimerSnapshot{}, false, nil
	}
	return snapshot, true, nil
}

func (repo *TimerRepository) SaveSnapshot(snapshot *models.TimerSnapshot) error {
	return repo.database.Save(snapshot).Error
}

func (repo *TimerRepository) ClearSnapshot() error {
	return repo.database.Where("1 = 1").Delete(&models.TimerSnapshot{}).Error
}
