package db

import (
	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository struct {
	database *gorm.DB
}

func NewStreakRepository(database *gorm.DB) *StreakRepository {
	return &StreakRepository{database: database}
}

func (repo *StreakRepository) LoadRecord() (models.StreakRecord, bool, error) {
	record := models.StreakRecord{}
	result := repo.database.Order("id ASC").Limit(1).Find(&record)
	if result.Error != nil {
		return models.StreakRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StreakRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *StreakRepository) SaveRecord(record *models.StreakRecord) error {
	return repo.database.Save(record).Error
}

type CounterRepository struct {
	database *gorm.DB
}

func NewCounterRepository(database *gorm.DB) *CounterRepository {
	return &CounterRepository{database: database}
}

func (repo *CounterRepository) Value(name string) (int64, error) {
	counter := models.Counter{}
	result := repo.database.Where("name = ?", name).Limit(1).Find(&counter)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}
	return counter.Value, nil
}

func (repo *CounterRepository) Increment(name string) (int64, error) {
	err := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]any{"value": gorm.Expr("value + 1")}),
	}).Create(&models.Counter{Name: name, Value: 1}).Error
	if err != nil {
		return 0, err
	}
	return repo.Value(name)
}
