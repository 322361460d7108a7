package db

import (
	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
)

type WeeklyRepository struct {
	database *gorm.DB
}

func NewWeeklyRepository(database *gorm.DB) *WeeklyRepository {
	return &WeeklyRepository{database: database}
}

func (repo *WeeklyRepository) LoadQuote() (models.WeeklyQuote, bool, error) {
	quote := models.WeeklyQuote{}
	result := repo.database.Order("id DESC").Limit(1).Find(&quote)
	if result.Error != nil {
		return models.WeeklyQuote{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyQuote{}, false, nil
	}
	return quote, true, nil
}

func (repo *WeeklyRepository) SaveQuote(quote *models.WeeklyQuote) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WeeklyQuote{}).Error; err != nil {
			return err
		}
		return tx.Create(quote).Error
	})
}

func (repo *WeeklyRepository) DeleteQuote() error {
	return repo.database.Where("1 = 1").Delete(&models.WeeklyQuote{}).Error
}

func (repo *WeeklyRepository) FindQuestionnaireByWeek(weekStartDate string) (models.WeeklyQuestionnaire, bool, error) {
	questionnaire := models.WeeklyQuestionnaire{}
	result := repo.database.Where("week_start_date = ?", weekStartDate).Limit(1).Find(&questionnaire)
	if result.Error != nil {
		return models.WeeklyQuestionnaire{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyQuestionnaire{}, false, nil
	}
	return questionnaire, true, nil
}

func (repo *WeeklyRepository) SaveQuestionnaire(questionnaire *models.WeeklyQuestionnaire) error {
	existing, found, err := repo.FindQuestionnaireByWeek(questionnaire.WeekStartDate)
	if err != nil {
		return err
	}
	if found {
		questionnaire.ID = existing.ID
	}
	return repo.database.Save(questionnaire).Error
}
