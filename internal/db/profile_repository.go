package db

import (
	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) LoadProfile() (models.UserProfile, bool, error) {
	profile := models.UserProfile{}
	result := repo.database.Order("id ASC").Limit(1).Find(&profile)
	if result.Error != nil {
		return models.UserProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) SaveProfile(profile *models.UserProfile) error {
	return repo.database.Save(profile).Error
}

// SetOnboardingCompleted flips the flag on the singleton profile, creating
// the row if the user never saved a profile.
func (repo *ProfileRepository) SetOnboardingCompleted(completed bool) error {
	profile, found, err := repo.LoadProfile()
	if err != nil {
		return err
	}
	if !found {
		profile = models.UserProfile{OnboardingCompleted: completed}
		return repo.database.Create(&profile).Error
	}
	return repo.database.Model(&profile).Update("onboarding_completed", completed).Error
}

type OnboardingRepository struct {
	database *gorm.DB
}

func NewOnboardingRepository(database *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{database: database}
}

func (repo *OnboardingRepository) LoadAnswers() (models.OnboardingAnswers, bool, error) {
	answers := models.OnboardingAnswers{}
	result := repo.database.Order("id ASC").Limit(1).Find(&answers)
	if result.Error != nil {
		return models.OnboardingAnswers{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.OnboardingAnswers{}, false, nil
	}
	return answers, true, nil
}

func (repo *OnboardingRepository) SaveAnswers(answers *models.OnboardingAnswers) error {
	existing, found, err := repo.LoadAnswers()
	if err != nil {
		return err
	}
	if found {
		answers.ID = existing.ID
	}
	return repo.database.Save(answers).Error
}
