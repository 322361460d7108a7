package services

import (
	"strings"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

type ProfileRepository interface {
	LoadProfile() (models.UserProfile, bool, error)
	SaveProfile(profile *models.UserProfile) error
}

type ProfileInput struct {
	Name      string
	Birthday  *time.Time
	AvatarURI string
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Profile() (models.UserProfile, bool, error) {
	return service.profiles.LoadProfile()
}

// Save upserts the singleton profile. The member-since year is fixed the
// first time the profile is written and never moves after that.
func (service *ProfileService) Save(input ProfileInput, now time.Time) (models.UserProfile, error) {
	profile, found, err := service.profiles.LoadProfile()
	if err != nil {
		return models.UserProfile{}, err
	}
	if !found {
		profile = models.UserProfile{}
	}

	profile.Name = strings.TrimSpace(input.Name)
	profile.Birthday = input.Birthday
	profile.AvatarURI = strings.TrimSpace(input.AvatarURI)
	if profile.MemberSinceYear == 0 {
		profile.MemberSinceYear = now.Year()
	}

	if err := service.profiles.SaveProfile(&profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
