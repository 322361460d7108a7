package services

import (
	"errors"
	"strings"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

const (
	maxOnboardingHabits = 3
	maxHabitLength      = 35
)

var (
	ErrTooManyHabits   = errors.New("at most 3 habits allowed")
	ErrHabitTooLong    = errors.New("habit must be 35 characters or fewer")
	ErrNoDaySelected   = errors.New("select at least one day")
	ErrUnknownWeekday  = errors.New("unknown weekday name")
	ErrAnswersRequired = errors.New("complete onboarding answers first")
)

type OnboardingAnswersRepository interface {
	LoadAnswers() (models.OnboardingAnswers, bool, error)
	SaveAnswers(answers *models.OnboardingAnswers) error
}

type OnboardingProfileStore interface {
	LoadProfile() (models.UserProfile, bool, error)
	SaveProfile(profile *models.UserProfile) error
}

type OnboardingSessionCreator interface {
	Create(input SessionInput, now time.Time) (models.Session, error)
}

type OnboardingRescheduler interface {
	RescheduleAll(now time.Time) (int, error)
}

type OnboardingStatus struct {
	Completed  bool `json:"completed"`
	HasAnswers bool `json:"hasAnswers"`
}

type OnboardingService struct {
	answers   OnboardingAnswersRepository
	profiles  OnboardingProfileStore
	sessions  OnboardingSessionCreator
	reminders OnboardingRescheduler
	location  *time.Location
}

func NewOnboardingService(
	answers OnboardingAnswersRepository,
	profiles OnboardingProfileStore,
	sessions OnboardingSessionCreator,
	reminders OnboardingRescheduler,
	location *time.Location,
) *OnboardingService {
	if location == nil {
		location = time.UTC
	}
	return &OnboardingService{
		answers:   answers,
		profiles:  profiles,
		sessions:  sessions,
		reminders: reminders,
		location:  location,
	}
}

func (service *OnboardingService) Status() (OnboardingStatus, error) {
	profile, _, err := service.profiles.LoadProfile()
	if err != nil {
		return OnboardingStatus{}, err
	}
	_, hasAnswers, err := service.answers.LoadAnswers()
	if err != nil {
		return OnboardingStatus{}, err
	}
	return OnboardingStatus{
		Completed:  profile.OnboardingCompleted,
		HasAnswers: hasAnswers,
	}, nil
}

func (service *OnboardingService) Answers() (models.OnboardingAnswers, bool, error) {
	return service.answers.LoadAnswers()
}

func (service *OnboardingService) SaveAnswers(answers models.OnboardingAnswers) (models.OnboardingAnswers, error) {
	if err := validateAnswers(&answers); err != nil {
		return models.OnboardingAnswers{}, err
	}
	if err := service.answers.SaveAnswers(&answers); err != nil {
		return models.OnboardingAnswers{}, err
	}
	return answers, nil
}

// Complete turns the saved answers into a live schedule: the profile is
// marked onboarded, one session is created at the next occurrence of every
// selected day, and the weekly reminders are re-armed. A slot already
// occupied by an open session is left alone.
func (service *OnboardingService) Complete(now time.Time) ([]models.Session, error) {
	answers, found, err := service.answers.LoadAnswers()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrAnswersRequired
	}

	if err := service.markProfileOnboarded(now); err != nil {
		return nil, err
	}

	created := make([]models.Session, 0, len(answers.SelectedDays))
	for _, day := range answers.SelectedDays {
		if !day.Selected {
			continue
		}
		dayIndex := weekdayIndexByName(day.Day)
		if dayIndex < 0 {
			continue
		}

		hour24 := To24Hour(day.Hour, day.Period)
		fireAt := NextOccurrence(dayIndex, hour24, day.Minute, now, service.location)
		session, err := service.sessions.Create(SessionInput{
			Date:   FormatDay(fireAt),
			Hour:   hour24,
			Minute: day.Minute,
			Title:  answers.PrimaryFocus,
		}, now)
		if errors.Is(err, ErrSessionOverlap) {
			continue
		}
		if err != nil {
			return nil, err
		}
		created = append(created, session)
	}

	if _, err := service.reminders.RescheduleAll(now); err != nil {
		return nil, err
	}
	return created, nil
}

func (service *OnboardingService) markProfileOnboarded(now time.Time) error {
	profile, found, err := service.profiles.LoadProfile()
	if err != nil {
		return err
	}
	if !found {
		profile = models.UserProfile{MemberSinceYear: now.Year()}
	}
	if profile.MemberSinceYear == 0 {
		profile.MemberSinceYear = now.Year()
	}
	profile.OnboardingCompleted = true
	return service.profiles.SaveProfile(&profile)
}

func validateAnswers(answers *models.OnboardingAnswers) error {
	if len(answers.Habits) > maxOnboardingHabits {
		return ErrTooManyHabits
	}
	trimmedHabits := make([]string, 0, len(answers.Habits))
	for _, habit := range answers.Habits {
		habit = strings.TrimSpace(habit)
		if habit == "" {
			continue
		}
		if len([]rune(habit)) > maxHabitLength {
			return ErrHabitTooLong
		}
		trimmedHabits = append(trimmedHabits, habit)
	}
	answers.Habits = trimmedHabits

	selected := 0
	for _, day := range answers.SelectedDays {
		if !day.Selected {
			continue
		}
		if weekdayIndexByName(day.Day) < 0 {
			return ErrUnknownWeekday
		}
		if day.Hour < 1 || day.Hour > 12 || day.Minute < 0 || day.Minute > 59 || !IsValidPeriod(day.Period) {
			return ErrInvalidClock
		}
		selected++
	}
	if selected == 0 {
		return ErrNoDaySelected
	}
	return nil
}
