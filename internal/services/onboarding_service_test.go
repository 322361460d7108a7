package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

type stubAnswersRepository struct {
	answers models.OnboardingAnswers
	found   bool
}

func (repo *stubAnswersRepository) LoadAnswers() (models.OnboardingAnswers, bool, error) {
	return repo.answers, repo.found, nil
}

func (repo *stubAnswersRepository) SaveAnswers(answers *models.OnboardingAnswers) error {
	repo.answers = *answers
	repo.found = true
	return nil
}

type stubProfileStore struct {
	profile models.UserProfile
	found   bool
}

func (repo *stubProfileStore) LoadProfile() (models.UserProfile, bool, error) {
	return repo.profile, repo.found, nil
}

func (repo *stubProfileStore) SaveProfile(profile *models.UserProfile) error {
	repo.profile = *profile
	repo.found = true
	return nil
}

type stubSessionCreator struct {
	created    []SessionInput
	overlapOn  string
	underlying error
}

func (stub *stubSessionCreator) Create(input SessionInput, now time.Time) (models.Session, error) {
	if stub.underlying != nil {
		return models.Session{}, stub.underlying
	}
	if stub.overlapOn != "" && input.Date == stub.overlapOn {
		return models.Session{}, ErrSessionOverlap
	}
	stub.created = append(stub.created, input)
	return models.Session{ID: input.Date, Date: input.Date, Hour: input.Hour, Minute: input.Minute, Title: input.Title}, nil
}

type stubRescheduler struct {
	calls int
	armed int
}

func (stub *stubRescheduler) RescheduleAll(now time.Time) (int, error) {
	stub.calls++
	return stub.armed, nil
}

func validOnboardingAnswers() models.OnboardingAnswers {
	return models.OnboardingAnswers{
		PrimaryFocus: "Morning pages",
		Habits:       []string{"Write", "  Stretch  "},
		SelectedDays: []models.DaySchedule{
			{Day: "Monday", Selected: true, Hour: 9, Minute: 0, Period: "AM"},
			{Day: "Thursday", Selected: true, Hour: 7, Minute: 30, Period: "PM"},
			{Day: "Sunday", Selected: false},
		},
	}
}

func newOnboardingFixture() (*OnboardingService, *stubAnswersRepository, *stubProfileStore, *stubSessionCreator, *stubRescheduler) {
	answers := &stubAnswersRepository{}
	profiles := &stubProfileStore{}
	sessions := &stubSessionCreator{}
	reminders := &stubRescheduler{}
	service := NewOnboardingService(answers, profiles, sessions, reminders, time.UTC)
	return service, answers, profiles, sessions, reminders
}

func TestSaveAnswersValidation(t *testing.T) {
	t.Parallel()

	service, _, _, _, _ := newOnboardingFixture()

	answers := validOnboardingAnswers()
	answers.Habits = []string{"a", "b", "c", "d"}
	if _, err := service.SaveAnswers(answers); !errors.Is(err, ErrTooManyHabits) {
		t.Fatalf("SaveAnswers 4 habits err = %v, want ErrTooManyHabits", err)
	}

	answers = validOnboardingAnswers()
	answers.Habits = []string{strings.Repeat("x", 36)}
	if _, err := service.SaveAnswers(answers); !errors.Is(err, ErrHabitTooLong) {
		t.Fatalf("SaveAnswers long habit err = %v, want ErrHabitTooLong", err)
	}

	answers = validOnboardingAnswers()
	for index := range answers.SelectedDays {
		answers.SelectedDays[index].Selected = false
	}
	if _, err := service.SaveAnswers(answers); !errors.Is(err, ErrNoDaySelected) {
		t.Fatalf("SaveAnswers no days err = %v, want ErrNoDaySelected", err)
	}

	answers = validOnboardingAnswers()
	answers.SelectedDays[0].Day = "Funday"
	if _, err := service.SaveAnswers(answers); !errors.Is(err, ErrUnknownWeekday) {
		t.Fatalf("SaveAnswers unknown day err = %v, want ErrUnknownWeekday", err)
	}

	answers = validOnboardingAnswers()
	answers.SelectedDays[0].Hour = 13
	if _, err := service.SaveAnswers(answers); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("SaveAnswers hour 13 err = %v, want ErrInvalidClock", err)
	}
}

func TestSaveAnswersTrimsHabits(t *testing.T) {
	t.Parallel()

	service, repo, _, _, _ := newOnboardingFixture()

	saved, err := service.SaveAnswers(validOnboardingAnswers())
	if err != nil {
		t.Fatalf("SaveAnswers returned error: %v", err)
	}
	if len(saved.Habits) != 2 || saved.Habits[1] != "Stretch" {
		t.Fatalf("Habits = %v, want trimmed [Write Stretch]", saved.Habits)
	}
	if !repo.found {
		t.Fatal("answers were not persisted")
	}
}

func TestCompleteCreatesSessionsAndArmsReminders(t *testing.T) {
	t.Parallel()

	service, answers, profiles, sessions, reminders := newOnboardingFixture()
	answers.answers = validOnboardingAnswers()
	answers.found = true

	// 2026-03-04 is a Wednesday.
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	created, err := service.Complete(now)
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	// Monday rolls to next week, Thursday lands tomorrow.
	if len(created) != 2 {
		t.Fatalf("created sessions = %d, want 2", len(created))
	}
	if sessions.created[0].Date != "2026-03-09" || sessions.created[0].Hour != 9 {
		t.Fatalf("monday session = %+v, want 2026-03-09 09:00", sessions.created[0])
	}
	if sessions.created[1].Date != "2026-03-05" || sessions.created[1].Hour != 19 || sessions.created[1].Minute != 30 {
		t.Fatalf("thursday session = %+v, want 2026-03-05 19:30", sessions.created[1])
	}
	if sessions.created[0].Title != "Morning pages" {
		t.Fatalf("session title = %q, want the primary focus", sessions.created[0].Title)
	}

	if !profiles.profile.OnboardingCompleted {
		t.Fatal("profile not marked onboarded")
	}
	if profiles.profile.MemberSinceYear != 2026 {
		t.Fatalf("MemberSinceYear = %d, want 2026", profiles.profile.MemberSinceYear)
	}
	if reminders.calls != 1 {
		t.Fatalf("RescheduleAll calls = %d, want 1", reminders.calls)
	}
}

func TestCompleteSkipsOccupiedSlots(t *testing.T) {
	t.Parallel()

	service, answers, _, sessions, _ := newOnboardingFixture()
	answers.answers = validOnboardingAnswers()
	answers.found = true
	sessions.overlapOn = "2026-03-09"

	created, err := service.Complete(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created sessions = %d, want 1 after skipping the occupied slot", len(created))
	}
}

func TestCompleteRequiresAnswers(t *testing.T) {
	t.Parallel()

	service, _, _, _, reminders := newOnboardingFixture()
	if _, err := service.Complete(time.Now()); !errors.Is(err, ErrAnswersRequired) {
		t.Fatalf("Complete without answers err = %v, want ErrAnswersRequired", err)
	}
	if reminders.calls != 0 {
		t.Fatal("reminders armed without answers")
	}
}

func TestCompleteKeepsMemberSinceYear(t *testing.T) {
	t.Parallel()

	service, answers, profiles, _, _ := newOnboardingFixture()
	answers.answers = validOnboardingAnswers()
	answers.found = true
	profiles.profile = models.UserProfile{MemberSinceYear: 2024}
	profiles.found = true

	if _, err := service.Complete(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if profiles.profile.MemberSinceYear != 2024 {
		t.Fatalf("MemberSinceYear = %d, want the original 2024", profiles.profile.MemberSinceYear)
	}
}
