package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

const quoteDurationDays = 7

var (
	ErrQuoteRequired         = errors.New("quote text is required")
	ErrQuestionnaireRequired = errors.New("question and answer are required")
)

type QuoteRepository interface {
	LoadQuote() (models.WeeklyQuote, bool, error)
	SaveQuote(quote *models.WeeklyQuote) error
	DeleteQuote() error
}

type QuestionnaireRepository interface {
	FindQuestionnaireByWeek(weekStartDate string) (models.WeeklyQuestionnaire, bool, error)
	SaveQuestionnaire(questionnaire *models.WeeklyQuestionnaire) error
}

type WeeklyService struct {
	quotes         QuoteRepository
	questionnaires QuestionnaireRepository
	location       *time.Location
}

func NewWeeklyService(quotes QuoteRepository, questionnaires QuestionnaireRepository, location *time.Location) *WeeklyService {
	if location == nil {
		location = time.UTC
	}
	return &WeeklyService{
		quotes:         quotes,
		questionnaires: questionnaires,
		location:       location,
	}
}

// Quote returns the active quote, purging it once expired.
func (service *WeeklyService) Quote(now time.Time) (models.WeeklyQuote, bool, error) {
	quote, found, err := service.quotes.LoadQuote()
	if err != nil {
		return models.WeeklyQuote{}, false, err
	}
	if !found {
		return models.WeeklyQuote{}, false, nil
	}
	if now.After(quote.ExpiresAt) {
		if err := service.quotes.DeleteQuote(); err != nil {
			return models.WeeklyQuote{}, false, err
		}
		return models.WeeklyQuote{}, false, nil
	}
	return quote, true, nil
}

// SaveQuote stores the text with a seven-day expiry; editing restarts the
// window from the edit instant.
func (service *WeeklyService) SaveQuote(text string, now time.Time) (models.WeeklyQuote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.WeeklyQuote{}, ErrQuoteRequired
	}
	quote := models.WeeklyQuote{
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, quoteDurationDays),
	}
	if err := service.quotes.SaveQuote(&quote); err != nil {
		return models.WeeklyQuote{}, err
	}
	return quote, nil
}

func (service *WeeklyService) DeleteQuote() error {
	return service.quotes.DeleteQuote()
}

// QuoteDaysRemaining reports whole days until the active quote expires.
func (service *WeeklyService) QuoteDaysRemaining(now time.Time) (int, bool, error) {
	quote, found, err := service.Quote(now)
	if err != nil || !found {
		return 0, false, err
	}
	days := int(math.Ceil(quote.ExpiresAt.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, true, nil
}

// Questionnaire returns the record for the week containing now, if any.
func (service *WeeklyService) Questionnaire(now time.Time) (models.WeeklyQuestionnaire, bool, error) {
	weekAnchor := FormatDay(WeekStart(now, service.location))
	return service.questionnaires.FindQuestionnaireByWeek(weekAnchor)
}

// SaveQuestionnaire writes this week's record; saving again in the same
// week overwrites it.
func (service *WeeklyService) SaveQuestionnaire(question string, answer string, now time.Time) (models.WeeklyQuestionnaire, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return models.WeeklyQuestionnaire{}, ErrQuestionnaireRequired
	}

	questionnaire := models.WeeklyQuestionnaire{
		WeekStartDate: FormatDay(WeekStart(now, service.location)),
		Question:      question,
		Answer:        answer,
		CreatedAt:     now,
	}
	if err := service.questionnaires.SaveQuestionnaire(&questionnaire); err != nil {
		return models.WeeklyQuestionnaire{}, err
	}
	return questionnaire, nil
}
