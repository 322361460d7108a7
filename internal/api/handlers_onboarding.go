package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/models"
	"github.com/yotwinapp/yotwin/internal/services"
)

type onboardingPayload struct {
	Habits           []string             `json:"habits"`
	PrimaryFocus     string               `json:"primaryFocus"`
	Question         string               `json:"question"`
	PossibleSolution string               `json:"possibleSolution"`
	SelectedDays     []models.DaySchedule `json:"selectedDays"`
}

func (handler *Handler) OnboardingStatus(c *fiber.Ctx) error {
	status, err := handler.onboarding.Status()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding status")
	}
	answers, found, err := handler.onboarding.Answers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding answers")
	}
	response := fiber.Map{"status": status}
	if found {
		response["answers"] = answers
	}
	return c.JSON(response)
}

func (handler *Handler) SaveOnboardingAnswers(c *fiber.Ctx) error {
	payload := onboardingPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	answers, err := handler.onboarding.SaveAnswers(models.OnboardingAnswers{
		Habits:           payload.Habits,
		PrimaryFocus:     payload.PrimaryFocus,
		Question:         payload.Question,
		PossibleSolution: payload.PossibleSolution,
		SelectedDays:     payload.SelectedDays,
	})
	if err != nil {
		return onboardingWriteError(c, err)
	}
	return c.JSON(answers)
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	created, err := handler.onboarding.Complete(handler.now())
	if errors.Is(err, services.ErrAnswersRequired) {
		return apiError(c, fiber.StatusConflict, "complete onboarding answers first")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete onboarding")
	}
	return c.JSON(fiber.Map{"sessions": created})
}

func onboardingWriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTooManyHabits),
		errors.Is(err, services.ErrHabitTooLong),
		errors.Is(err, services.ErrNoDaySelected),
		errors.Is(err, services.ErrUnknownWeekday),
		errors.Is(err, services.ErrInvalidClock):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save onboarding answers")
	}
}
