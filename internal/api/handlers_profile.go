package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/services"
)

type profilePayload struct {
	Name      string     `json:"name"`
	Birthday  *time.Time `json:"birthday"`
	AvatarURI string     `json:"avatarUri"`
}

type quotePayload struct {
	Text string `json:"text"`
}

type questionnairePayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, found, err := handler.profiles.Profile()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	if !found {
		return c.JSON(fiber.Map{"profile": nil})
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	profile, err := handler.profiles.Save(services.ProfileInput{
		Name:      payload.Name,
		Birthday:  payload.Birthday,
		AvatarURI: payload.AvatarURI,
	}, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) GetQuote(c *fiber.Ctx) error {
	quote, found, err := handler.weekly.Quote(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load quote")
	}
	if !found {
		return c.JSON(fiber.Map{"quote": nil})
	}
	days, _, err := handler.weekly.QuoteDaysRemaining(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load quote")
	}
	return c.JSON(fiber.Map{"quote": quote, "daysRemaining": days})
}

func (handler *Handler) SaveQuote(c *fiber.Ctx) error {
	payload := quotePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	quote, err := handler.weekly.SaveQuote(payload.Text, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrQuoteRequired) {
			return apiError(c, fiber.StatusBadRequest, "quote text is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save quote")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"quote": quote})
}

func (handler *Handler) DeleteQuote(c *fiber.Ctx) error {
	if err := handler.weekly.DeleteQuote(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete quote")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetQuestionnaire(c *fiber.Ctx) error {
	questionnaire, found, err := handler.weekly.Questionnaire(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load questionnaire")
	}
	if !found {
		return c.JSON(fiber.Map{"questionnaire": nil})
	}
	return c.JSON(fiber.Map{"questionnaire": questionnaire})
}

func (handler *Handler) SaveQuestionnaire(c *fiber.Ctx) error {
	payload := questionnairePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	questionnaire, err := handler.weekly.SaveQuestionnaire(payload.Question, payload.Answer, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrQuestionnaireRequired) {
			return apiError(c, fiber.StatusBadRequest, "question and answer are required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save questionnaire")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"questionnaire": questionnaire})
}
