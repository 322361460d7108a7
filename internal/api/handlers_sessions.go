package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/services"
)

type sessionPayload struct {
	Date   string `json:"date"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Title  string `json:"title"`
	Color  string `json:"color"`
}

func (handler *Handler) ListSessions(c *fiber.Ctx) error {
	fromDay := c.Query("from")
	toDay := c.Query("to")

	if fromDay != "" || toDay != "" {
		if fromDay == "" || toDay == "" {
			return apiError(c, fiber.StatusBadRequest, "both from and to are required for a range")
		}
		sessions, err := handler.sessions.ListRange(fromDay, toDay)
		if errors.Is(err, services.ErrInvalidDay) {
			return apiError(c, fiber.StatusBadRequest, "invalid date range")
		}
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch sessions")
		}
		return c.JSON(sessions)
	}

	sessions, err := handler.sessions.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch sessions")
	}
	return c.JSON(sessions)
}

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	payload := sessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	session, err := handler.sessions.Create(services.SessionInput{
		Date:   payload.Date,
		Hour:   payload.Hour,
		Minute: payload.Minute,
		Title:  payload.Title,
		Color:  payload.Color,
	}, handler.now())
	if err != nil {
		return sessionWriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) UpdateSession(c *fiber.Ctx) error {
	payload := sessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	session, err := handler.sessions.Update(c.Params("id"), services.SessionInput{
		Date:   payload.Date,
		Hour:   payload.Hour,
		Minute: payload.Minute,
		Title:  payload.Title,
		Color:  payload.Color,
	})
	if err != nil {
		return sessionWriteError(c, err)
	}
	return c.JSON(session)
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	if err := handler.sessions.Delete(c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete session")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) CompleteSession(c *fiber.Ctx) error {
	result, err := handler.completion.CompleteSession(c.Params("id"), handler.now())
	if errors.Is(err, services.ErrSessionNotFound) {
		return apiError(c, fiber.StatusNotFound, "session not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete session")
	}
	return c.JSON(result)
}

func sessionWriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return apiError(c, fiber.StatusNotFound, "session not found")
	case errors.Is(err, services.ErrSessionOverlap):
		return apiError(c, fiber.StatusConflict, "another session is scheduled at this time")
	case errors.Is(err, services.ErrInvalidDay), errors.Is(err, services.ErrInvalidSessionTime):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save session")
	}
}
