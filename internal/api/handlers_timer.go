package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/services"
)

type timerStartPayload struct {
	SessionID string `json:"sessionId"`
}

func (handler *Handler) GetTimerState(c *fiber.Ctx) error {
	state, err := handler.timer.State(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read timer state")
	}
	return c.JSON(state)
}

func (handler *Handler) StartTimer(c *fiber.Ctx) error {
	payload := timerStartPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.SessionID == "" {
		return apiError(c, fiber.StatusBadRequest, "sessionId is required")
	}

	snapshot, err := handler.timer.Start(payload.SessionID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start timer")
	}
	return c.Status(fiber.StatusCreated).JSON(snapshot)
}

func (handler *Handler) BackgroundTimer(c *fiber.Ctx) error {
	state, err := handler.timer.Background(handler.now())
	if err != nil {
		return timerStateError(c, err)
	}
	return c.JSON(state)
}

func (handler *Handler) ForegroundTimer(c *fiber.Ctx) error {
	state, err := handler.timer.Foreground(handler.now())
	if err != nil {
		return timerStateError(c, err)
	}
	return c.JSON(state)
}

func (handler *Handler) StopTimer(c *fiber.Ctx) error {
	if err := handler.timer.Stop(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to stop timer")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func timerStateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrTimerNotRunning) {
		return apiError(c, fiber.StatusConflict, "timer is not running")
	}
	return apiError(c, fiber.StatusInternalServerError, "failed to update timer")
}
