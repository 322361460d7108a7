package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/models"
)

type notificationTapPayload struct {
	Identifier    string                     `json:"identifier"`
	Payload       models.NotificationPayload `json:"payload"`
	DeliveredAt   time.Time                  `json:"deliveredAt"`
	CurrentScreen string                     `json:"currentScreen"`
}

func (handler *Handler) ListScheduledNotifications(c *fiber.Ctx) error {
	scheduled, err := handler.notifications.Scheduled()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list notifications")
	}
	return c.JSON(scheduled)
}

func (handler *Handler) RescheduleNotifications(c *fiber.Ctx) error {
	armed, err := handler.notifications.RescheduleAll(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reschedule notifications")
	}
	return c.JSON(fiber.Map{"armed": armed})
}

func (handler *Handler) CancelAllNotifications(c *fiber.Ctx) error {
	if err := handler.notifications.CancelAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to cancel notifications")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleNotificationTap is the single dispatch point for delivered
// notifications; it answers whether the client should navigate to the
// incoming-call screen.
func (handler *Handler) HandleNotificationTap(c *fiber.Ctx) error {
	payload := notificationTapPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Identifier == "" {
		return apiError(c, fiber.StatusBadRequest, "identifier is required")
	}
	deliveredAt := payload.DeliveredAt
	if deliveredAt.IsZero() {
		deliveredAt = handler.now()
	}

	navigate, err := handler.notifications.HandleTap(
		payload.Identifier,
		payload.Payload,
		deliveredAt,
		handler.now(),
		payload.CurrentScreen,
	)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to handle notification")
	}
	response := fiber.Map{"navigate": navigate}
	if navigate {
		response["screen"] = models.ScreenIncomingCall
	}
	return c.JSON(response)
}
