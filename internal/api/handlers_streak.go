package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	record, err := handler.streaks.Current(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load streak")
	}
	return c.JSON(fiber.Map{
		"currentStreak":  record.CurrentStreak,
		"weekStartDate":  record.WeekStartDate,
		"completedDates": record.CompletedDates,
	})
}

func (handler *Handler) GetLifetimeCount(c *fiber.Ctx) error {
	count, err := handler.streaks.Lifetime()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load lifetime count")
	}
	return c.JSON(fiber.Map{"lifetimeCount": count})
}

func (handler *Handler) ResetStreak(c *fiber.Ctx) error {
	record, err := handler.streaks.Reset(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset streak")
	}
	return c.JSON(fiber.Map{
		"currentStreak":  record.CurrentStreak,
		"weekStartDate":  record.WeekStartDate,
		"completedDates": record.CompletedDates,
	})
}
