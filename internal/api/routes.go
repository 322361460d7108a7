package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	sessions := api.Group("/sessions")
	sessions.Get("", handler.ListSessions)
	sessions.Post("", handler.CreateSession)
	sessions.Put("/:id", handler.UpdateSession)
	sessions.Delete("/:id", handler.DeleteSession)
	sessions.Post("/:id/complete", handler.CompleteSession)

	streak := api.Group("/streak")
	streak.Get("", handler.GetStreak)
	streak.Get("/lifetime", handler.GetLifetimeCount)
	streak.Post("/reset", handler.ResetStreak)

	boards := api.Group("/vision-board")
	boards.Get("", handler.GetCurrentBoard)
	boards.Get("/album", handler.GetBoardAlbum)
	boards.Post("", handler.UploadBoard)

	onboarding := api.Group("/onboarding")
	onboarding.Get("", handler.OnboardingStatus)
	onboarding.Post("/answers", handler.SaveOnboardingAnswers)
	onboarding.Post("/complete", handler.CompleteOnboarding)

	notifications := api.Group("/notifications")
	notifications.Get("", handler.ListScheduledNotifications)
	notifications.Post("/reschedule", handler.RescheduleNotifications)
	notifications.Post("/tap", handler.HandleNotificationTap)
	notifications.Delete("", handler.CancelAllNotifications)

	timer := api.Group("/timer")
	timer.Get("", handler.GetTimerState)
	timer.Post("/start", handler.StartTimer)
	timer.Post("/background", handler.BackgroundTimer)
	timer.Post("/foreground", handler.ForegroundTimer)
	timer.Delete("", handler.StopTimer)

	profile := api.Group("/profile")
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.SaveProfile)

	quote := api.Group("/quote")
	quote.Get("", handler.GetQuote)
	quote.Post("", handler.SaveQuote)
	quote.Delete("", handler.DeleteQuote)

	questionnaire := api.Group("/questionnaire")
	questionnaire.Get("", handler.GetQuestionnaire)
	questionnaire.Post("", handler.SaveQuestionnaire)
}
