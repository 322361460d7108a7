package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/yotwinapp/yotwin/internal/api"
	"github.com/yotwinapp/yotwin/internal/cli"
	"github.com/yotwinapp/yotwin/internal/db"
	"github.com/yotwinapp/yotwin/internal/notify"
	"github.com/yotwinapp/yotwin/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "yotwin.db"))
	port := getEnv("PORT", "8080")

	if len(os.Args) > 1 && os.Args[1] == "reset-week" {
		if err := cli.RunResetWeekCommand(dbPath, os.Getenv("TZ")); err != nil {
			log.Fatalf("reset-week failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	gateway := notify.NewScheduler()
	gateway.OnDeliver(func(delivery notify.Delivery) {
		log.Printf("notification delivered: %s (%s)", delivery.Notification.Identifier, delivery.Notification.Payload.Type)
	})

	handler := api.NewHandler(database, location, gateway)

	app := fiber.New(fiber.Config{
		AppName:               "Yotwin",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycle := services.NewLifecycleService(handler.Streaks(), handler.Notifications())
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	lifecycle.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Yotwin listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
