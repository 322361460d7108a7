package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/yotwinapp/yotwin/internal/db"
	"github.com/yotwinapp/yotwin/internal/services"
)

// RunResetWeekCommand forces the weekly fresh start on the database at
// dbPath: the streak record is cleared, the onboarding flag dropped and
// the current vision board detached. Notifications armed by a running
// server are not touched; they are rebuilt on its next lifecycle tick.
func RunResetWeekCommand(dbPath string, timezone string) error {
	location, err := resolveLocation(timezone)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	streaks := services.NewStreakService(
		repositories.Streaks,
		repositories.Counters,
		repositories.Profiles,
		repositories.VisionBoards,
		noopCanceller{},
		location,
	)

	now := time.Now().In(location)
	if _, err := streaks.Reset(now); err != nil {
		return fmt.Errorf("reset streak: %w", err)
	}
	if err := repositories.Profiles.SetOnboardingCompleted(false); err != nil {
		return fmt.Errorf("clear onboarding flag: %w", err)
	}
	if err := repositories.VisionBoards.ClearCurrent(); err != nil {
		return fmt.Errorf("clear current board: %w", err)
	}

	fmt.Println("✅ Week reset successful")
	fmt.Println("Streak cleared, onboarding flag dropped, current board detached.")

	return nil
}

func resolveLocation(timezone string) (*time.Location, error) {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return location, nil
}

// noopCanceller stands in for the notification gateway, which only
// exists inside a running server process.
type noopCanceller struct{}

func (noopCanceller) CancelAll() error { return nil }

var _ services.NotificationCanceller = noopCanceller{}
