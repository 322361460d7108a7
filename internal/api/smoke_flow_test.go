package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/db"
	"github.com/yotwinapp/yotwin/internal/models"
	"github.com/yotwinapp/yotwin/internal/notify"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "yotwin-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}

	handler := NewHandler(database, time.UTC, notify.NewScheduler())
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func todayString() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestSessionCompletionFlow(t *testing.T) {
	app := newTestApp(t)

	// Upload a board so completing a session reveals progress.
	response := doJSON(t, app, http.MethodPost, "/api/vision-board", map[string]string{"imageUri": "file:///goal.jpg"})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("upload board status = %d, want 201", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/sessions", map[string]any{
		"date":   todayString(),
		"hour":   9,
		"minute": 30,
		"title":  "Morning check-in",
		"color":  "#FFAA00",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create session status = %d, want 201", response.StatusCode)
	}
	var session models.Session
	decodeJSON(t, response, &session)
	if session.ID == "" {
		t.Fatal("created session has no id")
	}

	// The exact slot is taken until the session completes.
	response = doJSON(t, app, http.MethodPost, "/api/sessions", map[string]any{
		"date":   todayString(),
		"hour":   9,
		"minute": 30,
	})
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate slot status = %d, want 409", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/sessions/"+session.ID+"/complete", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d, want 200", response.StatusCode)
	}
	var completion struct {
		Session models.Session      `json:"session"`
		Streak  models.StreakRecord `json:"streak"`
		Board   *struct {
			CompletedSessions int `json:"CompletedSessions"`
		} `json:"board"`
	}
	decodeJSON(t, response, &completion)
	if !completion.Session.IsCompleted {
		t.Fatal("completed session not marked done")
	}
	if completion.Streak.CurrentStreak != 1 {
		t.Fatalf("streak after completion = %d, want 1", completion.Streak.CurrentStreak)
	}
	if completion.Board == nil {
		t.Fatal("completion did not advance the board")
	}

	// Completing an unknown session is a 404.
	response = doJSON(t, app, http.MethodPost, "/api/sessions/nope/complete", nil)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("complete unknown status = %d, want 404", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/streak", nil)
	var streak struct {
		CurrentStreak  int      `json:"currentStreak"`
		CompletedDates []string `json:"completedDates"`
	}
	decodeJSON(t, response, &streak)
	if streak.CurrentStreak != 1 || len(streak.CompletedDates) != 1 {
		t.Fatalf("streak = %+v, want one completed day", streak)
	}
}

func TestSessionRangeQuery(t *testing.T) {
	app := newTestApp(t)

	for _, date := range []string{"2026-03-02", "2026-03-04", "2026-03-20"} {
		response := doJSON(t, app, http.MethodPost, "/api/sessions", map[string]any{
			"date": date,
			"hour": 8,
		})
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("create %s status = %d, want 201", date, response.StatusCode)
		}
		response.Body.Close()
	}

	response := doJSON(t, app, http.MethodGet, "/api/sessions?from=2026-03-01&to=2026-03-07", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("range status = %d, want 200", response.StatusCode)
	}
	var sessions []models.Session
	decodeJSON(t, response, &sessions)
	if len(sessions) != 2 {
		t.Fatalf("sessions in range = %d, want 2", len(sessions))
	}

	response = doJSON(t, app, http.MethodGet, "/api/sessions?from=2026-03-01", nil)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("half range status = %d, want 400", response.StatusCode)
	}
	response.Body.Close()
}

func TestOnboardingCompleteCreatesSchedule(t *testing.T) {
	app := newTestApp(t)

	// Completing before answering is rejected.
	response := doJSON(t, app, http.MethodPost, "/api/onboarding/complete", nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("complete without answers status = %d, want 409", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/onboarding/answers", map[string]any{
		"primaryFocus": "Deep work",
		"habits":       []string{"Plan the day"},
		"selectedDays": []map[string]any{
			{"day": "Monday", "selected": true, "hour": 9, "minute": 0, "period": "AM"},
			{"day": "Friday", "selected": true, "hour": 6, "minute": 30, "period": "PM"},
		},
	})
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		t.Fatalf("save answers status = %d, want success", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/onboarding/complete", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/sessions", nil)
	var sessions []models.Session
	decodeJSON(t, response, &sessions)
	if len(sessions) != 2 {
		t.Fatalf("scheduled sessions = %d, want 2", len(sessions))
	}

	response = doJSON(t, app, http.MethodGet, "/api/notifications", nil)
	var scheduled []models.ScheduledNotification
	decodeJSON(t, response, &scheduled)
	if len(scheduled) != 2 {
		t.Fatalf("armed notifications = %d, want 2", len(scheduled))
	}

	response = doJSON(t, app, http.MethodGet, "/api/onboarding", nil)
	var status struct {
		Status struct {
			Completed bool `json:"completed"`
		} `json:"status"`
	}
	decodeJSON(t, response, &status)
	if !status.Status.Completed {
		t.Fatal("onboarding not reported completed")
	}
}

func TestTimerLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/timer/start", map[string]string{"sessionId": "s1"})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("start status = %d, want 201", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/timer", nil)
	var state struct {
		Active           bool   `json:"active"`
		SessionID        string `json:"sessionId"`
		RemainingSeconds int    `json:"remainingSeconds"`
	}
	decodeJSON(t, response, &state)
	if !state.Active || state.SessionID != "s1" {
		t.Fatalf("timer state = %+v, want active for s1", state)
	}
	if state.RemainingSeconds < 175 || state.RemainingSeconds > 180 {
		t.Fatalf("remaining = %d, want close to 180", state.RemainingSeconds)
	}

	response = doJSON(t, app, http.MethodPost, "/api/timer/background", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("background status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/timer/foreground", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("foreground status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodDelete, "/api/timer", nil)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("stop status = %d, want 204", response.StatusCode)
	}
	response.Body.Close()

	// Background with no running timer is a conflict.
	response = doJSON(t, app, http.MethodPost, "/api/timer/background", nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("background without timer status = %d, want 409", response.StatusCode)
	}
	response.Body.Close()
}

func TestQuoteAndQuestionnaireEndpoints(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/quote", nil)
	var empty struct {
		Quote *models.WeeklyQuote `json:"quote"`
	}
	decodeJSON(t, response, &empty)
	if empty.Quote != nil {
		t.Fatalf("quote on fresh db = %+v, want nil", empty.Quote)
	}

	response = doJSON(t, app, http.MethodPost, "/api/quote", map[string]string{"text": "Keep showing up"})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("save quote status = %d, want 201", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/quote", nil)
	var active struct {
		Quote         *models.WeeklyQuote `json:"quote"`
		DaysRemaining int                 `json:"daysRemaining"`
	}
	decodeJSON(t, response, &active)
	if active.Quote == nil || active.Quote.Text != "Keep showing up" {
		t.Fatalf("quote = %+v, want the saved text", active.Quote)
	}
	if active.DaysRemaining != 7 {
		t.Fatalf("daysRemaining = %d, want 7", active.DaysRemaining)
	}

	response = doJSON(t, app, http.MethodPost, "/api/questionnaire", map[string]string{
		"question": "Biggest win this week?",
		"answer":   "Shipped the draft",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("save questionnaire status = %d, want 201", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/questionnaire", map[string]string{"question": "", "answer": "x"})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank questionnaire status = %d, want 400", response.StatusCode)
	}
	response.Body.Close()
}
