package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yotwinapp/yotwin/internal/models"
)

const dayLayout = "2006-01-02"

var (
	ErrInvalidDay    = errors.New("invalid day, expected YYYY-MM-DD")
	ErrInvalidClock  = errors.New("invalid clock time")
	ErrInvalidPeriod = errors.New("period must be AM or PM")
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// WeekStart returns the Monday at 00:00 of the week containing value.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return day.AddDate(0, 0, -DayOfWeekIndex(day))
}

// DayOfWeekIndex maps time.Weekday (Sunday=0) onto the app convention
// Monday=0 .. Sunday=6.
func DayOfWeekIndex(value time.Time) int {
	return (int(value.Weekday()) + 6) % 7
}

// FormatDay renders the calendar date of value in its own location. Building
// the string from local components keeps dates stable near midnight in
// negative-offset zones; never format through UTC.
func FormatDay(value time.Time) string {
	return value.Format(dayLayout)
}

func ParseDay(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	day, err := time.ParseInLocation(dayLayout, strings.TrimSpace(value), location)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return day, nil
}

// To24Hour converts a 12-hour clock reading to 0..23.
// AM 12 -> 0, AM h -> h, PM 12 -> 12, PM h -> h+12.
func To24Hour(hour12 int, period string) int {
	if strings.EqualFold(period, models.PeriodAM) {
		if hour12 == 12 {
			return 0
		}
		return hour12
	}
	if hour12 == 12 {
		return 12
	}
	return hour12 + 12
}

// FormatClock renders a 24-hour time as "9:05 AM".
func FormatClock(hour24 int, minute int) string {
	period := models.PeriodAM
	if hour24 >= 12 {
		period = models.PeriodPM
	}
	displayHour := hour24 % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

// ParseClock parses "9:05 AM" into 24-hour parts.
func ParseClock(value string) (int, int, error) {
	parts := strings.Fields(strings.TrimSpace(value))
	if len(parts) != 2 {
		return 0, 0, ErrInvalidClock
	}

	period := strings.ToUpper(parts[1])
	if period != models.PeriodAM && period != models.PeriodPM {
		return 0, 0, ErrInvalidPeriod
	}

	clockParts := strings.SplitN(parts[0], ":", 2)
	hour12, err := strconv.Atoi(clockParts[0])
	if err != nil || hour12 < 1 || hour12 > 12 {
		return 0, 0, ErrInvalidClock
	}
	minute := 0
	if len(clockParts) == 2 {
		minute, err = strconv.Atoi(clockParts[1])
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, ErrInvalidClock
		}
	}

	return To24Hour(hour12, period), minute, nil
}

func IsValidPeriod(period string) bool {
	upper := strings.ToUpper(strings.TrimSpace(period))
	return upper == models.PeriodAM || upper == models.PeriodPM
}
