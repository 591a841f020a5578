// Package workdate implements the business-day arithmetic the planning and
// shipping views are built on. All dates are local wall-clock dates and are
// exchanged as YYYY-MM-DD strings; time-of-day values are HH:MM:SS strings.
package workdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
)

// Format renders t as a YYYY-MM-DD calendar string in t's location.
func Format(t time.Time) string {
	return t.Format(constant.DateLayout)
}

// Parse interprets a YYYY-MM-DD string as a local wall-clock date.
func Parse(date string) (time.Time, error) {
	t, err := time.ParseInLocation(constant.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, apperr.ErrInvalidReq.Msg("invalid date %q: expected YYYY-MM-DD", date)
	}
	return t, nil
}

// DayOfWeek numbers weekdays the way the weekly template does:
// Monday=1 .. Sunday=7.
func DayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextBusinessDay returns the next Mon-Fri day strictly after t.
// Friday (and Saturday) roll over to Monday.
func NextBusinessDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for IsWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// WeekStart returns the Monday of t's week at midnight.
func WeekStart(t time.Time) time.Time {
	diff := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	d := t.AddDate(0, 0, diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// Workdays returns numWeeks complete Mon-Fri weeks starting from t's own
// week's Monday. This is the planning calendar layout.
func Workdays(t time.Time, numWeeks int) []time.Time {
	start := WeekStart(t)
	dates := make([]time.Time, 0, numWeeks*5)
	for week := 0; week < numWeeks; week++ {
		for day := 0; day < 5; day++ {
			dates = append(dates, start.AddDate(0, 0, week*7+day))
		}
	}
	return dates
}

// ParseTimeOfDay normalizes a dispatch time entered as "H:MM", "H:MM am/pm"
// or "HH:MM:SS" into the HH:MM:SS storage form.
func ParseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", apperr.ErrInvalidReq.Msg("empty time of day")
	}

	period := ""
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		period = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", apperr.ErrInvalidReq.Msg("invalid time of day %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", apperr.ErrInvalidReq.Msg("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", apperr.ErrInvalidReq.Msg("invalid minute in %q", s)
	}

	switch period {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	if hours > 23 {
		return "", apperr.ErrInvalidReq.Msg("invalid hour in %q", s)
	}

	return fmt.Sprintf("%02d:%02d:00", hours, minutes), nil
}

// FormatDispatchTime renders a stored HH:MM:SS value the way dispatchers read
// it, e.g. "5:30am". Empty input renders as "-".
func FormatDispatchTime(stored string) string {
	if stored == "" {
		return "-"
	}
	parts := strings.Split(stored, ":")
	if len(parts) < 2 {
		return stored
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return stored
	}
	period := "am"
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours == 12:
		period = "pm"
	case hours > 12:
		display = hours - 12
		period = "pm"
	}
	return fmt.Sprintf("%d:%s%s", display, parts[1], period)
}
