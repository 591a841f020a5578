package workdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{date(2024, time.January, 15), 1}, // Monday
		{date(2024, time.January, 19), 5}, // Friday
		{date(2024, time.January, 20), 6}, // Saturday
		{date(2024, time.January, 21), 7}, // Sunday
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DayOfWeek(tt.day), "day of week for %s", Format(tt.day))
	}
}

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		from, want string
	}{
		{"2024-01-15", "2024-01-16"}, // Mon -> Tue
		{"2024-01-19", "2024-01-22"}, // Fri -> Mon
		{"2024-01-20", "2024-01-22"}, // Sat -> Mon
		{"2024-01-21", "2024-01-22"}, // Sun -> Mon
	}
	for _, tt := range tests {
		from, err := Parse(tt.from)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Format(NextBusinessDay(from)), "next business day after %s", tt.from)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("01/15/2024")
	assert.Error(t, err)
	_, err = Parse("2024-1-15")
	assert.Error(t, err)
}

func TestWeekStart(t *testing.T) {
	monday := date(2024, time.January, 15)
	for i := 0; i < 7; i++ {
		got := WeekStart(monday.AddDate(0, 0, i))
		assert.Equal(t, "2024-01-15", Format(got), "week start for offset %d", i)
	}
}

func TestWorkdays(t *testing.T) {
	days := Workdays(date(2024, time.January, 17), 4) // a Wednesday
	require.Len(t, days, 20)
	assert.Equal(t, "2024-01-15", Format(days[0]))
	assert.Equal(t, "2024-01-19", Format(days[4]))
	assert.Equal(t, "2024-01-22", Format(days[5]))
	assert.Equal(t, "2024-02-09", Format(days[19]))
	for _, d := range days {
		assert.False(t, IsWeekend(d), "%s should be a workday", Format(d))
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5:30", "05:30:00"},
		{"5:30 am", "05:30:00"},
		{"5:30pm", "17:30:00"},
		{"12:00am", "00:00:00"},
		{"12:15 PM", "12:15:00"},
		{"17:45:00", "17:45:00"},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		require.NoError(t, err, "parsing %q", tt.in)
		assert.Equal(t, tt.want, got, "parsing %q", tt.in)
	}

	for _, bad := range []string{"", "25:00", "5", "5:61", "noon"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestFormatDispatchTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"05:30:00", "5:30am"},
		{"00:05:00", "12:05am"},
		{"12:00:00", "12:00pm"},
		{"17:30:00", "5:30pm"},
		{"", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDispatchTime(tt.in), "formatting %q", tt.in)
	}
}

func TestRoundTrip(t *testing.T) {
	const day = "2024-01-15"
	parsed, err := Parse(day)
	require.NoError(t, err)
	assert.Equal(t, day, Format(parsed))
}
