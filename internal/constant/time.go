package constant

const (
	// DateLayout is the calendar-date storage format. Dates are always local
	// wall-clock dates, never UTC-shifted.
	DateLayout = "2006-01-02"

	// TimeOfDayLayout is the 24-hour storage format for dispatch times.
	TimeOfDayLayout = "15:04:05"
)
