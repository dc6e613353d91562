package timeutil

import (
	"time"

	"punchclock/timecard"
)

// ParseDate parses a canonical YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(timecard.DateFormat, value, time.Local)
}

// ParseClock parses a canonical 24-hour HH:mm clock value.
func ParseClock(value string) (time.Time, error) {
	return time.ParseInLocation(timecard.ClockFormat, value, time.Local)
}

// CombineDayTime places a clock value on the given calendar day.
func CombineDayTime(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

// MinutesBetween returns the whole minutes from start to end.
func MinutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
