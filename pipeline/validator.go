package pipeline

import (
	"time"

	"punchclock/timecard"
)

// Accepted input layouts, tried in order; first match wins. 24-hour clock
// with or without colon, then 12-hour clock with am/pm suffix.
var validTimeLayouts = []string{
	"15:04",
	"1504",
	"03:04 PM",
	"03:04 pm",
	"3:04 PM",
	"3:04 pm",
}

var validDateLayouts = []string{
	timecard.DateFormat,
}

const (
	errInvalidProject = "Invalid project"
	errInvalidTime    = "Invalid time"
	errInvalidDate    = "Invalid date"
)

// Validate checks one raw entry and either returns the normalized form or
// the original input together with the ordered field error messages.
// The three checks run independently so a single row can report up to three
// errors, always ordered project, time, date. Task is not validated.
func Validate(raw timecard.RawEntry) timecard.ValidationResult {
	errs := make([]string, 0, 3)

	if raw.Project == "" {
		errs = append(errs, errInvalidProject)
	}

	start, ok := matchFirst(raw.Start, validTimeLayouts)
	if !ok {
		errs = append(errs, errInvalidTime)
	}

	date, ok := matchFirst(raw.Date, validDateLayouts)
	if !ok {
		errs = append(errs, errInvalidDate)
	}

	if len(errs) > 0 {
		return timecard.ValidationResult{Raw: raw, Errors: errs}
	}

	return timecard.ValidationResult{
		Entry: timecard.NormalizedEntry{
			Date:    date.Format(timecard.DateFormat),
			Project: raw.Project,
			Task:    raw.Task,
			Start:   start.Format(timecard.ClockFormat),
		},
	}
}

func matchFirst(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
