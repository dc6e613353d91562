package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"punchclock/internal/timeutil"
	"punchclock/timecard"
)

// ErrMalformedEntry marks a date or time string that fails to parse even
// though the entry passed validation. That is a contract violation between
// validator and extractor, not user input to recover from.
var ErrMalformedEntry = errors.New("malformed normalized entry")

type timedEntry struct {
	entry timecard.NormalizedEntry
	start time.Time
	order int
}

// Extract turns normalized entries into per-day interval lists, one slice per
// calendar day in ascending date order. Within a day entries are sorted by
// start time (ties keep input order), then each entry is paired with its
// successor: the interval runs from one check-in to the next and is
// attributed to the earlier entry. The last entry of a day only closes the
// previous interval, so a day with fewer than two entries yields nothing.
func Extract(entries []timecard.NormalizedEntry) ([][]timecard.Interval, error) {
	byDay := make(map[string][]timedEntry)
	days := make([]string, 0)

	for i, entry := range entries {
		date, err := timeutil.ParseDate(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrMalformedEntry, entry.Date)
		}
		clock, err := timeutil.ParseClock(entry.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: start %q", ErrMalformedEntry, entry.Start)
		}

		if _, seen := byDay[entry.Date]; !seen {
			days = append(days, entry.Date)
		}
		byDay[entry.Date] = append(byDay[entry.Date], timedEntry{
			entry: entry,
			start: timeutil.CombineDayTime(date, clock),
			order: i,
		})
	}

	sort.Strings(days)

	out := make([][]timecard.Interval, 0, len(days))
	for _, day := range days {
		intervals := pairDay(byDay[day])
		out = append(out, intervals)
	}
	return out, nil
}

func pairDay(entries []timedEntry) []timecard.Interval {
	if len(entries) < 2 {
		return []timecard.Interval{}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start.Before(entries[j].start)
	})

	intervals := make([]timecard.Interval, 0, len(entries)-1)
	for i := 0; i < len(entries)-1; i++ {
		current := entries[i]
		next := entries[i+1]
		intervals = append(intervals, timecard.Interval{
			Date:    current.entry.Date,
			Project: current.entry.Project,
			Task:    current.entry.Task,
			Start:   current.start,
			End:     next.start,
			Minutes: timeutil.MinutesBetween(current.start, next.start),
		})
	}
	return intervals
}
