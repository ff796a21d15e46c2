// Package schedule maps calendar dates onto curriculum lesson ordinals.
// All functions are pure: "today" is always an explicit parameter, never
// read from the system clock, so date-boundary behavior is testable.
package schedule

import (
	"time"

	"github.com/youngtekkie/tekkie/internal/curriculum"
)

// RestDay is the one weekday per week that never has a lesson.
const RestDay = time.Sunday

// DateRange is an inclusive calendar date span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateOnly truncates a time to its calendar date in its location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LessonForDate maps a start date and a target date to a 1-based lesson
// ordinal. It counts the days from start to target inclusive, skipping
// every rest-day occurrence. ok is false when the target falls before
// the start, on the rest day, or past the end of the curriculum.
func LessonForDate(start, target time.Time) (int, bool) {
	start = DateOnly(start)
	target = DateOnly(target)

	if target.Before(start) {
		return 0, false
	}
	if target.Weekday() == RestDay {
		return 0, false
	}

	ordinal := 0
	for d := start; !d.After(target); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == RestDay {
			continue
		}
		ordinal++
		if ordinal > curriculum.TotalLessons {
			return 0, false
		}
	}
	return ordinal, true
}

// DateForOrdinal returns the calendar date of the given lesson ordinal,
// walking forward from the start date over non-rest days. ok is false
// for ordinals outside 1..TotalLessons.
func DateForOrdinal(start time.Time, ordinal int) (time.Time, bool) {
	if ordinal < 1 || ordinal > curriculum.TotalLessons {
		return time.Time{}, false
	}
	d := DateOnly(start)
	seen := 0
	for {
		if d.Weekday() != RestDay {
			seen++
			if seen == ordinal {
				return d, true
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

// DateRangeForWeek returns the calendar dates of the first and last lesson
// of a week. It agrees with LessonForDate: every ordinal of week w maps to
// a date inside the returned range. ok is false for weeks outside 1..12.
func DateRangeForWeek(start time.Time, week int) (DateRange, bool) {
	if week < 1 || week > curriculum.WeeksTotal {
		return DateRange{}, false
	}
	first := (week-1)*curriculum.LessonsPerWeek + 1
	last := week * curriculum.LessonsPerWeek

	startDate, ok := DateForOrdinal(start, first)
	if !ok {
		return DateRange{}, false
	}
	endDate, ok := DateForOrdinal(start, last)
	if !ok {
		return DateRange{}, false
	}
	return DateRange{Start: startDate, End: endDate}, true
}
