package schedule

import (
	"testing"
	"time"

	"github.com/youngtekkie/tekkie/internal/curriculum"
)

// date builds a UTC calendar date.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLessonForDateTuesdayStart(t *testing.T) {
	// 2026-01-06 is a Tuesday.
	start := date(2026, time.January, 6)

	tests := []struct {
		target  time.Time
		ordinal int
		ok      bool
	}{
		{date(2026, time.January, 6), 1, true},   // Tue
		{date(2026, time.January, 7), 2, true},   // Wed
		{date(2026, time.January, 8), 3, true},   // Thu
		{date(2026, time.January, 9), 4, true},   // Fri
		{date(2026, time.January, 10), 5, true},  // Sat
		{date(2026, time.January, 11), 0, false}, // Sun — rest day
		{date(2026, time.January, 12), 6, true},  // Mon
		{date(2026, time.January, 5), 0, false},  // day before start
	}

	for _, tt := range tests {
		got, ok := LessonForDate(start, tt.target)
		if ok != tt.ok || got != tt.ordinal {
			t.Errorf("LessonForDate(%s) = (%d, %v), want (%d, %v)",
				tt.target.Format("2006-01-02"), got, ok, tt.ordinal, tt.ok)
		}
	}
}

func TestLessonForDateMonotonic(t *testing.T) {
	// Advancing one day at a time: ordinal rises by exactly 1 on
	// working days and the rest day yields no lesson.
	start := date(2026, time.March, 2) // a Monday

	prev := 0
	for i := 0; i < 100; i++ {
		target := start.AddDate(0, 0, i)
		got, ok := LessonForDate(start, target)
		if target.Weekday() == RestDay {
			if ok {
				t.Fatalf("%s: rest day mapped to ordinal %d", target.Format("2006-01-02"), got)
			}
			continue
		}
		if !ok {
			if prev == curriculum.TotalLessons {
				continue // past curriculum end
			}
			t.Fatalf("%s: no lesson before curriculum end (prev=%d)", target.Format("2006-01-02"), prev)
		}
		if got != prev+1 {
			t.Fatalf("%s: ordinal %d, want %d", target.Format("2006-01-02"), got, prev+1)
		}
		prev = got
	}
}

func TestLessonForDateBeyondCurriculum(t *testing.T) {
	start := date(2026, time.January, 5) // Monday

	// 72 lessons at 6 per week = exactly 12 calendar weeks. The final
	// lesson lands 82 days after the start (Saturday of week 12).
	last := start.AddDate(0, 0, 82)
	got, ok := LessonForDate(start, last)
	if !ok || got != curriculum.TotalLessons {
		t.Fatalf("last day = (%d, %v), want (%d, true)", got, ok, curriculum.TotalLessons)
	}

	// Monday after the curriculum ends.
	after := start.AddDate(0, 0, 84)
	if got, ok := LessonForDate(start, after); ok {
		t.Fatalf("post-curriculum date mapped to ordinal %d", got)
	}
}

func TestLessonForDateStartOnRestDay(t *testing.T) {
	// A Sunday start date is accepted as stored; querying it as a
	// target yields no lesson, and Monday is ordinal 1.
	start := date(2026, time.January, 4) // Sunday

	if got, ok := LessonForDate(start, start); ok {
		t.Fatalf("Sunday start queried as target = ordinal %d, want none", got)
	}
	got, ok := LessonForDate(start, date(2026, time.January, 5))
	if !ok || got != 1 {
		t.Fatalf("Monday after Sunday start = (%d, %v), want (1, true)", got, ok)
	}
}

func TestLessonForDateIgnoresTimeComponent(t *testing.T) {
	start := time.Date(2026, time.January, 6, 15, 30, 0, 0, time.UTC)
	target := time.Date(2026, time.January, 7, 1, 0, 0, 0, time.UTC)

	got, ok := LessonForDate(start, target)
	if !ok || got != 2 {
		t.Fatalf("LessonForDate with time components = (%d, %v), want (2, true)", got, ok)
	}
}

func TestLessonForDateMonthRollover(t *testing.T) {
	// Start late in a month so the mapping crosses the boundary.
	start := date(2026, time.January, 29) // Thursday

	// Thu 29=1, Fri 30=2, Sat 31=3, Sun 1 rest, Mon Feb 2=4.
	got, ok := LessonForDate(start, date(2026, time.February, 2))
	if !ok || got != 4 {
		t.Fatalf("month rollover = (%d, %v), want (4, true)", got, ok)
	}
}

func TestDateRangeForWeek(t *testing.T) {
	start := date(2026, time.January, 5) // Monday

	r, ok := DateRangeForWeek(start, 1)
	if !ok {
		t.Fatal("week 1 range not found")
	}
	if !r.Start.Equal(start) {
		t.Errorf("week 1 start = %s, want %s", r.Start, start)
	}
	if !r.End.Equal(date(2026, time.January, 10)) {
		t.Errorf("week 1 end = %s, want 2026-01-10", r.End.Format("2006-01-02"))
	}

	r2, ok := DateRangeForWeek(start, 2)
	if !ok {
		t.Fatal("week 2 range not found")
	}
	if !r2.Start.Equal(date(2026, time.January, 12)) {
		t.Errorf("week 2 start = %s, want 2026-01-12", r2.Start.Format("2006-01-02"))
	}

	for _, bad := range []int{0, -1, curriculum.WeeksTotal + 1} {
		if _, ok := DateRangeForWeek(start, bad); ok {
			t.Errorf("DateRangeForWeek(%d) ok = true, want false", bad)
		}
	}
}

func TestDateRangeAgreesWithLessonForDate(t *testing.T) {
	// Every ordinal of week w must map to a date inside the range,
	// and the range start is the date of the week's first ordinal.
	start := date(2026, time.April, 1) // a Wednesday, exercises offset weeks

	for week := 1; week <= curriculum.WeeksTotal; week++ {
		r, ok := DateRangeForWeek(start, week)
		if !ok {
			t.Fatalf("week %d: no range", week)
		}

		firstOrdinal := (week-1)*curriculum.LessonsPerWeek + 1
		firstDate, ok := DateForOrdinal(start, firstOrdinal)
		if !ok {
			t.Fatalf("week %d: no date for ordinal %d", week, firstOrdinal)
		}
		if !r.Start.Equal(firstDate) {
			t.Errorf("week %d: range start %s != first ordinal date %s",
				week, r.Start.Format("2006-01-02"), firstDate.Format("2006-01-02"))
		}

		for o := firstOrdinal; o <= week*curriculum.LessonsPerWeek; o++ {
			d, ok := DateForOrdinal(start, o)
			if !ok {
				t.Fatalf("no date for ordinal %d", o)
			}
			if d.Before(r.Start) || d.After(r.End) {
				t.Errorf("ordinal %d date %s outside week %d range [%s, %s]",
					o, d.Format("2006-01-02"), week,
					r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
			}
			back, ok := LessonForDate(start, d)
			if !ok || back != o {
				t.Errorf("round trip ordinal %d -> %s -> (%d, %v)", o, d.Format("2006-01-02"), back, ok)
			}
		}
	}
}
