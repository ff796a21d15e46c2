// Package progress derives completion aggregates from the curriculum
// table and a ledger snapshot. Nothing here is stored; every value is
// recomputed on demand.
package progress

import (
	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
)

// Summary is a completion count with a rounded percentage.
type Summary struct {
	Completed int
	Total     int
	Percent   int
}

// Overall summarizes the whole curriculum.
func Overall(tab *curriculum.Table, v ledger.View) Summary {
	return summarize(tab.Lessons(), v)
}

// Phase summarizes one phase. Unknown phases yield a zero Summary.
func Phase(tab *curriculum.Table, v ledger.View, phase int) Summary {
	return summarize(tab.Phase(phase), v)
}

// Week summarizes one week. Unknown weeks yield a zero Summary.
func Week(tab *curriculum.Table, v ledger.View, week int) Summary {
	return summarize(tab.Week(week), v)
}

// NextIncomplete returns the lesson with the smallest ordinal that is
// not complete, or ok=false when the curriculum is fully finished.
func NextIncomplete(tab *curriculum.Table, v ledger.View) (curriculum.Lesson, bool) {
	for _, l := range tab.Lessons() {
		if !v.Complete(l.Ordinal) {
			return l, true
		}
	}
	return curriculum.Lesson{}, false
}

func summarize(lessons []curriculum.Lesson, v ledger.View) Summary {
	s := Summary{Total: len(lessons)}
	for _, l := range lessons {
		if v.Complete(l.Ordinal) {
			s.Completed++
		}
	}
	s.Percent = percent(s.Completed, s.Total)
	return s
}

// percent rounds half-up and guards the empty filter case.
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return (completed*100*2 + total) / (total * 2)
}
