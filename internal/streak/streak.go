// Package streak computes consecutive-lesson streaks over a progress ledger.
package streak

import (
	"time"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/schedule"
)

// Current returns the learner's current streak: the run of consecutively
// completed lessons ending at the most recent completed lesson. A lesson
// counts as complete only when all four task flags are ticked.
//
// Without a start date the anchor is the highest completed ordinal in the
// ledger. With a start date the anchor is today's scheduled lesson; if today
// is a rest day or falls outside the curriculum, the anchor steps back to
// the most recent scheduled lesson before it.
func Current(tab *curriculum.Table, v ledger.View, start *time.Time, today time.Time) int {
	anchor := 0
	if start != nil {
		anchor = scheduledAnchor(*start, today)
	} else {
		anchor = ledgerAnchor(tab, v)
	}
	if anchor == 0 {
		return 0
	}
	return countBack(v, anchor)
}

// Longest returns the longest run of consecutively completed ordinals
// anywhere in the ledger.
func Longest(tab *curriculum.Table, v ledger.View) int {
	best, run := 0, 0
	for o := 1; o <= tab.Len(); o++ {
		if v.Complete(o) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// ledgerAnchor finds the highest completed ordinal. Incomplete lessons
// above it do not matter; the streak reflects finished work, not gaps
// left by skipping ahead.
func ledgerAnchor(tab *curriculum.Table, v ledger.View) int {
	for o := tab.Len(); o >= 1; o-- {
		if v.Complete(o) {
			return o
		}
	}
	return 0
}

// scheduledAnchor resolves today to an ordinal, walking back over rest
// days and days past the curriculum end until a scheduled lesson is
// found. Returns 0 when today precedes the start date entirely.
func scheduledAnchor(start, today time.Time) int {
	day := schedule.DateOnly(today)
	first := schedule.DateOnly(start)
	for !day.Before(first) {
		if o, ok := schedule.LessonForDate(start, day); ok {
			return o
		}
		day = day.AddDate(0, 0, -1)
	}
	return 0
}

func countBack(v ledger.View, anchor int) int {
	n := 0
	for o := anchor; o >= 1; o-- {
		if !v.Complete(o) {
			break
		}
		n++
	}
	return n
}
