package streak

import (
	"testing"
	"time"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
)

func view(ordinals ...int) ledger.View {
	flags := map[int]map[string]bool{}
	for _, o := range ordinals {
		flags[o] = map[string]bool{
			ledger.FlagBuild:     true,
			ledger.FlagReasoning: true,
			ledger.FlagTyping:    true,
			ledger.FlagPresented: true,
		}
	}
	return ledger.NewView(flags)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentEmptyLedger(t *testing.T) {
	tab := curriculum.Default()
	if got := Current(tab, ledger.NewView(nil), nil, date(2026, time.March, 2)); got != 0 {
		t.Errorf("Current(empty) = %d, want 0", got)
	}
}

func TestCurrentLedgerMode(t *testing.T) {
	tab := curriculum.Default()

	tests := []struct {
		name     string
		ordinals []int
		want     int
	}{
		{"unbroken from start", []int{1, 2, 3, 4, 5}, 5},
		{"single lesson", []int{1}, 1},
		{"gap below anchor", []int{1, 2, 4, 5, 6}, 3},
		{"isolated high lesson", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12}, 1},
		{"mid-curriculum run only", []int{20, 21, 22}, 3},
	}
	for _, tt := range tests {
		v := view(tt.ordinals...)
		if got := Current(tab, v, nil, date(2026, time.March, 2)); got != tt.want {
			t.Errorf("%s: Current = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// The streak anchors at the most recent completed lesson, so an
// unbroken prefix 1..k stays a streak of k even after the learner
// peeks ahead and leaves k+1 unfinished.
func TestCurrentPrefixUnaffectedByGapAbove(t *testing.T) {
	tab := curriculum.Default()
	for _, k := range []int{1, 6, 24, 71} {
		ordinals := make([]int, k)
		for i := range ordinals {
			ordinals[i] = i + 1
		}
		v := view(ordinals...)
		if got := Current(tab, v, nil, date(2026, time.March, 2)); got != k {
			t.Errorf("prefix 1..%d: Current = %d, want %d", k, got, k)
		}
	}
}

func TestCurrentIdempotent(t *testing.T) {
	tab := curriculum.Default()
	v := view(1, 2, 3)
	first := Current(tab, v, nil, date(2026, time.March, 2))
	second := Current(tab, v, nil, date(2026, time.March, 2))
	if first != second {
		t.Errorf("repeated calls disagree: %d then %d", first, second)
	}
}

func TestCurrentScheduledMode(t *testing.T) {
	tab := curriculum.Default()
	// Monday start: lessons run Mon-Sat, Sunday rests.
	start := date(2026, time.March, 2)

	tests := []struct {
		name     string
		today    time.Time
		ordinals []int
		want     int
	}{
		{"first day done", date(2026, time.March, 2), []int{1}, 1},
		{"first day not done", date(2026, time.March, 2), nil, 0},
		{"mid week all done", date(2026, time.March, 5), []int{1, 2, 3, 4}, 4},
		{"today missed breaks run", date(2026, time.March, 5), []int{1, 2, 3}, 0},
		// Sunday March 8 resolves back to Saturday's lesson 6.
		{"rest day anchors to saturday", date(2026, time.March, 8), []int{1, 2, 3, 4, 5, 6}, 6},
		{"before start", date(2026, time.March, 1), []int{1, 2}, 0},
	}
	for _, tt := range tests {
		got := Current(tab, view(tt.ordinals...), &start, tt.today)
		if got != tt.want {
			t.Errorf("%s: Current = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCurrentScheduledPastCurriculumEnd(t *testing.T) {
	tab := curriculum.Default()
	start := date(2026, time.March, 2)

	all := make([]int, curriculum.TotalLessons)
	for i := range all {
		all[i] = i + 1
	}
	v := view(all...)

	// Well past the 12-week window the anchor walks back to lesson 72.
	today := start.AddDate(0, 0, 120)
	if got := Current(tab, v, &start, today); got != curriculum.TotalLessons {
		t.Errorf("Current past end = %d, want %d", got, curriculum.TotalLessons)
	}
}

func TestLongest(t *testing.T) {
	tab := curriculum.Default()

	tests := []struct {
		name     string
		ordinals []int
		want     int
	}{
		{"empty", nil, 0},
		{"single", []int{7}, 1},
		{"best run not at tail", []int{1, 2, 3, 4, 10, 11}, 4},
		{"best run at tail", []int{1, 2, 20, 21, 22}, 3},
	}
	for _, tt := range tests {
		if got := Longest(tab, view(tt.ordinals...)); got != tt.want {
			t.Errorf("%s: Longest = %d, want %d", tt.name, got, tt.want)
		}
	}
}
