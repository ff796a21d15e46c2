package progress

import (
	"testing"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
)

func completed(ordinals ...int) ledger.View {
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

func TestOverallEmpty(t *testing.T) {
	got := Overall(curriculum.Default(), ledger.NewView(nil))
	want := Summary{Completed: 0, Total: curriculum.TotalLessons, Percent: 0}
	if got != want {
		t.Errorf("Overall = %+v, want %+v", got, want)
	}
}

func TestOverallCountsOnlyFullLessons(t *testing.T) {
	tab := curriculum.Default()

	flags := map[int]map[string]bool{
		1: {ledger.FlagBuild: true, ledger.FlagReasoning: true, ledger.FlagTyping: true, ledger.FlagPresented: true},
		2: {ledger.FlagBuild: true}, // partial, must not count
	}
	got := Overall(tab, ledger.NewView(flags))
	if got.Completed != 1 {
		t.Errorf("Completed = %d, want 1", got.Completed)
	}
}

func TestOverallPercentRounding(t *testing.T) {
	tab := curriculum.Default()

	tests := []struct {
		done    int
		percent int
	}{
		{0, 0},
		{1, 1},   // 1/72 = 1.39%
		{36, 50}, // exactly half
		{37, 51}, // 51.39%
		{71, 99}, // 98.6%
		{72, 100},
	}

	for _, tt := range tests {
		ordinals := make([]int, tt.done)
		for i := range ordinals {
			ordinals[i] = i + 1
		}
		got := Overall(tab, completed(ordinals...))
		if got.Completed != tt.done || got.Percent != tt.percent {
			t.Errorf("Overall(%d done) = %+v, want completed=%d percent=%d",
				tt.done, got, tt.done, tt.percent)
		}
	}
}

func TestPercentHalfUp(t *testing.T) {
	// 1/8 = 12.5% rounds up to 13.
	if got := percent(1, 8); got != 13 {
		t.Errorf("percent(1, 8) = %d, want 13", got)
	}
	// 1/3 = 33.33% rounds down to 33.
	if got := percent(1, 3); got != 33 {
		t.Errorf("percent(1, 3) = %d, want 33", got)
	}
	if got := percent(0, 0); got != 0 {
		t.Errorf("percent(0, 0) = %d, want 0", got)
	}
}

func TestWeekProgress(t *testing.T) {
	tab := curriculum.Default()

	// Complete week 2 entirely (ordinals 7-12) plus one lesson of week 3.
	v := completed(7, 8, 9, 10, 11, 12, 13)

	w2 := Week(tab, v, 2)
	if w2.Completed != 6 || w2.Total != 6 || w2.Percent != 100 {
		t.Errorf("Week(2) = %+v, want 6/6 100%%", w2)
	}
	w3 := Week(tab, v, 3)
	if w3.Completed != 1 || w3.Total != 6 || w3.Percent != 17 {
		t.Errorf("Week(3) = %+v, want 1/6 17%%", w3)
	}
	w1 := Week(tab, v, 1)
	if w1.Completed != 0 {
		t.Errorf("Week(1) = %+v, want zero completed", w1)
	}
}

func TestPhaseProgress(t *testing.T) {
	tab := curriculum.Default()

	// Complete all of phase 1 (ordinals 1-24).
	ordinals := make([]int, 24)
	for i := range ordinals {
		ordinals[i] = i + 1
	}
	v := completed(ordinals...)

	p1 := Phase(tab, v, 1)
	if p1.Completed != 24 || p1.Total != 24 || p1.Percent != 100 {
		t.Errorf("Phase(1) = %+v, want 24/24 100%%", p1)
	}
	p2 := Phase(tab, v, 2)
	if p2.Completed != 0 || p2.Total != 24 {
		t.Errorf("Phase(2) = %+v, want 0/24", p2)
	}
}

func TestOutOfRangeFiltersYieldZero(t *testing.T) {
	tab := curriculum.Default()
	v := completed(1)

	for _, week := range []int{0, -3, 13} {
		if got := Week(tab, v, week); got != (Summary{}) {
			t.Errorf("Week(%d) = %+v, want zero summary", week, got)
		}
	}
	for _, phase := range []int{0, 4} {
		if got := Phase(tab, v, phase); got != (Summary{}) {
			t.Errorf("Phase(%d) = %+v, want zero summary", phase, got)
		}
	}
}

func TestNextIncomplete(t *testing.T) {
	tab := curriculum.Default()

	// Fresh ledger: next is ordinal 1.
	l, ok := NextIncomplete(tab, ledger.NewView(nil))
	if !ok || l.Ordinal != 1 {
		t.Fatalf("NextIncomplete(empty) = (%d, %v), want (1, true)", l.Ordinal, ok)
	}

	// 1-10 and 12 complete: the gap at 11 wins over the higher 12.
	v := completed(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12)
	l, ok = NextIncomplete(tab, v)
	if !ok || l.Ordinal != 11 {
		t.Fatalf("NextIncomplete = (%d, %v), want (11, true)", l.Ordinal, ok)
	}

	// Everything complete: none.
	all := make([]int, curriculum.TotalLessons)
	for i := range all {
		all[i] = i + 1
	}
	if _, ok := NextIncomplete(tab, completed(all...)); ok {
		t.Fatal("NextIncomplete on a finished curriculum should be none")
	}
}

func TestTogglingFlagDropsCompleted(t *testing.T) {
	tab := curriculum.Default()

	flags := map[int]map[string]bool{
		5: {ledger.FlagBuild: true, ledger.FlagReasoning: true, ledger.FlagTyping: true, ledger.FlagPresented: true},
		6: {ledger.FlagBuild: true, ledger.FlagReasoning: true, ledger.FlagTyping: true, ledger.FlagPresented: true},
	}
	before := Overall(tab, ledger.NewView(flags)).Completed

	flags[5][ledger.FlagTyping] = false
	after := Overall(tab, ledger.NewView(flags)).Completed

	if after != before-1 {
		t.Errorf("completed went %d -> %d, want a drop of exactly 1", before, after)
	}
}
