package curriculum

import "testing"

func TestDefaultTableShape(t *testing.T) {
	tab := Default()

	if tab.Len() != TotalLessons {
		t.Fatalf("Len() = %d, want %d", tab.Len(), TotalLessons)
	}
	if err := Validate(tab.Lessons()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestWeekAndPhaseDerivation(t *testing.T) {
	tests := []struct {
		ordinal int
		week    int
		phase   int
		day     DayLabel
	}{
		{1, 1, 1, Mon},
		{6, 1, 1, Sat},
		{7, 2, 1, Mon},
		{24, 4, 1, Sat},
		{25, 5, 2, Mon},
		{48, 8, 2, Sat},
		{49, 9, 3, Mon},
		{71, 12, 3, Fri},
		{72, 12, 3, Sat},
	}

	for _, tt := range tests {
		if got := WeekOf(tt.ordinal); got != tt.week {
			t.Errorf("WeekOf(%d) = %d, want %d", tt.ordinal, got, tt.week)
		}
		if got := PhaseOf(tt.ordinal); got != tt.phase {
			t.Errorf("PhaseOf(%d) = %d, want %d", tt.ordinal, got, tt.phase)
		}
		if got := DayOf(tt.ordinal); got != tt.day {
			t.Errorf("DayOf(%d) = %q, want %q", tt.ordinal, got, tt.day)
		}
	}
}

func TestLessonBounds(t *testing.T) {
	tab := Default()

	for _, bad := range []int{0, -1, TotalLessons + 1} {
		if _, ok := tab.Lesson(bad); ok {
			t.Errorf("Lesson(%d) ok = true, want false", bad)
		}
	}

	l, ok := tab.Lesson(1)
	if !ok {
		t.Fatal("Lesson(1) not found")
	}
	if l.Platform != PlatformScratch {
		t.Errorf("lesson 1 platform = %q, want scratch", l.Platform)
	}

	l, ok = tab.Lesson(TotalLessons)
	if !ok {
		t.Fatalf("Lesson(%d) not found", TotalLessons)
	}
	if l.Platform != PlatformReplit {
		t.Errorf("last lesson platform = %q, want replit", l.Platform)
	}
}

func TestWeekFilter(t *testing.T) {
	tab := Default()

	week5 := tab.Week(5)
	if len(week5) != LessonsPerWeek {
		t.Fatalf("Week(5) len = %d, want %d", len(week5), LessonsPerWeek)
	}
	for i, l := range week5 {
		if l.Ordinal != 25+i {
			t.Errorf("Week(5)[%d].Ordinal = %d, want %d", i, l.Ordinal, 25+i)
		}
		if l.Phase != 2 {
			t.Errorf("Week(5)[%d].Phase = %d, want 2", i, l.Phase)
		}
	}

	if got := tab.Week(0); len(got) != 0 {
		t.Errorf("Week(0) len = %d, want 0", len(got))
	}
	if got := tab.Week(13); len(got) != 0 {
		t.Errorf("Week(13) len = %d, want 0", len(got))
	}
}

func TestPhaseFilter(t *testing.T) {
	tab := Default()

	for phase := 1; phase <= PhasesTotal; phase++ {
		got := tab.Phase(phase)
		if len(got) != LessonsPerWeek*WeeksPerPhase {
			t.Errorf("Phase(%d) len = %d, want %d", phase, len(got), LessonsPerWeek*WeeksPerPhase)
		}
	}
	if got := tab.Phase(4); len(got) != 0 {
		t.Errorf("Phase(4) len = %d, want 0", len(got))
	}
}

func TestTasksVariantJoin(t *testing.T) {
	tab := Default()

	// Junior override replaces standard text where present.
	std, ok := tab.Tasks(VariantStandard, 1)
	if !ok {
		t.Fatal("standard tasks for ordinal 1 not found")
	}
	jr, ok := tab.Tasks(VariantJunior, 1)
	if !ok {
		t.Fatal("junior tasks for ordinal 1 not found")
	}
	if std.Build == jr.Build {
		t.Error("expected junior build task for ordinal 1 to differ from standard")
	}

	// Ordinal without a junior override falls back to standard.
	std3, _ := tab.Tasks(VariantStandard, 3)
	jr3, _ := tab.Tasks(VariantJunior, 3)
	if std3 != jr3 {
		t.Errorf("junior tasks for ordinal 3 = %+v, want standard fallback %+v", jr3, std3)
	}

	if _, ok := tab.Tasks(VariantStandard, 0); ok {
		t.Error("Tasks(_, 0) ok = true, want false")
	}
	if _, ok := tab.Tasks(VariantStandard, TotalLessons+1); ok {
		t.Error("Tasks out of range ok = true, want false")
	}
}

func TestJuniorOverridesStayInRange(t *testing.T) {
	for ordinal := range juniorOverrides {
		if ordinal < 1 || ordinal > TotalLessons {
			t.Errorf("junior override for out-of-range ordinal %d", ordinal)
		}
	}
}
