package curriculum

// Table is the immutable curriculum: the ordered lesson schedule plus
// the variant-keyed content tables. It is shared read-only data; profiles
// reference it but never own or mutate it.
type Table struct {
	lessons []Lesson
	byWeek  map[int][]Lesson
	byPhase map[int][]Lesson
}

// table is the package-level singleton, built once from the seed.
var table = buildTable()

// Default returns the built-in curriculum table.
func Default() *Table {
	return table
}

func buildTable() *Table {
	t := &Table{
		lessons: make([]Lesson, 0, TotalLessons),
		byWeek:  make(map[int][]Lesson, WeeksTotal),
		byPhase: make(map[int][]Lesson, PhasesTotal),
	}
	for i, e := range standardSeed {
		ordinal := i + 1
		l := Lesson{
			Ordinal:  ordinal,
			Week:     WeekOf(ordinal),
			Phase:    PhaseOf(ordinal),
			Day:      DayOf(ordinal),
			Platform: e.platform,
			Topic:    e.topic,
		}
		t.lessons = append(t.lessons, l)
		t.byWeek[l.Week] = append(t.byWeek[l.Week], l)
		t.byPhase[l.Phase] = append(t.byPhase[l.Phase], l)
	}
	return t
}

// Len returns the number of lessons in the curriculum.
func (t *Table) Len() int {
	return len(t.lessons)
}

// Lesson returns the lesson with the given ordinal.
// ok is false for ordinals outside 1..Len().
func (t *Table) Lesson(ordinal int) (Lesson, bool) {
	if ordinal < 1 || ordinal > len(t.lessons) {
		return Lesson{}, false
	}
	return t.lessons[ordinal-1], true
}

// Lessons returns all lessons in ascending ordinal order.
func (t *Table) Lessons() []Lesson {
	out := make([]Lesson, len(t.lessons))
	copy(out, t.lessons)
	return out
}

// Week returns the lessons of a week in ascending ordinal order.
// Unknown weeks yield an empty slice, never an error.
func (t *Table) Week(week int) []Lesson {
	return t.byWeek[week]
}

// Phase returns the lessons of a phase in ascending ordinal order.
// Unknown phases yield an empty slice, never an error.
func (t *Table) Phase(phase int) []Lesson {
	return t.byPhase[phase]
}

// Tasks returns the task text for an ordinal under the given variant,
// joining the shared schedule with the variant content table. Junior
// ordinals without an override fall back to the standard text.
func (t *Table) Tasks(v Variant, ordinal int) (Tasks, bool) {
	if ordinal < 1 || ordinal > len(t.lessons) {
		return Tasks{}, false
	}
	e := standardSeed[ordinal-1]
	tasks := Tasks{Build: e.build, Reasoning: e.reasoning, Typing: e.typing, Note: e.note}
	if v == VariantJunior {
		if o, ok := juniorOverrides[ordinal]; ok {
			tasks = o
		}
	}
	return tasks, true
}
