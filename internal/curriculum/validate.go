package curriculum

import "fmt"

// Validate checks the structural invariants of a lesson table:
// dense ordinals from 1, non-decreasing week and phase, exactly six
// lessons per week, and no rest-day label. Run by tests against the
// built-in table; a failure means the seed data is broken.
func Validate(lessons []Lesson) error {
	if len(lessons) == 0 {
		return fmt.Errorf("empty curriculum")
	}

	perWeek := make(map[int]int)
	prevWeek, prevPhase := 0, 0

	for i, l := range lessons {
		want := i + 1
		if l.Ordinal != want {
			return fmt.Errorf("ordinal at index %d is %d, want %d", i, l.Ordinal, want)
		}
		if l.Week < prevWeek {
			return fmt.Errorf("ordinal %d: week %d decreases from %d", l.Ordinal, l.Week, prevWeek)
		}
		if l.Phase < prevPhase {
			return fmt.Errorf("ordinal %d: phase %d decreases from %d", l.Ordinal, l.Phase, prevPhase)
		}
		switch l.Day {
		case Mon, Tue, Wed, Thu, Fri, Sat:
		default:
			return fmt.Errorf("ordinal %d: invalid day label %q", l.Ordinal, l.Day)
		}
		if l.Topic == "" {
			return fmt.Errorf("ordinal %d: empty topic", l.Ordinal)
		}
		if _, ok := Platforms[l.Platform]; !ok {
			return fmt.Errorf("ordinal %d: unknown platform %q", l.Ordinal, l.Platform)
		}
		perWeek[l.Week]++
		prevWeek, prevPhase = l.Week, l.Phase
	}

	for week, n := range perWeek {
		if n != LessonsPerWeek {
			return fmt.Errorf("week %d has %d lessons, want %d", week, n, LessonsPerWeek)
		}
	}
	return nil
}
