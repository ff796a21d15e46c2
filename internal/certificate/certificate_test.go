package certificate

import (
	"strings"
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

func TestCompletionKind(t *testing.T) {
	tab := curriculum.Default()

	// Week 1 is ordinals 1-6.
	c := For(tab, view(1, 2, 3, 4, 5, 6), curriculum.VariantStandard, 1, nil)
	if c.Kind != KindCompletion {
		t.Errorf("Kind = %q, want completion", c.Kind)
	}
	if c.Percent != 100 {
		t.Errorf("Percent = %d, want 100", c.Percent)
	}
	if len(c.Checklist) != 6 {
		t.Fatalf("checklist has %d items, want 6", len(c.Checklist))
	}
	for i, item := range c.Checklist {
		if item.Ordinal != i+1 {
			t.Errorf("checklist[%d].Ordinal = %d, want %d", i, item.Ordinal, i+1)
		}
		if !item.Complete {
			t.Errorf("checklist[%d] not complete", i)
		}
	}
}

func TestProgressKind(t *testing.T) {
	tab := curriculum.Default()

	c := For(tab, view(1, 2, 3), curriculum.VariantStandard, 1, nil)
	if c.Kind != KindProgress {
		t.Errorf("Kind = %q, want progress", c.Kind)
	}
	if c.Percent != 50 {
		t.Errorf("Percent = %d, want 50", c.Percent)
	}
}

// Removing any one flag from a complete week flips the certificate
// back to a progress award on the next query.
func TestUntickFlipsKind(t *testing.T) {
	tab := curriculum.Default()

	flags := map[int]map[string]bool{}
	for o := 1; o <= 6; o++ {
		flags[o] = map[string]bool{
			ledger.FlagBuild:     true,
			ledger.FlagReasoning: true,
			ledger.FlagTyping:    true,
			ledger.FlagPresented: true,
		}
	}
	if c := For(tab, ledger.NewView(flags), curriculum.VariantStandard, 1, nil); c.Kind != KindCompletion {
		t.Fatalf("setup: Kind = %q, want completion", c.Kind)
	}

	flags[4][ledger.FlagPresented] = false
	if c := For(tab, ledger.NewView(flags), curriculum.VariantStandard, 1, nil); c.Kind != KindProgress {
		t.Errorf("after untick: Kind = %q, want progress", c.Kind)
	}
}

func TestUnknownWeekFallsBack(t *testing.T) {
	tab := curriculum.Default()

	c := For(tab, view(1), curriculum.VariantStandard, 99, nil)
	if c.Title != genericTitle {
		t.Errorf("Title = %q, want generic fallback", c.Title)
	}
	if c.Kind != KindProgress || c.Percent != 0 || len(c.Checklist) != 0 {
		t.Errorf("empty week certificate = %+v, want zero progress", c)
	}
}

func TestTitlesPerVariant(t *testing.T) {
	for _, variant := range curriculum.AllVariants() {
		for week := 1; week <= curriculum.WeeksTotal; week++ {
			title := TitleFor(variant, week)
			if title == "" || title == genericTitle {
				t.Errorf("TitleFor(%s, %d) = %q, want a week-specific title", variant, week, title)
			}
		}
	}
	if a, b := TitleFor(curriculum.VariantStandard, 5), TitleFor(curriculum.VariantJunior, 5); a == b {
		t.Errorf("variant titles should differ for week 5, both %q", a)
	}
}

func TestDateLabel(t *testing.T) {
	tab := curriculum.Default()
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC) // a Monday

	c := For(tab, view(), curriculum.VariantStandard, 1, &start)
	if !strings.Contains(c.DateLabel, "Mar 2") || !strings.Contains(c.DateLabel, "Mar 7") {
		t.Errorf("DateLabel = %q, want the Mar 2 - Mar 7 span", c.DateLabel)
	}

	// No start date leaves the label empty.
	if c := For(tab, view(), curriculum.VariantStandard, 1, nil); c.DateLabel != "" {
		t.Errorf("DateLabel without start date = %q, want empty", c.DateLabel)
	}
}
