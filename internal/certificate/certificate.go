// Package certificate builds printable weekly award summaries from the
// progress ledger.
package certificate

import (
	"fmt"
	"time"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/progress"
	"github.com/youngtekkie/tekkie/internal/schedule"
)

// Kind classifies a certificate by whether the week is finished.
type Kind string

const (
	// KindCompletion marks a week where every lesson is fully done.
	KindCompletion Kind = "completion"
	// KindProgress marks a week still in flight.
	KindProgress Kind = "progress"
)

// ChecklistItem is one lesson row on the certificate.
type ChecklistItem struct {
	Ordinal  int
	Day      curriculum.DayLabel
	Topic    string
	Complete bool
}

// Certificate is the derived award for one week of the curriculum.
type Certificate struct {
	Week      int
	Title     string
	Kind      Kind
	Percent   int
	Checklist []ChecklistItem
	// DateLabel is a human-readable calendar range for the week. Empty
	// when the profile has no start date.
	DateLabel string
}

// For derives the certificate for one week. Weeks with no lessons
// yield an empty progress certificate rather than an error. A non-nil
// start date adds a calendar label for the week.
func For(tab *curriculum.Table, v ledger.View, variant curriculum.Variant, week int, start *time.Time) Certificate {
	cert := Certificate{
		Week:  week,
		Title: TitleFor(variant, week),
		Kind:  KindProgress,
	}

	lessons := tab.Week(week)
	sum := progress.Week(tab, v, week)
	cert.Percent = sum.Percent

	if len(lessons) > 0 && sum.Completed == sum.Total {
		cert.Kind = KindCompletion
	}

	cert.Checklist = make([]ChecklistItem, 0, len(lessons))
	for _, l := range lessons {
		cert.Checklist = append(cert.Checklist, ChecklistItem{
			Ordinal:  l.Ordinal,
			Day:      l.Day,
			Topic:    l.Topic,
			Complete: v.Complete(l.Ordinal),
		})
	}

	if start != nil {
		if r, ok := schedule.DateRangeForWeek(*start, week); ok {
			cert.DateLabel = formatRange(r)
		}
	}
	return cert
}

func formatRange(r schedule.DateRange) string {
	const day = "Jan 2"
	if r.Start.Year() == r.End.Year() {
		return fmt.Sprintf("%s - %s, %d", r.Start.Format(day), r.End.Format(day), r.End.Year())
	}
	return fmt.Sprintf("%s, %d - %s, %d",
		r.Start.Format(day), r.Start.Year(), r.End.Format(day), r.End.Year())
}
