// Package journey is the week-by-week lesson browser where task flags
// are ticked.
package journey

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/profile"
	"github.com/youngtekkie/tekkie/internal/schedule"
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/ui/layout"
	"github.com/youngtekkie/tekkie/internal/ui/theme"
)

// ProgressChangedMsg tells ancestor screens that the ledger changed.
type ProgressChangedMsg struct{}

// flagOrder is the toggle order for the left/right flag cursor.
var flagOrder = []string{
	ledger.FlagBuild,
	ledger.FlagReasoning,
	ledger.FlagTyping,
	ledger.FlagPresented,
}

// JourneyScreen browses one week at a time.
type JourneyScreen struct {
	tab     *curriculum.Table
	svc     *ledger.Service
	prof    *profile.Profile
	view    ledger.View
	week    int
	row     int // selected lesson within the week
	loadErr error
}

var _ screen.Screen = (*JourneyScreen)(nil)

// New opens the journey at week 1.
func New(tab *curriculum.Table, svc *ledger.Service, prof *profile.Profile) *JourneyScreen {
	return newAt(tab, svc, prof, 1, 0)
}

// NewAtToday opens the journey at today's lesson: the scheduled one
// when the profile has a start date, the next incomplete one otherwise.
func NewAtToday(tab *curriculum.Table, svc *ledger.Service, prof *profile.Profile) *JourneyScreen {
	j := newAt(tab, svc, prof, 1, 0)
	ordinal := 0
	if prof.StartDate != nil {
		if o, ok := schedule.LessonForDate(*prof.StartDate, time.Now()); ok {
			ordinal = o
		}
	}
	if ordinal == 0 {
		for o := 1; o <= tab.Len(); o++ {
			if !j.view.Complete(o) {
				ordinal = o
				break
			}
		}
	}
	if ordinal > 0 {
		j.week = curriculum.WeekOf(ordinal)
		j.row = (ordinal - 1) % curriculum.LessonsPerWeek
	}
	return j
}

func newAt(tab *curriculum.Table, svc *ledger.Service, prof *profile.Profile, week, row int) *JourneyScreen {
	j := &JourneyScreen{
		tab:  tab,
		svc:  svc,
		prof: prof,
		week: week,
		row:  row,
	}
	j.reload()
	return j
}

func (j *JourneyScreen) reload() {
	v, err := j.svc.View(context.Background(), j.prof.ID)
	if err != nil {
		j.loadErr = err
		return
	}
	j.loadErr = nil
	j.view = v
}

func (j *JourneyScreen) Title() string {
	return fmt.Sprintf("Journey — Week %d", j.week)
}

func (j *JourneyScreen) Init() tea.Cmd {
	return nil
}

func (j *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return j, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if j.week > 1 {
			j.week--
			j.row = 0
		}
	case "right", "l":
		if j.week < curriculum.WeeksTotal {
			j.week++
			j.row = 0
		}
	case "up", "k":
		if j.row > 0 {
			j.row--
		}
	case "down", "j":
		if j.row < len(j.lessons())-1 {
			j.row++
		}
	case "b":
		return j, j.toggle(ledger.FlagBuild)
	case "r":
		return j, j.toggle(ledger.FlagReasoning)
	case "t":
		return j, j.toggle(ledger.FlagTyping)
	case "p":
		return j, j.toggle(ledger.FlagPresented)
	case "enter", " ":
		return j, j.toggleAll()
	}
	return j, nil
}

func (j *JourneyScreen) lessons() []curriculum.Lesson {
	return j.tab.Week(j.week)
}

func (j *JourneyScreen) selected() (curriculum.Lesson, bool) {
	lessons := j.lessons()
	if j.row < 0 || j.row >= len(lessons) {
		return curriculum.Lesson{}, false
	}
	return lessons[j.row], true
}

// toggle flips one flag on the selected lesson.
func (j *JourneyScreen) toggle(key string) tea.Cmd {
	lesson, ok := j.selected()
	if !ok {
		return nil
	}
	ctx := context.Background()
	value := !j.view.Flag(lesson.Ordinal, key)
	if err := j.svc.SetFlag(ctx, j.prof.ID, lesson.Ordinal, key, value); err != nil {
		j.loadErr = err
		return nil
	}
	j.reload()
	return func() tea.Msg { return ProgressChangedMsg{} }
}

// toggleAll ticks every flag on the selected lesson, or clears them all
// when the lesson is already complete.
func (j *JourneyScreen) toggleAll() tea.Cmd {
	lesson, ok := j.selected()
	if !ok {
		return nil
	}
	ctx := context.Background()
	value := !j.view.Complete(lesson.Ordinal)
	for _, key := range flagOrder {
		if err := j.svc.SetFlag(ctx, j.prof.ID, lesson.Ordinal, key, value); err != nil {
			j.loadErr = err
			return nil
		}
	}
	j.reload()
	return func() tea.Msg { return ProgressChangedMsg{} }
}

func (j *JourneyScreen) View(width, height int) string {
	var b strings.Builder

	phase := curriculum.PhaseOf((j.week-1)*curriculum.LessonsPerWeek + 1)
	header := fmt.Sprintf("Week %d of %d — %s", j.week, curriculum.WeeksTotal, curriculum.PhaseDisplayName(phase))
	b.WriteString(theme.Title.Render(header))
	b.WriteString("\n")
	if dates := j.weekDates(); dates != "" {
		b.WriteString(theme.Subtitle.Render(dates))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if j.loadErr != nil {
		b.WriteString(theme.Incorrect.Render("Could not load progress: " + j.loadErr.Error()))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	for i, lesson := range j.lessons() {
		b.WriteString(j.renderRow(lesson, i == j.row))
		b.WriteString("\n")
	}

	if lesson, ok := j.selected(); ok {
		b.WriteString("\n")
		b.WriteString(j.renderDetail(lesson))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (j *JourneyScreen) weekDates() string {
	if j.prof.StartDate == nil {
		return ""
	}
	r, ok := schedule.DateRangeForWeek(*j.prof.StartDate, j.week)
	if !ok {
		return ""
	}
	return r.Start.Format("Jan 2") + " - " + r.End.Format("Jan 2")
}

func (j *JourneyScreen) renderRow(lesson curriculum.Lesson, selected bool) string {
	boxes := make([]string, 0, len(flagOrder))
	for _, key := range flagOrder {
		mark := " "
		if j.view.Flag(lesson.Ordinal, key) {
			mark = "x"
		}
		boxes = append(boxes, fmt.Sprintf("[%s]", mark))
	}

	row := fmt.Sprintf("%s %2d %s  %s  %s",
		string(lesson.Day)[:3], lesson.Ordinal, strings.Join(boxes, ""), statusIcon(j.view, lesson.Ordinal), lesson.Topic)

	switch {
	case selected:
		return theme.Selected.Render("▸ " + row)
	case j.view.Complete(lesson.Ordinal):
		return theme.Correct.Render("  " + row)
	default:
		return theme.Unselected.Render("  " + row)
	}
}

func (j *JourneyScreen) renderDetail(lesson curriculum.Lesson) string {
	tasks, ok := j.tab.Tasks(j.prof.Variant, lesson.Ordinal)
	if !ok {
		return ""
	}
	lines := []string{
		theme.Body.Render("b  build:     " + tasks.Build),
		theme.Body.Render("r  reasoning: " + tasks.Reasoning),
		theme.Body.Render("t  typing:    " + tasks.Typing),
	}
	if tasks.Note != "" {
		lines = append(lines, theme.Body.Render("p  presented: "+tasks.Note))
	} else {
		lines = append(lines, theme.Body.Render("p  presented"))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func statusIcon(v ledger.View, ordinal int) string {
	if v.Complete(ordinal) {
		return "✔"
	}
	if v.Flag(ordinal, ledger.FlagBuild) || v.Flag(ordinal, ledger.FlagReasoning) ||
		v.Flag(ordinal, ledger.FlagTyping) || v.Flag(ordinal, ledger.FlagPresented) {
		return "…"
	}
	return " "
}

// KeyHints lists the journey key bindings for the footer.
func (j *JourneyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Week"},
		{Key: "↑↓", Description: "Lesson"},
		{Key: "b/r/t/p", Description: "Tick task"},
		{Key: "Enter", Description: "Tick all"},
		{Key: "Esc", Description: "Back"},
	}
}
