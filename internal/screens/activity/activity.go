// Package activity shows the recent tick history for one profile.
package activity

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/router"
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/store"
	"github.com/youngtekkie/tekkie/internal/ui/layout"
	"github.com/youngtekkie/tekkie/internal/ui/theme"
)

// maxEntries caps how much history is loaded for display.
const maxEntries = 50

type activityLoadedMsg struct {
	Events []store.TickEvent
	Err    error
}

// ActivityScreen lists recent flag changes, newest first.
type ActivityScreen struct {
	svc       *ledger.Service
	tab       *curriculum.Table
	profileID string
	events    []store.TickEvent
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New creates an activity screen for one profile.
func New(svc *ledger.Service, tab *curriculum.Table, profileID string) *ActivityScreen {
	return &ActivityScreen{svc: svc, tab: tab, profileID: profileID}
}

func (s *ActivityScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.svc.Recent(context.Background(), s.profileID, maxEntries)
		return activityLoadedMsg{Events: events, Err: err}
	}
}

func (s *ActivityScreen) Title() string {
	return "Activity"
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ActivityScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing yet. Tick a task to get going!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Recent activity")))
	b.WriteString("\n\n")

	for _, ev := range s.events {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderEvent(ev)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ActivityScreen) renderEvent(ev store.TickEvent) string {
	mark := theme.Correct.Render("✔")
	verb := "done"
	if !ev.Value {
		mark = theme.Incorrect.Render("✗")
		verb = "undone"
	}

	name := fmt.Sprintf("Lesson %d", ev.Ordinal)
	if l, ok := s.tab.Lesson(ev.Ordinal); ok {
		name = fmt.Sprintf("Lesson %d. %s", ev.Ordinal, l.Topic)
	}

	line := fmt.Sprintf("%s  %s  %s %s  %s",
		ev.At.Format("Jan 02 15:04"), mark, ledger.FlagDisplayName(ev.Flag), verb, name)
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}
