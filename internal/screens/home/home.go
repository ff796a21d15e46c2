package home

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
	"github.com/youngtekkie/tekkie/internal/progress"
	"github.com/youngtekkie/tekkie/internal/router"
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/screens/activity"
	"github.com/youngtekkie/tekkie/internal/screens/certificates"
	"github.com/youngtekkie/tekkie/internal/screens/dashboard"
	"github.com/youngtekkie/tekkie/internal/screens/journey"
	"github.com/youngtekkie/tekkie/internal/screens/profiles"
	"github.com/youngtekkie/tekkie/internal/streak"
	"github.com/youngtekkie/tekkie/internal/ui/components"
	"github.com/youngtekkie/tekkie/internal/ui/theme"
)

// Deps bundles everything the home screen and its children need.
type Deps struct {
	Tab      *curriculum.Table
	Ledger   *ledger.Service
	Profiles *profile.Service
	// Profile is the child the session is for. Never nil here; app
	// routes to the profiles screen first when no profile exists.
	Profile    *profile.Profile
	Restricted bool
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	overall progress.Summary
	streak  int
	next    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for the given profile.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.refresh()

	items := []components.MenuItem{
		{Label: "TODAY'S LESSON", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: journey.NewAtToday(deps.Tab, deps.Ledger, deps.Profile)}
			}
		}},
		{Label: "JOURNEY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: journey.New(deps.Tab, deps.Ledger, deps.Profile)}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(deps.Tab, deps.Ledger, deps.Profile)}
			}
		}},
		{Label: "CERTIFICATES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: certificates.New(deps.Tab, deps.Ledger, deps.Profile)}
			}
		}},
		{Label: "ACTIVITY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: activity.New(deps.Ledger, deps.Tab, deps.Profile.ID)}
			}
		}},
		{Label: "PROFILES", Disabled: deps.Restricted, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profiles.New(deps.Profiles, deps.Tab, deps.Ledger)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// refresh recomputes the stats shown under the menu.
func (h *HomeScreen) refresh() {
	v, err := h.deps.Ledger.View(context.Background(), h.deps.Profile.ID)
	if err != nil {
		return
	}
	h.overall = progress.Overall(h.deps.Tab, v)
	h.streak = streak.Current(h.deps.Tab, v, h.deps.Profile.StartDate, time.Now())
	if next, ok := progress.NextIncomplete(h.deps.Tab, v); ok {
		h.next = next.Topic
	} else {
		h.next = "All done!"
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(journey.ProgressChangedMsg); ok {
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := theme.Title.Render("Hi " + h.deps.Profile.DisplayName + "!")

	bar := components.NewProgressBar("Progress", float64(h.overall.Percent)/100, true, 44)

	stats := strings.Join([]string{
		bar.View(),
		theme.Body.Render("Streak: ") + theme.Selected.Render(streakLabel(h.streak)),
		theme.Hint.Render("Next up: " + h.next),
	}, "\n")

	card := theme.Card.Render(stats)

	content := strings.Join([]string{
		greeting,
		"",
		card,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func streakLabel(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
