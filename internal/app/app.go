package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/profile"
	"github.com/youngtekkie/tekkie/internal/progress"
	"github.com/youngtekkie/tekkie/internal/router"
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/screens/home"
	"github.com/youngtekkie/tekkie/internal/screens/journey"
	"github.com/youngtekkie/tekkie/internal/screens/profiles"
	"github.com/youngtekkie/tekkie/internal/screens/welcome"
	"github.com/youngtekkie/tekkie/internal/streak"
	"github.com/youngtekkie/tekkie/internal/ui/layout"
)

// Options carries the services and the profile the session runs for.
type Options struct {
	Tab        *curriculum.Table
	Ledger     *ledger.Service
	Profiles   *profile.Service
	Profile    *profile.Profile
	Restricted bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	// header stats
	percent int
	streak  int
}

// newAppModel creates an AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts}
	m.refreshStats()

	splash := welcome.New(func() screen.Screen {
		return home.New(m.homeDeps())
	})
	m.router = router.New(splash)
	return m
}

func (m AppModel) homeDeps() home.Deps {
	return home.Deps{
		Tab:        m.opts.Tab,
		Ledger:     m.opts.Ledger,
		Profiles:   m.opts.Profiles,
		Profile:    m.opts.Profile,
		Restricted: m.opts.Restricted,
	}
}

func (m *AppModel) refreshStats() {
	v, err := m.opts.Ledger.View(context.Background(), m.opts.Profile.ID)
	if err != nil {
		return
	}
	m.percent = progress.Overall(m.opts.Tab, v).Percent
	m.streak = streak.Current(m.opts.Tab, v, m.opts.Profile.StartDate, time.Now())
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case journey.ProgressChangedMsg:
		m.refreshStats()
		cmd := m.router.Update(msg)
		return m, cmd

	case profiles.SwitchedMsg:
		m.opts.Profile = msg.Profile
		m.refreshStats()
		m.router = router.New(home.New(m.homeDeps()))
		return m, nil

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		// The screen underneath may show stats that the popped screen
		// changed; nudge it to reload.
		refresh := m.router.Update(journey.ProgressChangedMsg{})
		return m, tea.Batch(cmd, refresh)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.percent, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
