// Package dashboard renders a read-only progress overview.
package dashboard

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
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/streak"
	"github.com/youngtekkie/tekkie/internal/ui/components"
	"github.com/youngtekkie/tekkie/internal/ui/theme"
)

// DashboardScreen shows overall, phase and week progress plus streaks.
type DashboardScreen struct {
	tab     *curriculum.Table
	svc     *ledger.Service
	prof    *profile.Profile
	view    ledger.View
	loadErr error
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New loads the ledger and builds the dashboard.
func New(tab *curriculum.Table, svc *ledger.Service, prof *profile.Profile) *DashboardScreen {
	d := &DashboardScreen{tab: tab, svc: svc, prof: prof}
	v, err := svc.View(context.Background(), prof.ID)
	if err != nil {
		d.loadErr = err
		return d
	}
	d.view = v
	return d
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	if d.loadErr != nil {
		msg := theme.Incorrect.Render("Could not load progress: " + d.loadErr.Error())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	const barWidth = 50
	var sections []string

	overall := progress.Overall(d.tab, d.view)
	sections = append(sections,
		theme.Title.Render(d.prof.DisplayName+"'s Dashboard"),
		"",
		components.NewProgressBar("Overall ", pct(overall), true, barWidth).View(),
		theme.Body.Render(fmt.Sprintf("%d of %d lessons complete", overall.Completed, overall.Total)),
		theme.Body.Render(fmt.Sprintf("Streak %d, longest %d",
			streak.Current(d.tab, d.view, d.prof.StartDate, time.Now()),
			streak.Longest(d.tab, d.view))),
		"",
	)

	for phase := 1; phase <= curriculum.PhasesTotal; phase++ {
		s := progress.Phase(d.tab, d.view, phase)
		label := fmt.Sprintf("%-8s", curriculum.PhaseDisplayName(phase))
		sections = append(sections, components.NewProgressBar(label, pct(s), true, barWidth).View())
	}
	sections = append(sections, "")

	// Week grid: one cell per week.
	var cells []string
	for week := 1; week <= curriculum.WeeksTotal; week++ {
		s := progress.Week(d.tab, d.view, week)
		cell := fmt.Sprintf("W%-2d %d/%d", week, s.Completed, s.Total)
		switch {
		case s.Total > 0 && s.Completed == s.Total:
			cell = theme.Correct.Render(cell)
		case s.Completed > 0:
			cell = theme.Selected.Render(cell)
		default:
			cell = theme.Hint.Render(cell)
		}
		cells = append(cells, cell)
	}
	for i := 0; i < len(cells); i += 4 {
		end := i + 4
		if end > len(cells) {
			end = len(cells)
		}
		sections = append(sections, strings.Join(cells[i:end], "   "))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func pct(s progress.Summary) float64 {
	return float64(s.Percent) / 100
}
