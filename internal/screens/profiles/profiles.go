// Package profiles lets a parent switch the active child or add a new
// one from inside the TUI.
package profiles

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/profile"
	"github.com/youngtekkie/tekkie/internal/progress"
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/ui/components"
	"github.com/youngtekkie/tekkie/internal/ui/layout"
	"github.com/youngtekkie/tekkie/internal/ui/theme"
)

// SwitchedMsg tells the app that a different profile became active.
type SwitchedMsg struct {
	Profile *profile.Profile
}

// mode selects between the list and the add-profile form.
type mode int

const (
	modeList mode = iota
	modeAddName
	modeAddGrade
)

// ProfilesScreen lists profiles, switches the active one, and creates
// new ones.
type ProfilesScreen struct {
	svc      *profile.Service
	tab      *curriculum.Table
	ledger   *ledger.Service
	list     []*profile.Profile
	activeID string
	selected int
	loadErr  error

	mode       mode
	nameInput  components.TextInput
	gradeInput components.TextInput
	newName    string
}

var _ screen.Screen = (*ProfilesScreen)(nil)

// New loads all profiles.
func New(svc *profile.Service, tab *curriculum.Table, led *ledger.Service) *ProfilesScreen {
	p := &ProfilesScreen{svc: svc, tab: tab, ledger: led}
	ctx := context.Background()
	list, err := svc.List(ctx)
	if err != nil {
		p.loadErr = err
		return p
	}
	p.list = list
	if active, err := svc.Active(ctx); err == nil && active != nil {
		p.activeID = active.ID
		for i, prof := range list {
			if prof.ID == active.ID {
				p.selected = i
			}
		}
	}
	return p
}

func (p *ProfilesScreen) Title() string {
	return "Profiles"
}

func (p *ProfilesScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfilesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch p.mode {
	case modeAddName:
		return p.updateAddName(msg)
	case modeAddGrade:
		return p.updateAddGrade(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.list)-1 {
			p.selected++
		}
	case "a":
		p.mode = modeAddName
		p.nameInput = components.NewTextInput("Child's name", false, 24)
		return p, p.nameInput.Init()
	case "enter":
		if p.selected < 0 || p.selected >= len(p.list) {
			return p, nil
		}
		chosen := p.list[p.selected]
		if err := p.svc.SetActive(context.Background(), chosen.ID); err != nil {
			p.loadErr = err
			return p, nil
		}
		p.activeID = chosen.ID
		return p, func() tea.Msg { return SwitchedMsg{Profile: chosen} }
	}
	return p, nil
}

func (p *ProfilesScreen) updateAddName(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			p.mode = modeList
			return p, nil
		case "enter":
			name := strings.TrimSpace(p.nameInput.Value())
			if name == "" {
				p.nameInput.Submit(false)
				return p, nil
			}
			p.newName = name
			p.mode = modeAddGrade
			p.gradeInput = components.NewTextInput("Grade (1-12, blank to skip)", true, 2)
			return p, p.gradeInput.Init()
		}
	}
	var cmd tea.Cmd
	p.nameInput, cmd = p.nameInput.Update(msg)
	return p, cmd
}

func (p *ProfilesScreen) updateAddGrade(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			p.mode = modeList
			return p, nil
		case "enter":
			grade := 0
			if p.gradeInput.Value() != "" {
				n, err := p.gradeInput.NumericValue()
				if err != nil || n < 1 {
					p.gradeInput.Submit(false)
					return p, nil
				}
				grade = n
			}
			return p, p.create(grade)
		}
	}
	var cmd tea.Cmd
	p.gradeInput, cmd = p.gradeInput.Update(msg)
	return p, cmd
}

func (p *ProfilesScreen) create(grade int) tea.Cmd {
	ctx := context.Background()
	created, err := p.svc.Create(ctx, p.newName, grade, "")
	if err != nil {
		p.loadErr = err
		p.mode = modeList
		return nil
	}
	p.mode = modeList
	if list, err := p.svc.List(ctx); err == nil {
		p.list = list
		for i, prof := range list {
			if prof.ID == created.ID {
				p.selected = i
			}
		}
	}
	if active, err := p.svc.Active(ctx); err == nil && active != nil {
		p.activeID = active.ID
		if active.ID == created.ID {
			return func() tea.Msg { return SwitchedMsg{Profile: created} }
		}
	}
	return nil
}

func (p *ProfilesScreen) View(width, height int) string {
	if p.loadErr != nil {
		msg := theme.Incorrect.Render("Could not load profiles: " + p.loadErr.Error())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	if p.mode == modeAddName || p.mode == modeAddGrade {
		var b strings.Builder
		b.WriteString(theme.Title.Render("New profile"))
		b.WriteString("\n\n")
		if p.mode == modeAddName {
			b.WriteString("Name:  " + p.nameInput.View())
		} else {
			b.WriteString("Name:  " + p.newName + "\n")
			b.WriteString("Grade: " + p.gradeInput.View())
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("Grades 1-3 get the junior track."))
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}
	if len(p.list) == 0 {
		msg := theme.Hint.Render(`No profiles yet. Press "a" to add one.`)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Who is coding today?"))
	b.WriteString("\n\n")
	ctx := context.Background()
	for i, prof := range p.list {
		line := fmt.Sprintf("%-16s %s", prof.DisplayName, curriculum.VariantDisplayName(prof.Variant))
		if v, err := p.ledger.View(ctx, prof.ID); err == nil {
			s := progress.Overall(p.tab, v)
			line += fmt.Sprintf("  %d%%", s.Percent)
		}
		if prof.ID == p.activeID {
			line += "  (active)"
		}
		if i == p.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints lists the profile screen key bindings for the footer.
func (p *ProfilesScreen) KeyHints() []layout.KeyHint {
	if p.mode != modeList {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Switch"},
		{Key: "a", Description: "Add"},
		{Key: "Esc", Description: "Back"},
	}
}
