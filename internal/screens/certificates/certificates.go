// Package certificates lists weekly awards and shows each one in full.
package certificates

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/youngtekkie/tekkie/internal/certificate"
	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/profile"
	"github.com/youngtekkie/tekkie/internal/screen"
	"github.com/youngtekkie/tekkie/internal/ui/layout"
	"github.com/youngtekkie/tekkie/internal/ui/theme"
)

// CertificatesScreen lists the 12 weekly certificates; enter expands
// the selected one.
type CertificatesScreen struct {
	tab      *curriculum.Table
	svc      *ledger.Service
	prof     *profile.Profile
	certs    []certificate.Certificate
	selected int
	expanded bool
	loadErr  error
}

var _ screen.Screen = (*CertificatesScreen)(nil)

// New loads the ledger and derives all weekly certificates.
func New(tab *curriculum.Table, svc *ledger.Service, prof *profile.Profile) *CertificatesScreen {
	c := &CertificatesScreen{tab: tab, svc: svc, prof: prof}
	v, err := svc.View(context.Background(), prof.ID)
	if err != nil {
		c.loadErr = err
		return c
	}
	for week := 1; week <= curriculum.WeeksTotal; week++ {
		c.certs = append(c.certs, certificate.For(tab, v, prof.Variant, week, prof.StartDate))
	}
	return c
}

func (c *CertificatesScreen) Title() string {
	return "Certificates"
}

func (c *CertificatesScreen) Init() tea.Cmd {
	return nil
}

func (c *CertificatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if !c.expanded && c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if !c.expanded && c.selected < len(c.certs)-1 {
			c.selected++
		}
	case "enter", " ":
		c.expanded = !c.expanded
	}
	return c, nil
}

func (c *CertificatesScreen) View(width, height int) string {
	if c.loadErr != nil {
		msg := theme.Incorrect.Render("Could not load progress: " + c.loadErr.Error())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	if c.expanded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.renderDetail())
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Certificates"))
	b.WriteString("\n\n")
	for i, cert := range c.certs {
		line := fmt.Sprintf("Week %2d  %-24s", cert.Week, cert.Title)
		if cert.Kind == certificate.KindCompletion {
			line += "  earned!"
		} else {
			line += fmt.Sprintf("  %3d%%", cert.Percent)
		}
		switch {
		case i == c.selected:
			b.WriteString(theme.Selected.Render("▸ " + line))
		case cert.Kind == certificate.KindCompletion:
			b.WriteString(theme.Correct.Render("  " + line))
		default:
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (c *CertificatesScreen) renderDetail() string {
	cert := c.certs[c.selected]

	var lines []string
	if cert.Kind == certificate.KindCompletion {
		lines = append(lines, theme.Title.Render("Certificate of Completion"))
	} else {
		lines = append(lines, theme.Title.Render(fmt.Sprintf("Progress Award (%d%%)", cert.Percent)))
	}
	lines = append(lines,
		theme.Subtitle.Render(cert.Title),
		theme.Body.Render("Awarded to "+c.prof.DisplayName+" for Week "+fmt.Sprint(cert.Week)),
	)
	if cert.DateLabel != "" {
		lines = append(lines, theme.Subtitle.Render(cert.DateLabel))
	}
	lines = append(lines, "")
	for _, item := range cert.Checklist {
		mark := " "
		if item.Complete {
			mark = "x"
		}
		lines = append(lines, theme.Body.Render(fmt.Sprintf("[%s] %s  %s", mark, item.Day, item.Topic)))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

// KeyHints lists the certificate screen key bindings for the footer.
func (c *CertificatesScreen) KeyHints() []layout.KeyHint {
	if c.expanded {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to list"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Week"},
		{Key: "Enter", Description: "Show"},
		{Key: "Esc", Description: "Back"},
	}
}
