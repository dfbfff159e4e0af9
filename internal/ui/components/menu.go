package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentorlabs/mentor/internal/ui/theme"
)

// MenuItem is one entry in a navigation menu. Disabled items are shown
// but skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by arrow or vi keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.nextEnabled(0, 1)
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// nextEnabled scans from `from` in direction `step` for an enabled
// item. It returns `from` clamped into range when none is found, which
// keeps the cursor parked at an edge.
func (m Menu) nextEnabled(from, step int) int {
	for i := from; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return min(max(from-step, 0), len(m.Items)-1)
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.nextEnabled(m.Selected-1, -1)
	case "down", "j":
		m.Selected = m.nextEnabled(m.Selected+1, 1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	plain := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(cursor.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(dim.Render("    " + item.Label))
		default:
			b.WriteString(plain.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
