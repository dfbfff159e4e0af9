package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	prof "github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/screen"
	"github.com/mentorlabs/mentor/internal/ui/components"
	"github.com/mentorlabs/mentor/internal/ui/layout"
	"github.com/mentorlabs/mentor/internal/ui/theme"
)

// languages lists the locale tags the picker cycles through.
var languages = []string{"en", "es", "fr", "de", "hi"}

// Editable rows, top to bottom.
const (
	rowStyle = iota
	rowLanguage
	rowCount
)

// ProfileScreen shows the learner traits and lets the learner change
// style and language.
type ProfileScreen struct {
	profiles *prof.Store
	row      int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(profiles *prof.Store) *ProfileScreen {
	return &ProfileScreen{profiles: profiles}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.row > 0 {
			p.row--
		}
	case "down", "j":
		if p.row < rowCount-1 {
			p.row++
		}
	case "left", "h":
		p.cycle(-1)
	case "right", "l":
		p.cycle(1)
	}

	return p, nil
}

// cycle steps the selected row's value forward or backward through its
// option list.
func (p *ProfileScreen) cycle(dir int) {
	current := p.profiles.Current()

	switch p.row {
	case rowStyle:
		idx := indexOf(prof.Styles, current.LearningStyle)
		idx = (idx + dir + len(prof.Styles)) % len(prof.Styles)
		p.profiles.SetStyle(prof.Styles[idx])
	case rowLanguage:
		idx := indexOf(languages, current.Language)
		idx = (idx + dir + len(languages)) % len(languages)
		p.profiles.SetLanguage(languages[idx])
	}
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func (p *ProfileScreen) View(width, height int) string {
	current := p.profiles.Current()
	cw := components.ContentWidth(width)
	barWidth := cw - 8
	if barWidth < 20 {
		barWidth = 20
	}

	var b strings.Builder

	b.WriteString(p.renderPickerRow("Learning style", current.LearningStyle, rowStyle))
	b.WriteString("\n")
	b.WriteString(p.renderPickerRow("Language", current.Language, rowLanguage))
	b.WriteString("\n\n")

	gauges := []struct {
		label string
		value float64
	}{
		{"Confidence", current.Confidence},
		{"Motivation", current.Motivation},
		{"Pace      ", current.Pace},
		{"Focus     ", current.Focus},
	}
	for _, g := range gauges {
		bar := components.NewProgressBar(g.label, g.value, true, barWidth)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	card := components.Card(b.String(), cw)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (p *ProfileScreen) renderPickerRow(label, value string, row int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	line := fmt.Sprintf("%s  %s", labelStyle.Render(label), valueStyle.Render("< "+value+" >"))
	if p.row == row {
		return lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ") + line
	}
	return "  " + line
}
