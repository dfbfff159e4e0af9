package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentorlabs/mentor/internal/router"
	"github.com/mentorlabs/mentor/internal/screen"
	"github.com/mentorlabs/mentor/internal/ui/components"
	"github.com/mentorlabs/mentor/internal/ui/layout"
	"github.com/mentorlabs/mentor/internal/ui/theme"
)

// Summary holds the totals for one finished practice session.
type Summary struct {
	Questions  int
	Correct    int
	Experience int
	PeakLevel  int
	Duration   time.Duration
}

// Accuracy returns the fraction of questions answered correctly, or 0
// for an empty session.
func (s Summary) Accuracy() float64 {
	if s.Questions == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Questions)
}

// SummaryScreen shows the end-of-session recap.
type SummaryScreen struct {
	summary Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session.
func New(s Summary) *SummaryScreen {
	return &SummaryScreen{summary: s}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "any key", Description: "Back to home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete")

	mins := int(s.summary.Duration.Minutes())
	secs := int(s.summary.Duration.Seconds()) % 60

	rows := []string{
		statRow("Questions", fmt.Sprintf("%d", s.summary.Questions)),
		statRow("Correct", fmt.Sprintf("%d", s.summary.Correct)),
		statRow("Accuracy", fmt.Sprintf("%d%%", int(s.summary.Accuracy()*100))),
		statRow("Experience", fmt.Sprintf("%d xp", s.summary.Experience)),
		statRow("Peak level", fmt.Sprintf("%d", s.summary.PeakLevel)),
		statRow("Time", fmt.Sprintf("%d:%02d", mins, secs)),
	}

	content := heading + "\n\n" + strings.Join(rows, "\n")
	card := components.Card(content, cw)

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func statRow(label, value string) string {
	l := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	v := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	return fmt.Sprintf("%s  %s", l, v)
}
