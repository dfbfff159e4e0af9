package tutor

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentorlabs/mentor/internal/screen"
	tut "github.com/mentorlabs/mentor/internal/tutor"
	"github.com/mentorlabs/mentor/internal/ui/components"
	"github.com/mentorlabs/mentor/internal/ui/layout"
	"github.com/mentorlabs/mentor/internal/ui/theme"
)

// pollInterval is how often the screen checks for a finished reply.
const pollInterval = 200 * time.Millisecond

// pollMsg drives the reply poll loop while a reply is in flight.
type pollMsg struct{}

// pollCmd schedules the next reply poll.
func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

// TutorScreen is the chat conversation with the mentor.
type TutorScreen struct {
	svc        *tut.Service
	transcript []tut.Message
	input      components.TextInput
	waiting    bool
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates a chat screen. The transcript opens with the mentor's
// greeting.
func New(svc *tut.Service) *TutorScreen {
	return &TutorScreen{
		svc: svc,
		transcript: []tut.Message{
			{Role: tut.RoleMentor, Content: tut.Greeting},
		},
		input: components.NewTextInput("Ask me anything...", 0),
	}
}

func (t *TutorScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TutorScreen) Title() string {
	return "Tutor"
}

func (t *TutorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if !t.waiting {
			return t, nil
		}
		if reply, ok := t.svc.ConsumeReply(); ok {
			t.transcript = append(t.transcript, *reply)
			t.waiting = false
			return t, nil
		}
		return t, pollCmd()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return t.send()
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// send dispatches the typed message and starts polling for the reply.
func (t *TutorScreen) send() (screen.Screen, tea.Cmd) {
	if t.waiting {
		return t, nil
	}

	text := strings.TrimSpace(t.input.Value())
	if !t.svc.Send(context.Background(), text) {
		return t, nil
	}

	t.transcript = append(t.transcript, tut.Message{Role: tut.RoleLearner, Content: text})
	t.waiting = true
	t.input = components.NewTextInput("Ask me anything...", 0)

	return t, tea.Batch(t.input.Init(), pollCmd())
}

func (t *TutorScreen) View(width, height int) string {
	var b strings.Builder

	wrap := lipgloss.NewStyle().Width(min(width-8, 72))

	var lines []string
	for _, m := range t.transcript {
		var label string
		if m.Role == tut.RoleMentor {
			label = lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("Mentor")
		} else {
			label = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("You")
		}
		body := wrap.Foreground(theme.Text).Render(m.Content)
		lines = append(lines, label+"\n"+body, "")
	}

	if t.waiting {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Mentor is thinking..."), "")
	}

	transcript := strings.Join(lines, "\n")

	// Keep the newest part of the conversation visible above the input.
	transcriptHeight := height - 3
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	rows := strings.Split(transcript, "\n")
	if len(rows) > transcriptHeight {
		rows = rows[len(rows)-transcriptHeight:]
	}

	b.WriteString("  " + strings.Join(rows, "\n  "))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")
	b.WriteString("  > " + t.input.View())

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
