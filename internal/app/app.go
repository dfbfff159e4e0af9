package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentorlabs/mentor/internal/llm"
	prac "github.com/mentorlabs/mentor/internal/practice"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/router"
	"github.com/mentorlabs/mentor/internal/screen"
	"github.com/mentorlabs/mentor/internal/screens/home"
	practicescreen "github.com/mentorlabs/mentor/internal/screens/practice"
	tutorscreen "github.com/mentorlabs/mentor/internal/screens/tutor"
	"github.com/mentorlabs/mentor/internal/store"
	"github.com/mentorlabs/mentor/internal/tutor"
	"github.com/mentorlabs/mentor/internal/ui/layout"

	"github.com/google/uuid"
)

// Options carries the dependencies the screens need. Provider may be nil
// for offline mode.
type Options struct {
	Bank     *prac.Bank
	Events   store.EventRepo
	Profiles *profile.Store
	Provider llm.Provider

	// Start optionally names a screen to open on top of home:
	// "practice" or "tutor".
	Start string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	// Running totals from the active practice session, shown in the
	// header. They persist after the session so the learner keeps
	// seeing what they earned.
	experience int
	level      int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Bank, opts.Events, opts.Profiles, opts.Provider)
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
		level:  prac.MinLevel,
	}
}

func (m AppModel) Init() tea.Cmd {
	switch m.opts.Start {
	case "practice":
		opts := m.opts
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practicescreen.New(opts.Bank, opts.Events, opts.Profiles),
			}
		}
	case "tutor":
		opts := m.opts
		return func() tea.Msg {
			svc := tutor.NewService(opts.Provider, opts.Events, opts.Profiles, uuid.New().String())
			return router.PushScreenMsg{Screen: tutorscreen.New(svc)}
		}
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case practicescreen.StatsMsg:
		m.experience = msg.Experience
		m.level = msg.Level
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Screens with their own esc handling get it first.
				if intercepts(m.router.Active()) {
					break
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escHandler is implemented by screens that want esc delivered to them
// instead of triggering navigation.
type escHandler interface {
	HandlesEsc() bool
}

func intercepts(s screen.Screen) bool {
	if h, ok := s.(escHandler); ok {
		return h.HandlesEsc()
	}
	return false
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

	header := layout.RenderHeader(title, m.experience, m.level, m.width)

	footerHints := m.footerHints(active)
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

// footerHints asks the active screen for hints, falling back to
// depth-based defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kh, ok := active.(screen.KeyHintProvider); ok {
		if hints := kh.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
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
