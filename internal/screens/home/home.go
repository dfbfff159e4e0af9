package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentorlabs/mentor/internal/llm"
	prac "github.com/mentorlabs/mentor/internal/practice"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/router"
	"github.com/mentorlabs/mentor/internal/screen"
	practicescreen "github.com/mentorlabs/mentor/internal/screens/practice"
	profilescreen "github.com/mentorlabs/mentor/internal/screens/profile"
	tutorscreen "github.com/mentorlabs/mentor/internal/screens/tutor"
	"github.com/mentorlabs/mentor/internal/store"
	"github.com/mentorlabs/mentor/internal/tutor"
	"github.com/mentorlabs/mentor/internal/ui/components"
	"github.com/mentorlabs/mentor/internal/ui/theme"

	"github.com/google/uuid"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	menu       components.Menu
	profiles   *profile.Store
	sessions   int
	accuracy   float64
	hasHistory bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with its menu and lifetime stats.
func New(bank *prac.Bank, events store.EventRepo, profiles *profile.Store, provider llm.Provider) *HomeScreen {
	h := &HomeScreen{profiles: profiles}

	if events != nil {
		ctx := context.Background()
		if summaries, err := events.QuerySessionSummaries(ctx, store.QueryOpts{}); err == nil {
			h.sessions = len(summaries)
		}
		if acc, err := events.OverallAccuracy(ctx); err == nil && h.sessions > 0 {
			h.accuracy = acc
			h.hasHistory = true
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practicescreen.New(bank, events, profiles),
				}
			}
		}},
		{Label: "TUTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				svc := tutor.NewService(provider, events, profiles, uuid.New().String())
				return router.PushScreenMsg{Screen: tutorscreen.New(svc)}
			}
		}},
		{Label: "PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(profiles)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("M E N T O R")
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Adaptive practice with a patient tutor")
	sections = append(sections, title+"\n"+tagline)

	sections = append(sections, h.renderStats(cw))

	sections = append(sections, components.Card(h.menu.View(), cw))

	content := strings.Join(sections, "\n\n")
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(content))
}

// renderStats shows lifetime totals, or a nudge when nothing has been
// played yet.
func (h *HomeScreen) renderStats(cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	if !h.hasHistory {
		return dim.Render("No sessions yet. Jump into practice!")
	}

	style := h.profiles.Current().LearningStyle
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		dim.Render("Sessions:"), val.Render(fmt.Sprintf("%d", h.sessions)),
		dim.Render("Accuracy:"), val.Render(fmt.Sprintf("%d%%", int(h.accuracy*100))),
		dim.Render("Style:"), val.Render(style),
	)
}
