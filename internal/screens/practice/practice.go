package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	prac "github.com/mentorlabs/mentor/internal/practice"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/router"
	"github.com/mentorlabs/mentor/internal/screen"
	"github.com/mentorlabs/mentor/internal/screens/summary"
	"github.com/mentorlabs/mentor/internal/store"
	"github.com/mentorlabs/mentor/internal/ui/components"
	"github.com/mentorlabs/mentor/internal/ui/layout"

	"github.com/google/uuid"
)

// phase tracks which overlay, if any, is showing.
type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseQuitConfirm
)

// PracticeScreen runs one timed practice session.
type PracticeScreen struct {
	engine   *prac.Engine
	events   store.EventRepo
	profiles *profile.Store

	sessionID     string
	startTime     time.Time
	questionStart time.Time

	input components.TextInput
	phase phase
	last  *prac.Outcome

	// chain identifies the live tick chain. Pausing bumps it so the
	// in-flight tick is orphaned and resume starts exactly one chain.
	chain int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice session over the given question bank.
func New(bank *prac.Bank, events store.EventRepo, profiles *profile.Store) *PracticeScreen {
	return &PracticeScreen{
		engine:    prac.NewEngine(bank),
		events:    events,
		profiles:  profiles,
		sessionID: uuid.New().String(),
		input:     components.NewTextInput("Type your answer...", 32),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	p.startTime = time.Now()
	p.questionStart = p.startTime
	return tea.Batch(
		p.recordStart(),
		tickCmd(p.engine.Serial(), p.chain),
		p.input.Init(),
		p.statsCmd(),
	)
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

// HandlesEsc keeps esc delivered to the screen so it can show the
// quit confirmation instead of popping mid-session.
func (p *PracticeScreen) HandlesEsc() bool {
	return true
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return p.handleTimerTick(msg)

	case feedbackDoneMsg:
		return p.handleFeedbackDone()

	case sessionEndMsg:
		return p.handleSessionEnd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseAnswering {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// Ticks scheduled for an already-graded question, or under an
	// orphaned chain, are stale.
	if p.phase != phaseAnswering || msg.serial != p.engine.Serial() || msg.chain != p.chain {
		return p, nil
	}

	if p.engine.Tick() {
		out := p.engine.Timeout()
		return p, p.applyOutcome(out)
	}

	return p, tickCmd(msg.serial, msg.chain)
}

func (p *PracticeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	p.phase = phaseAnswering
	p.last = nil
	p.questionStart = time.Now()
	p.input = components.NewTextInput("Type your answer...", 32)
	return p, tea.Batch(
		tickCmd(p.engine.Serial(), p.chain),
		p.input.Init(),
	)
}

func (p *PracticeScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	duration := time.Since(p.startTime)

	_ = p.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:        p.sessionID,
		Action:           "end",
		QuestionsServed:  p.engine.Served(),
		CorrectAnswers:   p.engine.CorrectCount(),
		ExperienceEarned: p.engine.Experience(),
		PeakLevel:        p.engine.PeakLevel(),
		DurationSecs:     int(duration.Seconds()),
	})

	sum := summary.Summary{
		Questions:  p.engine.Served(),
		Correct:    p.engine.CorrectCount(),
		Experience: p.engine.Experience(),
		PeakLevel:  p.engine.PeakLevel(),
		Duration:   duration,
	}

	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			p.phase = phaseAnswering
			return p, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			p.phase = phaseAnswering
			// Resume the countdown where it left off. The chain was
			// bumped on pause, so the tick that was already in flight
			// cannot double up with this one.
			return p, tickCmd(p.engine.Serial(), p.chain)
		}
		return p, nil

	case phaseFeedback:
		return p, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		p.phase = phaseQuitConfirm
		p.chain++
		return p, nil
	case "enter":
		return p.submitAnswer()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submitAnswer grades the typed answer. An empty submit is graded like
// any other wrong answer.
func (p *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	out := p.engine.Submit(p.input.Value())
	return p, p.applyOutcome(out)
}

// applyOutcome records the graded answer, nudges the profile, and shows
// feedback.
func (p *PracticeScreen) applyOutcome(out prac.Outcome) tea.Cmd {
	ctx := context.Background()
	timeMs := int(time.Since(p.questionStart).Milliseconds())

	var given string
	if !out.TimedOut {
		given = p.input.Value()
	}

	_ = p.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:      p.sessionID,
		Level:          out.Question.Level,
		Prompt:         out.Question.Prompt,
		ExpectedAnswer: out.Question.Answer,
		GivenAnswer:    given,
		Correct:        out.Correct,
		TimedOut:       out.TimedOut,
		TimeMs:         timeMs,
		Streak:         p.engine.Streak(),
		Experience:     p.engine.Experience(),
	})

	p.profiles.Apply(out.Signal)

	p.last = &out
	p.phase = phaseFeedback

	return p.statsCmd()
}

func (p *PracticeScreen) recordStart() tea.Cmd {
	return func() tea.Msg {
		_ = p.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: p.sessionID,
			Action:    "start",
		})
		return nil
	}
}

func (p *PracticeScreen) statsCmd() tea.Cmd {
	experience := p.engine.Experience()
	level := p.engine.Level()
	return func() tea.Msg {
		return StatsMsg{Experience: experience, Level: level}
	}
}

// tickCmd returns a 1-second tick command bound to a question serial and
// a tick chain.
func tickCmd(serial, chain int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{serial: serial, chain: chain}
	})
}
