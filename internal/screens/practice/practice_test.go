package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	prac "github.com/mentorlabs/mentor/internal/practice"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/screen"
	"github.com/mentorlabs/mentor/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendChatEvent(_ context.Context, _ store.ChatEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) OverallAccuracy(_ context.Context) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) AccuracyByLevel(_ context.Context) ([]store.AccuracyRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsageRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPracticeScreen(t *testing.T) (*PracticeScreen, *mockEventRepo, *profile.Store) {
	t.Helper()
	eventRepo := &mockEventRepo{}
	profiles := profile.NewStore(nil, nil)
	p := New(prac.BuiltinBank(), eventRepo, profiles)
	return p, eventRepo, profiles
}

func TestPracticeScreen_Title(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	if p.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", p.Title(), "Practice")
	}
	if !p.HandlesEsc() {
		t.Error("expected practice screen to handle esc itself")
	}
}

func TestPracticeScreen_View_Question(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	view := p.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	p, _, _ := testPracticeScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PracticeScreen)
	if ps.phase != phaseQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)
	if ps.phase != phaseAnswering {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPracticeScreen_QuitConfirm_Yes(t *testing.T) {
	p, _, _ := testPracticeScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestPracticeScreen_AnswerSubmit(t *testing.T) {
	p, eventRepo, profiles := testPracticeScreen(t)
	before := profiles.Current()

	p.input.Model.SetValue(p.engine.Current().Answer)

	var scr screen.Screen = p
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseFeedback {
		t.Error("expected feedback after submit")
	}
	if ps.last == nil || !ps.last.Correct {
		t.Error("expected answer to be graded correct")
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if !eventRepo.answerEvents[0].Correct {
		t.Error("expected recorded answer to be correct")
	}

	after := profiles.Current()
	if after.Motivation <= before.Motivation {
		t.Error("expected correct answer to raise motivation")
	}

	if cmd == nil {
		t.Fatal("expected a stats command after grading")
	}
	msg := cmd()
	stats, ok := msg.(StatsMsg)
	if !ok {
		t.Fatalf("expected StatsMsg, got %T", msg)
	}
	if stats.Experience != 10 {
		t.Errorf("stats experience = %d, want 10", stats.Experience)
	}
}

func TestPracticeScreen_FeedbackDismiss(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	p.input.Model.SetValue("no")
	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after feedback dismiss")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Error("expected feedbackDoneMsg")
	}
}

func TestPracticeScreen_EmptySubmitGradedIncorrect(t *testing.T) {
	p, eventRepo, profiles := testPracticeScreen(t)
	before := profiles.Current()

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseFeedback {
		t.Fatal("expected feedback after empty submit")
	}
	if ps.last == nil || ps.last.Correct {
		t.Error("expected empty answer to be graded incorrect")
	}
	if ps.engine.Streak() != 0 {
		t.Errorf("Streak = %d, want 0", ps.engine.Streak())
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if ev := eventRepo.answerEvents[0]; ev.Correct || ev.TimedOut || ev.GivenAnswer != "" {
		t.Errorf("recorded event = %+v, want incorrect non-timeout with empty answer", ev)
	}

	after := profiles.Current()
	if after.Motivation >= before.Motivation {
		t.Error("expected empty submit to lower motivation")
	}
}

func TestPracticeScreen_StaleTickIgnored(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	before := p.engine.Remaining()

	p.Update(timerTickMsg{serial: p.engine.Serial() + 1})

	if p.engine.Remaining() != before {
		t.Error("expected stale tick to leave the timer untouched")
	}
}

func TestPracticeScreen_ResumeOrphansPausedTickChain(t *testing.T) {
	p, _, _ := testPracticeScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(timerTickMsg{serial: 0, chain: 0})
	ps := scr.(*PracticeScreen)
	before := ps.engine.Remaining()

	// Pause with a tick still in flight, then resume before it lands.
	scr, _ = ps.Update(specialKey(tea.KeyEscape))
	scr, _ = scr.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)

	// The paused chain's tick arrives late. It must not touch the timer,
	// or two chains would decrement it twice per second.
	scr, _ = ps.Update(timerTickMsg{serial: 0, chain: 0})
	ps = scr.(*PracticeScreen)
	if ps.engine.Remaining() != before {
		t.Errorf("Remaining = %d, want %d (orphaned tick accepted)", ps.engine.Remaining(), before)
	}

	// The chain started on resume still drives the countdown.
	scr, _ = ps.Update(timerTickMsg{serial: 0, chain: ps.chain})
	ps = scr.(*PracticeScreen)
	if ps.engine.Remaining() != before-1 {
		t.Errorf("Remaining = %d, want %d (resume chain ignored)", ps.engine.Remaining(), before-1)
	}
}

func TestPracticeScreen_TimerExpiryGradesTimeout(t *testing.T) {
	p, eventRepo, _ := testPracticeScreen(t)

	var scr screen.Screen = p
	for i := 0; i < prac.QuestionSeconds; i++ {
		scr, _ = scr.Update(timerTickMsg{serial: 0})
	}
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseFeedback {
		t.Fatal("expected feedback after timer expiry")
	}
	if ps.last == nil || !ps.last.TimedOut {
		t.Error("expected a timed-out outcome")
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if !eventRepo.answerEvents[0].TimedOut {
		t.Error("expected recorded answer to be marked timed out")
	}
}

func TestPracticeScreen_KeyHintsVaryByPhase(t *testing.T) {
	p, _, _ := testPracticeScreen(t)

	if len(p.KeyHints()) == 0 {
		t.Error("expected key hints while answering")
	}

	p.phase = phaseQuitConfirm
	hints := p.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit confirm hints = %d, want 2", len(hints))
	}
}
