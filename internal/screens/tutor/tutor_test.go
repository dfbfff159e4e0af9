package tutor

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/screen"
	tut "github.com/mentorlabs/mentor/internal/tutor"
)

func testTutorScreen() *TutorScreen {
	profiles := profile.NewStore(nil, nil)
	svc := tut.NewService(nil, nil, profiles, "test-session")
	return New(svc)
}

func TestTutorScreen_OpensWithGreeting(t *testing.T) {
	ts := testTutorScreen()
	if len(ts.transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(ts.transcript))
	}
	if ts.transcript[0].Content != tut.Greeting {
		t.Errorf("opening message = %q, want greeting", ts.transcript[0].Content)
	}

	view := ts.View(80, 24)
	if !strings.Contains(view, "curious about") {
		t.Error("expected greeting in view")
	}
}

func TestTutorScreen_SendAppendsAndWaits(t *testing.T) {
	ts := testTutorScreen()
	ts.input.Model.SetValue("what is a derivative?")

	var scr screen.Screen = ts
	scr, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ts = scr.(*TutorScreen)

	if !ts.waiting {
		t.Error("expected screen to wait for a reply")
	}
	if len(ts.transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(ts.transcript))
	}
	if ts.transcript[1].Role != tut.RoleLearner {
		t.Error("expected learner message appended")
	}
	if cmd == nil {
		t.Error("expected a poll command")
	}
}

func TestTutorScreen_PollDeliversOfflineReply(t *testing.T) {
	ts := testTutorScreen()
	ts.input.Model.SetValue("teach me fractions")

	var scr screen.Screen = ts
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ts = scr.(*TutorScreen)

	deadline := time.Now().Add(2 * time.Second)
	for ts.waiting && time.Now().Before(deadline) {
		scr, _ = ts.Update(pollMsg{})
		ts = scr.(*TutorScreen)
		time.Sleep(5 * time.Millisecond)
	}

	if ts.waiting {
		t.Fatal("reply never arrived")
	}
	if got := ts.transcript[len(ts.transcript)-1]; got.Role != tut.RoleMentor || !got.Offline {
		t.Errorf("expected offline mentor reply, got %+v", got)
	}
}

func TestTutorScreen_IgnoresBlankInput(t *testing.T) {
	ts := testTutorScreen()
	ts.input.Model.SetValue("   ")

	var scr screen.Screen = ts
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ts = scr.(*TutorScreen)

	if ts.waiting || len(ts.transcript) != 1 {
		t.Error("expected blank input to be ignored")
	}
}
