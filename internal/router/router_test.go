package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mentorlabs/mentor/internal/screen"
)

type fakeScreen struct {
	name    string
	inited  bool
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func newTestRouter() (*Router, *fakeScreen) {
	home := &fakeScreen{name: "home"}
	return New(home), home
}

func TestRouterPushAndPop(t *testing.T) {
	r, _ := newTestRouter()

	practice := &fakeScreen{name: "practice"}
	r.Push(practice)

	if r.Depth() != 2 || r.Active().Title() != "practice" {
		t.Fatalf("after push: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
	if !practice.inited {
		t.Error("pushed screen should have been initialized")
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Errorf("after pop: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestRouterRootNeverPops(t *testing.T) {
	r, home := newTestRouter()

	r.Pop()

	if r.Depth() != 1 || r.Active() != screen.Screen(home) {
		t.Errorf("root screen must survive pop: depth=%d", r.Depth())
	}
}

func TestRouterReplaceSwapsInPlace(t *testing.T) {
	r, _ := newTestRouter()
	r.Push(&fakeScreen{name: "practice"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2 (replace must not grow the stack)", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("Active = %q, want summary", r.Active().Title())
	}
	if !summary.inited {
		t.Error("replacement screen should have been initialized")
	}

	// Popping lands back on home, not on the replaced screen.
	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("after pop: Active = %q, want home", r.Active().Title())
	}
}

func TestRouterNavigationMessages(t *testing.T) {
	r, _ := newTestRouter()

	practice := &fakeScreen{name: "practice"}
	r.Update(PushScreenMsg{Screen: practice})
	if r.Depth() != 2 || !practice.inited {
		t.Fatalf("PushScreenMsg: depth=%d inited=%v", r.Depth(), practice.inited)
	}

	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})
	if r.Depth() != 2 || r.Active().Title() != "summary" {
		t.Fatalf("ReplaceScreenMsg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("PopScreenMsg: depth=%d, want 1", r.Depth())
	}
}

func TestRouterForwardsOtherMessagesToActiveScreen(t *testing.T) {
	r, home := newTestRouter()
	practice := &fakeScreen{name: "practice"}
	r.Push(practice)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if practice.updates != 1 {
		t.Errorf("active screen updates = %d, want 1", practice.updates)
	}
	if home.updates != 0 {
		t.Errorf("buried screen updates = %d, want 0", home.updates)
	}
}
