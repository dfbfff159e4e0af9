package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func testSummary() Summary {
	return Summary{
		Questions:  12,
		Correct:    9,
		Experience: 146,
		PeakLevel:  3,
		Duration:   4*time.Minute + 30*time.Second,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"12", "146 xp", "75%", "4:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_AnyKeyPops(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on key press (pop)")
	}
}

func TestSummaryAccuracy(t *testing.T) {
	if got := (Summary{}).Accuracy(); got != 0 {
		t.Errorf("empty session accuracy = %v, want 0", got)
	}
	if got := (Summary{Questions: 4, Correct: 3}).Accuracy(); got != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}
}
