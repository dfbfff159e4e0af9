package profile

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	prof "github.com/mentorlabs/mentor/internal/profile"
)

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestProfileScreen_CycleStyle(t *testing.T) {
	profiles := prof.NewStore(nil, nil)
	p := New(profiles)

	// Default style is mixed, the last entry; right wraps to the first.
	p.Update(keyPress(tea.KeyRight))
	if got := profiles.Current().LearningStyle; got != prof.StyleVisual {
		t.Errorf("style after right = %q, want %q", got, prof.StyleVisual)
	}

	p.Update(keyPress(tea.KeyLeft))
	if got := profiles.Current().LearningStyle; got != prof.StyleMixed {
		t.Errorf("style after left = %q, want %q", got, prof.StyleMixed)
	}
}

func TestProfileScreen_CycleLanguage(t *testing.T) {
	profiles := prof.NewStore(nil, nil)
	p := New(profiles)

	p.Update(keyPress(tea.KeyDown))
	p.Update(keyPress(tea.KeyRight))
	if got := profiles.Current().Language; got != "es" {
		t.Errorf("language after right = %q, want %q", got, "es")
	}
}

func TestProfileScreen_ViewShowsTraits(t *testing.T) {
	profiles := prof.NewStore(nil, nil)
	p := New(profiles)

	view := p.View(100, 30)
	for _, want := range []string{"Confidence", "Motivation", "Pace", "Focus", "mixed"} {
		if !strings.Contains(view, want) {
			t.Errorf("profile view missing %q", want)
		}
	}
}
