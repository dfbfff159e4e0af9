package profile

import "testing"

func TestDefaultProfile(t *testing.T) {
	p := Default()

	if p.LearningStyle != StyleMixed {
		t.Errorf("LearningStyle = %q, want %q", p.LearningStyle, StyleMixed)
	}
	if p.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", p.Confidence)
	}
	if p.Motivation != 0.6 {
		t.Errorf("Motivation = %v, want 0.6", p.Motivation)
	}
	if p.Pace != 0.5 {
		t.Errorf("Pace = %v, want 0.5", p.Pace)
	}
	if p.Focus != 0.6 {
		t.Errorf("Focus = %v, want 0.6", p.Focus)
	}
	if p.Language != "en" {
		t.Errorf("Language = %q, want %q", p.Language, "en")
	}
}

func TestApplyAddsDeltas(t *testing.T) {
	p := Default().Apply(Signal{Motivation: 0.05, Confidence: 0.04})

	if p.Motivation != 0.65 {
		t.Errorf("Motivation = %v, want 0.65", p.Motivation)
	}
	if p.Confidence != 0.54 {
		t.Errorf("Confidence = %v, want 0.54", p.Confidence)
	}
	// Traits without a delta stay put.
	if p.Pace != 0.5 {
		t.Errorf("Pace = %v, want 0.5", p.Pace)
	}
	if p.Focus != 0.6 {
		t.Errorf("Focus = %v, want 0.6", p.Focus)
	}
}

func TestApplyClampsUpper(t *testing.T) {
	p := Default()
	p.Confidence = 0.98

	p = p.Apply(Signal{Confidence: 0.5})
	if p.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0 (clamped)", p.Confidence)
	}

	// A second oversized delta saturates, never exceeds.
	p = p.Apply(Signal{Confidence: 0.5})
	if p.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0 (still clamped)", p.Confidence)
	}
}

func TestApplyClampsLower(t *testing.T) {
	p := Default()
	p.Motivation = 0.02

	p = p.Apply(Signal{Motivation: -0.1})
	if p.Motivation != 0 {
		t.Errorf("Motivation = %v, want 0 (clamped)", p.Motivation)
	}
}

func TestApplyNeverLeavesRange(t *testing.T) {
	p := Default()
	signals := []Signal{
		{Confidence: 0.04, Motivation: 0.05},
		{Confidence: -0.02, Motivation: -0.01},
		{Focus: 0.03, Motivation: 0.02},
		{Confidence: 2.5},
		{Pace: -3},
		{Confidence: -2.5, Motivation: 1.1, Pace: 4, Focus: -0.9},
	}

	for _, sig := range signals {
		p = p.Apply(sig)
		for name, v := range map[string]float64{
			"Confidence": p.Confidence,
			"Motivation": p.Motivation,
			"Pace":       p.Pace,
			"Focus":      p.Focus,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("%s = %v out of [0,1] after signal %+v", name, v, sig)
			}
		}
	}
}

func TestApplyZeroSignalIsNoOp(t *testing.T) {
	p := Default()
	q := p.Apply(Signal{})
	if p != q {
		t.Errorf("zero signal changed profile: %+v -> %+v", p, q)
	}
}

func TestApplyDoesNotTouchStyleOrLanguage(t *testing.T) {
	p := Default()
	p.LearningStyle = StyleGame
	p.Language = "de"

	q := p.Apply(Signal{Confidence: 0.3, Focus: -0.2})
	if q.LearningStyle != StyleGame {
		t.Errorf("LearningStyle = %q, want %q", q.LearningStyle, StyleGame)
	}
	if q.Language != "de" {
		t.Errorf("Language = %q, want %q", q.Language, "de")
	}
}

func TestSignalIsZero(t *testing.T) {
	if !(Signal{}).IsZero() {
		t.Error("empty signal should be zero")
	}
	if (Signal{Pace: 0.01}).IsZero() {
		t.Error("non-empty signal should not be zero")
	}
}
