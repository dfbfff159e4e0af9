package profile

// Learning style preference tokens. SetStyle accepts any string; these are
// the five the UI offers.
const (
	StyleVisual = "visual"
	StyleAudio  = "audio"
	StyleGame   = "game"
	StyleText   = "text"
	StyleMixed  = "mixed"
)

// Styles lists the recognized learning styles in display order.
var Styles = []string{StyleVisual, StyleAudio, StyleGame, StyleText, StyleMixed}

// Profile holds the learner's bounded traits. The four numeric traits are
// always within [0, 1].
type Profile struct {
	LearningStyle string
	Confidence    float64
	Motivation    float64
	Pace          float64
	Focus         float64
	Language      string
}

// Default returns the profile used before any learner data exists and as
// the recovery value when persisted state is absent or unreadable.
func Default() Profile {
	return Profile{
		LearningStyle: StyleMixed,
		Confidence:    0.5,
		Motivation:    0.6,
		Pace:          0.5,
		Focus:         0.6,
		Language:      "en",
	}
}

// Signal is a set of signed trait deltas. The zero value is a no-op;
// a zero field means "leave that trait alone".
type Signal struct {
	Confidence float64
	Motivation float64
	Pace       float64
	Focus      float64
}

// IsZero reports whether the signal carries no deltas.
func (s Signal) IsZero() bool {
	return s == Signal{}
}

// Apply returns a copy of p with the signal's deltas added and every
// numeric trait clamped to [0, 1]. LearningStyle and Language are never
// touched by signals.
func (p Profile) Apply(s Signal) Profile {
	p.Confidence = clamp01(p.Confidence + s.Confidence)
	p.Motivation = clamp01(p.Motivation + s.Motivation)
	p.Pace = clamp01(p.Pace + s.Pace)
	p.Focus = clamp01(p.Focus + s.Focus)
	return p
}

// clamp01 saturates v at the [0, 1] bounds.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
