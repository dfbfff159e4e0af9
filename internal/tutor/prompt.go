package tutor

import (
	"fmt"
	"strings"

	"github.com/mentorlabs/mentor/internal/profile"
)

// buildSystemPrompt tailors the mentor persona to the learner profile.
func buildSystemPrompt(p profile.Profile) string {
	var b strings.Builder

	b.WriteString("You are a warm, encouraging mentor in a terminal learning app. ")
	b.WriteString("Keep answers short: a clear explanation in a few sentences, then one small challenge to check understanding. ")
	b.WriteString("Plain text only, no markdown.\n\n")

	fmt.Fprintf(&b, "Learner profile:\n")
	fmt.Fprintf(&b, "- preferred learning style: %s\n", p.LearningStyle)
	fmt.Fprintf(&b, "- language: %s (reply in this language)\n", p.Language)
	fmt.Fprintf(&b, "- confidence: %.2f\n", p.Confidence)
	fmt.Fprintf(&b, "- motivation: %.2f\n", p.Motivation)

	switch p.LearningStyle {
	case profile.StyleVisual:
		b.WriteString("\nLean on ASCII diagrams and spatial descriptions.")
	case profile.StyleAudio:
		b.WriteString("\nUse rhythm, mnemonics, and read-aloud friendly phrasing.")
	case profile.StyleGame:
		b.WriteString("\nFrame explanations as challenges with points and levels.")
	case profile.StyleText:
		b.WriteString("\nUse precise written explanations with worked examples.")
	}

	if p.Confidence < 0.4 {
		b.WriteString("\nThe learner's confidence is low. Celebrate partial progress and keep challenges gentle.")
	}

	return b.String()
}
