// Package theme is the Mentor palette: warm amber on near-black, with
// violet reserved for experience and level readouts.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#A78BFA") // Violet
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#FAFAF9") // Warm White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgCard    = lipgloss.Color("#1C1917") // Charcoal
	Border    = lipgloss.Color("#292524") // Dark Stone
)
