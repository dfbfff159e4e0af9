package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mentorlabs/mentor/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether views should drop to their narrow
// variants.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether views should drop to their short
// variants.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is the height left for screen content between the
// header and footer bars.
func ContentHeight(totalHeight int) int {
	return max(0, totalHeight-HeaderHeight-FooterHeight)
}

// bar is the bordered box both the header and footer live in.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: app name on the left, the screen
// title centered, session experience and level on the right.
func RenderHeader(title string, experience, level int, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Mentor")

	screen := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	stats := accent.Render(fmt.Sprintf("✦ %d xp", experience)) +
		dim.Render("   ") +
		accent.Render(fmt.Sprintf("Lv %d", level))

	// The border eats two columns each side.
	return bar(spread(name, screen, stats, width-4), width)
}

// spread lays three segments across innerWidth: left-aligned, centered,
// right-aligned. Gaps never collapse below one space, so on a cramped
// terminal the right side overflows rather than merging segments.
func spread(left, center, right string, innerWidth int) string {
	innerWidth = max(0, innerWidth)

	leftGap := max(1, (innerWidth-lipgloss.Width(center))/2-lipgloss.Width(left))
	used := lipgloss.Width(left) + leftGap + lipgloss.Width(center) + lipgloss.Width(right)
	rightGap := max(1, innerWidth-used)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderFooter draws the bottom bar listing the active key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}

	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content, and footer, stretching the
// content region to fill the space between the bars.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
