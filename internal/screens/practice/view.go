package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	prac "github.com/mentorlabs/mentor/internal/practice"
	"github.com/mentorlabs/mentor/internal/ui/components"
	"github.com/mentorlabs/mentor/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch p.phase {
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseFeedback:
		return p.renderFeedback(width, height)
	}
	return p.renderQuestionView(width)
}

// renderQuestionView renders the active question with the countdown bar.
func (p *PracticeScreen) renderQuestionView(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Level %d", p.engine.Level()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  streak %d  %s",
			p.engine.Served()+1,
			p.engine.Streak(),
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("0:%02d", p.engine.Remaining())),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Countdown bar drains as the timer runs.
	timerBar := components.NewProgressBar("", float64(p.engine.Remaining())/float64(prac.QuestionSeconds), false, components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, timerBar.View()))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(p.engine.Current().Prompt))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the post-answer overlay. A level up swaps in the
// celebration frame.
func (p *PracticeScreen) renderFeedback(width, height int) string {
	out := p.last
	if out == nil {
		return ""
	}

	if out.LeveledUp {
		content := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("Level up!") + "\n\n" +
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(fmt.Sprintf("Welcome to level %d", p.engine.Level())) + "\n" +
			lipgloss.NewStyle().
				Foreground(theme.Success).
				Render(fmt.Sprintf("+%d xp", out.Awarded)) + "\n\n" +
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("Press any key to continue...")
		return components.CelebrationFrame(content, width, height)
	}

	var b strings.Builder
	b.WriteString("\n\n")

	center := func(s string) string {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
	}

	switch {
	case out.Correct:
		b.WriteString(center(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct! +%d xp", out.Awarded))))
		if p.engine.Streak() > 1 {
			b.WriteString("\n")
			b.WriteString(center(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d in a row", p.engine.Streak()))))
		}
	case out.TimedOut:
		b.WriteString(center(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Time's up!")))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("The answer was: %s", out.Question.Answer))))
	default:
		b.WriteString(center(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite")))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("The answer was: %s", out.Question.Answer))))
	}

	if out.LeveledDown {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Dropping back to level %d", p.engine.Level()))))
	}

	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press any key to continue...")))

	return b.String()
}

// renderQuitConfirm renders the end-session dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := func(s string) string {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
	}

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?")))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your progress will be saved.")))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Success).
		Render("[Y] Yes, end session")))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going")))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
