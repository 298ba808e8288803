package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.showingQuit {
		return renderQuitConfirm(width)
	}
	if p.persistErr != "" {
		return renderPersistError(width, p.persistErr)
	}
	return p.renderQuestion(width)
}

func (p *PlayScreen) renderQuestion(width int) string {
	var b strings.Builder

	answered := len(p.session.Answers())
	total := p.session.Total()
	shown := answered + 1
	if p.submitting || shown > total {
		shown = total
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Level %d  %s", p.session.Level(), grades.DisplayName(p.session.Grade())))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			shown, total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			p.session.Score(),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(answered)/float64(total), false, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.choice.View()))

	if p.submitting {
		b.WriteString("\n")
		verdict := theme.Correct.Render("Correct!")
		if !p.choice.IsCorrect() {
			verdict = theme.Incorrect.Render("Not quite") +
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("  the answer is %d", p.choice.Answer))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this level?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This run will not be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderPersistError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf(
			"\n\n\n  Could not save your results: %s\n\n  Your score is safe. Press R to retry.", errMsg))
}
