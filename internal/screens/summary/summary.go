package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/game"
	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// SummaryScreen displays the finished session: score, level movement and
// the itemized EXP breakdown.
type SummaryScreen struct {
	result game.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a persisted result.
func New(r game.Result) *SummaryScreen {
	return &SummaryScreen{result: r}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Level Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Level complete!"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%s  Level %d        Score: %d/%d        %d%%",
		grades.DisplayName(r.Grade), r.EffectiveLevel, r.Score, r.Total, r.Percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if r.Ledger.IsNewHighScore {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("New high score! (was %d)", r.Ledger.OldHighScore)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderDirection()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 44)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("EXP earned")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, line := range s.expLines() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SummaryScreen) renderDirection() string {
	r := s.result
	if !r.AppliesProgression {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Practice run, your level stays put")
	}
	switch r.Progress.Direction {
	case progression.Increase:
		if next, ok := grades.Next(r.Grade); ok && r.EffectiveLevel == 100 {
			return theme.LevelUp.Render(
				fmt.Sprintf("Grade complete! Welcome to %s", grades.DisplayName(next)))
		}
		return theme.LevelUp.Render(fmt.Sprintf("Level up! Next stop: level %d", r.Progress.NewLevel))
	case progression.Decrease:
		return theme.LevelDown.Render(
			fmt.Sprintf("Back to level %d for a bit more practice", r.Progress.NewLevel))
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Staying on level %d, you're close!", r.EffectiveLevel))
	}
}

// expLines formats the reward breakdown, skipping zero rows.
func (s *SummaryScreen) expLines() []string {
	r := s.result
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)

	row := func(label string, amount int) string {
		return dim.Render(fmt.Sprintf("%-22s", label)) + val.Render(fmt.Sprintf("%6d", amount))
	}

	lines := []string{row("Answers", r.Reward.Base)}
	if r.Reward.CompletionBonus > 0 {
		lines = append(lines, row("Perfect level", r.Reward.CompletionBonus))
	}
	if r.Reward.FirstDailyBonus > 0 {
		lines = append(lines, row("First play today", r.Reward.FirstDailyBonus))
	}
	if r.Reward.StreakBonus > 0 {
		lines = append(lines, row("Streak", r.Reward.StreakBonus))
	}
	if r.Reward.RepeatPenaltyApplied {
		lines = append(lines, dim.Render("Replayed level, base EXP halved"))
	}

	total := r.Reward.Total
	if r.Boost > 1 {
		boosted := int(float64(total)*r.Boost + 0.5)
		lines = append(lines, row(fmt.Sprintf("Boost x%.1f", r.Boost), boosted-total))
		total = boosted
	}

	lines = append(lines, theme.ExpGain.Render(fmt.Sprintf("%-22s%6d", "Total", total)))
	return lines
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
