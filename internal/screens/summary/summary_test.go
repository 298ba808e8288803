package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/economy"
	"github.com/abhisek/mathquest/internal/game"
	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/progression"
)

func testResult() game.Result {
	return game.Result{
		SessionID:          "s-1",
		Grade:              grades.P2,
		Level:              45,
		EffectiveLevel:     45,
		Score:              10,
		Total:              10,
		Percentage:         100,
		Ledger:             progression.ScoreDiff(6, 10),
		Progress:           progression.Evaluate(100, 45),
		AppliesProgression: true,
		Reward: economy.Calculate(economy.Input{
			Score: 10, TotalQuestions: 10, Percentage: 100, Level: 45,
			FirstToday: true, StreakDays: 3,
		}),
		Boost:      1,
		FinishedAt: time.Now(),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Level Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Level Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_ExpLines(t *testing.T) {
	s := New(testResult())
	lines := s.expLines()
	// Base + perfect + first daily + streak + total.
	if len(lines) != 5 {
		t.Errorf("expLines length = %d, want 5", len(lines))
	}
}

func TestSummaryScreen_ExpLinesWithBoost(t *testing.T) {
	r := testResult()
	r.Boost = 2
	s := New(r)
	lines := s.expLines()
	if len(lines) != 6 {
		t.Errorf("expLines length = %d, want 6 with boost row", len(lines))
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
