package play

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/game"
	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/questgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
)

// mockPersister implements game.Persister for testing.
type mockPersister struct {
	entry    game.LedgerEntry
	applyErr error
	applied  []game.Result
}

func (m *mockPersister) LedgerFor(_ context.Context, _ grades.Grade, _ int) (game.LedgerEntry, error) {
	return m.entry, nil
}

func (m *mockPersister) Apply(_ context.Context, r game.Result) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.applied = append(m.applied, r)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlayScreen() (*PlayScreen, *mockPersister) {
	s := game.New(game.Config{
		Grade:    grades.P2,
		Level:    45,
		Registry: questgen.NewRegistry(nil),
	})
	p := &mockPersister{entry: game.LedgerEntry{FirstToday: true}}
	scr := New(s, p)
	scr.Init()
	return scr, p
}

func TestPlayScreen_Title(t *testing.T) {
	s, _ := testPlayScreen()
	if s.Title() != "Play" {
		t.Errorf("Title = %q, want %q", s.Title(), "Play")
	}
}

func TestPlayScreen_InitServesFirstQuestion(t *testing.T) {
	s, _ := testPlayScreen()
	if s.choice.Question == "" {
		t.Error("expected a question after Init")
	}
	if len(s.choice.Choices) != questgen.ChoiceCount {
		t.Errorf("choices = %d, want %d", len(s.choice.Choices), questgen.ChoiceCount)
	}
}

func TestPlayScreen_View(t *testing.T) {
	s, _ := testPlayScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s, _ := testPlayScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PlayScreen)
	if !ps.showingQuit {
		t.Error("expected quit confirmation dialog")
	}
	if ps.View(80, 24) == "" {
		t.Error("expected non-empty quit confirm view")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PlayScreen)
	if ps.showingQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPlayScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testPlayScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
	if s.session.Phase() != game.PhaseReady {
		t.Errorf("phase = %v, want %v after exit", s.session.Phase(), game.PhaseReady)
	}
}

func TestPlayScreen_NumberKeyStartsSubmit(t *testing.T) {
	s, _ := testPlayScreen()

	scr, cmd := s.Update(keyPress('1'))
	ps := scr.(*PlayScreen)
	if !ps.submitting {
		t.Error("expected submitting state after picking a choice")
	}
	if cmd == nil {
		t.Error("expected a submit command")
	}

	// Further answer keys are ignored while the submission is in flight.
	scr, _ = ps.Update(keyPress('2'))
	ps = scr.(*PlayScreen)
	if ps.choice.Chosen() != ps.choice.Choices[0] {
		t.Error("expected the original choice to stand")
	}
}

func TestPlayScreen_SubmitDoneServesNext(t *testing.T) {
	s, _ := testPlayScreen()
	s.submitting = true

	next := questgen.Question{Prompt: "What is 2 x 3?", Answer: 6, Choices: []int{6, 7, 8, 9}}
	scr, _ := s.Update(submitDoneMsg{res: game.SubmitResult{Correct: true, Next: &next}})
	ps := scr.(*PlayScreen)
	if ps.submitting {
		t.Error("expected submitting to clear")
	}
	if ps.choice.Question != next.Prompt {
		t.Errorf("question = %q, want %q", ps.choice.Question, next.Prompt)
	}
}

func TestPlayScreen_PersistErrorRetry(t *testing.T) {
	s, _ := testPlayScreen()

	scr, _ := s.Update(finalizedMsg{err: errors.New("disk full")})
	ps := scr.(*PlayScreen)
	if ps.persistErr == "" {
		t.Fatal("expected persist error state")
	}
	if ps.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}

	scr, cmd := ps.Update(keyPress('r'))
	ps = scr.(*PlayScreen)
	if ps.persistErr != "" {
		t.Error("expected retry to clear the error state")
	}
	if cmd == nil {
		t.Error("expected a finalize command on retry")
	}
}

func TestPlayScreen_FinalizedGoesToSummary(t *testing.T) {
	s, _ := testPlayScreen()

	_, cmd := s.Update(finalizedMsg{result: game.Result{Grade: grades.P2, Level: 45}})
	if cmd == nil {
		t.Fatal("expected a command after finalize")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg carrying the summary")
	}
}

func TestPlayScreen_KeyHints(t *testing.T) {
	s, _ := testPlayScreen()
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}

	s.showingQuit = true
	if len(s.KeyHints()) != 2 {
		t.Errorf("quit KeyHints length = %d, want 2", len(s.KeyHints()))
	}

	s.showingQuit = false
	s.persistErr = "disk full"
	if len(s.KeyHints()) != 2 {
		t.Errorf("error KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
