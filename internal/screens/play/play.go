// Package play hosts the drill screen. All game rules live in the game
// package; this screen only renders state and forwards input.
package play

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/game"
	"github.com/abhisek/mathquest/internal/questgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/summary"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// submitDoneMsg carries the outcome of one answer submission. It arrives
// after the session's transition delay, so the feedback colors stay on
// screen for that long.
type submitDoneMsg struct {
	res game.SubmitResult
	err error
}

// finalizedMsg carries the persisted session result, or the error that
// kept it in memory for a retry.
type finalizedMsg struct {
	result game.Result
	err    error
}

// PlayScreen drives one game.Session from first question to summary.
type PlayScreen struct {
	session   *game.Session
	persister game.Persister

	choice      components.MultiChoice
	submitting  bool
	showingQuit bool
	persistErr  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the play screen around a ready session.
func New(s *game.Session, p game.Persister) *PlayScreen {
	return &PlayScreen{session: s, persister: p}
}

func (p *PlayScreen) Init() tea.Cmd {
	q := p.session.Start()
	p.choice = newChoice(q)
	return nil
}

func (p *PlayScreen) Title() string {
	return "Play"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit level"},
			{Key: "N", Description: "Keep going"},
		}
	case p.persistErr != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry save"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return p.handleSubmitDone(msg)
	case finalizedMsg:
		return p.handleFinalized(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.showingQuit {
		switch key {
		case "y", "Y":
			p.session.Exit()
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.showingQuit = false
		}
		return p, nil
	}

	if p.persistErr != "" {
		switch key {
		case "r", "R":
			p.persistErr = ""
			return p, p.finalize()
		case "esc":
			p.session.Exit()
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	if key == "esc" {
		p.showingQuit = true
		return p, nil
	}

	// While an answer is processing, input is ignored; the session's
	// single-flight lock would drop a duplicate anyway.
	if p.submitting {
		return p, nil
	}

	var cmd tea.Cmd
	p.choice, cmd = p.choice.Update(msg)
	if p.choice.Submitted {
		p.submitting = true
		return p, tea.Batch(cmd, p.submit(p.choice.Chosen()))
	}
	return p, cmd
}

// submit runs the answer through the session off the UI goroutine. The
// session sleeps its transition delay before returning, which doubles as
// the feedback display period.
func (p *PlayScreen) submit(answer int) tea.Cmd {
	s := p.session
	return func() tea.Msg {
		res, err := s.Submit(answer)
		return submitDoneMsg{res: res, err: err}
	}
}

func (p *PlayScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	p.submitting = false
	if msg.err != nil || msg.res.Ignored {
		// Session was exited mid-submit; nothing to show.
		return p, nil
	}
	if msg.res.Done {
		return p, p.finalize()
	}
	if msg.res.Next != nil {
		p.choice = newChoice(*msg.res.Next)
	}
	return p, nil
}

func (p *PlayScreen) finalize() tea.Cmd {
	s := p.session
	persister := p.persister
	return func() tea.Msg {
		r, err := s.Finalize(context.Background(), persister)
		return finalizedMsg{result: r, err: err}
	}
}

func (p *PlayScreen) handleFinalized(msg finalizedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		p.persistErr = msg.err.Error()
		return p, nil
	}
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(msg.result)}
	}
}

func newChoice(q questgen.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Prompt, q.Choices, q.Answer)
}
