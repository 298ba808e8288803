package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/questgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/home"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// profileLoadedMsg refreshes the header stats.
type profileLoadedMsg struct {
	exp    int
	streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st     *store.Store
	router *router.Router
	width  int
	height int
	exp    int
	streak int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(st *store.Store, registry *questgen.Registry, delay time.Duration) AppModel {
	homeScreen := home.New(st, registry, delay)
	return AppModel{
		st:     st,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadProfile()
}

// loadProfile fetches the header stats off the UI goroutine.
func (m AppModel) loadProfile() tea.Cmd {
	st := m.st
	return func() tea.Msg {
		p, err := st.Profile(context.Background())
		if err != nil {
			return profileLoadedMsg{}
		}
		return profileLoadedMsg{exp: p.Experience, streak: p.StreakDays}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileLoadedMsg:
		m.exp = msg.exp
		m.streak = msg.streak
		return m, nil

	case router.PopScreenMsg:
		// Coming back from a session: the profile may have moved.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadProfile(), func() tea.Msg { return home.RefreshMsg{} })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.exp, m.streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's own hints over the defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(st *store.Store, registry *questgen.Registry, delay time.Duration) error {
	p := tea.NewProgram(newAppModel(st, registry, delay))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
