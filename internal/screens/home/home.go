package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/game"
	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/questgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/play"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// RefreshMsg asks the home screen to reload the profile, typically after
// a session has been persisted.
type RefreshMsg struct{}

// HomeScreen is the main screen: the player's position on the ladder and
// the menu to start playing.
type HomeScreen struct {
	st       *store.Store
	registry *questgen.Registry
	delay    time.Duration

	profile store.ProfileData
	band    *levelband.Band
	menu    components.Menu
	errMsg  string

	picking    bool
	levelInput components.TextInput
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, registry *questgen.Registry, delay time.Duration) *HomeScreen {
	h := &HomeScreen{st: st, registry: registry, delay: delay}
	h.reload()
	return h
}

// reload refreshes the profile and rebuilds the menu around it.
func (h *HomeScreen) reload() {
	p, err := h.st.Profile(context.Background())
	if err != nil {
		h.errMsg = err.Error()
		return
	}
	h.errMsg = ""
	h.profile = p
	h.band = levelband.Config(p.Grade, p.Level)

	items := []components.MenuItem{
		{Label: fmt.Sprintf("START LEVEL %d", p.Level), Action: func() tea.Cmd {
			return h.startLevel(p.Level)
		}},
		{
			Label:    fmt.Sprintf("REPLAY LEVEL %d", p.Level-1),
			Disabled: p.Level <= 1,
			Action: func() tea.Cmd {
				return h.startLevel(p.Level - 1)
			},
		},
		{
			Label:    "PRACTICE A LEVEL",
			Disabled: p.Level <= 1,
			Action: func() tea.Cmd {
				h.picking = true
				h.levelInput = components.NewTextInput("level", true, 3)
				return h.levelInput.Init()
			},
		},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
}

// startLevel pushes a play screen for the given level. A level below the
// profile's current one is a practice run and never moves the ladder.
func (h *HomeScreen) startLevel(level int) tea.Cmd {
	s := game.New(game.Config{
		Grade:           h.profile.Grade,
		Level:           h.profile.Level,
		EffectiveLevel:  level,
		TransitionDelay: h.delay,
		Registry:        h.registry,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(s, h.st)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(RefreshMsg); ok {
		h.picking = false
		h.reload()
		return h, nil
	}
	if h.picking {
		return h.updatePicking(msg)
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// updatePicking drives the practice level prompt. Any level the player has
// already passed is fair game; the current one is not, that is what START
// is for.
func (h *HomeScreen) updatePicking(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.picking = false
			return h, nil
		case "enter":
			level, err := h.levelInput.NumericValue()
			if err != nil || level < 1 || level >= h.profile.Level {
				h.levelInput.Submit(false)
				return h, nil
			}
			h.levelInput.Submit(true)
			h.picking = false
			return h, h.startLevel(level)
		}
	}
	var cmd tea.Cmd
	h.levelInput, cmd = h.levelInput.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + h.errMsg)
	}

	compact := height < 18

	var sections []string

	title := theme.Title.Width(width).Render("M · A · T · H · Q · U · E · S · T")
	sections = append(sections, title)

	if !compact {
		mascot := RenderMascot(h.mascotVariant())
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, mascot))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderStats()))
	if h.picking {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderPicker()))
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	}

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) renderPicker() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Practice which level? (1-%d)", h.profile.Level-1))
	return theme.Card.Render(prompt + "\n" + h.levelInput.View())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.picking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	switch {
	case h.profile.StreakDays >= 3:
		return MascotCelebrating
	case h.profile.LastPlayedAt != nil && time.Since(*h.profile.LastPlayedAt) > 48*time.Hour:
		return MascotSleepy
	default:
		return MascotIdle
	}
}

// renderStats shows where the player is and what the level asks of them.
func (h *HomeScreen) renderStats() string {
	p := h.profile

	pos := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%s  ·  Level %d", grades.DisplayName(p.Grade), p.Level))

	totals := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d XP   ·   total score %d   ·   %d day streak",
			p.Experience, p.TotalScore, p.StreakDays))

	lines := []string{pos, totals}
	if h.band != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).
			Render(h.band.Description))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}
