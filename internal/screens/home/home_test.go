package home

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/questgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testHome builds a home screen around a fixed profile without touching
// the store. The store pointer is only handed onward to the play screen,
// so nil is safe here.
func testHome(p store.ProfileData) *HomeScreen {
	return &HomeScreen{
		registry: questgen.NewRegistry(nil),
		profile:  p,
	}
}

func TestMascotVariant(t *testing.T) {
	old := time.Now().Add(-72 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		profile store.ProfileData
		want    MascotVariant
	}{
		{"fresh profile", store.ProfileData{}, MascotIdle},
		{"played recently", store.ProfileData{LastPlayedAt: &recent}, MascotIdle},
		{"streak going", store.ProfileData{StreakDays: 3, LastPlayedAt: &recent}, MascotCelebrating},
		{"gone quiet", store.ProfileData{StreakDays: 1, LastPlayedAt: &old}, MascotSleepy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHome(tt.profile)
			if got := h.mascotVariant(); got != tt.want {
				t.Errorf("mascotVariant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPracticePickerRejectsOutOfRange(t *testing.T) {
	h := testHome(store.ProfileData{Grade: grades.P2, Level: 45})
	h.picking = true
	h.levelInput = components.NewTextInput("level", true, 3)

	for _, r := range "99" {
		h.Update(keyPress(r))
	}
	scr, cmd := h.Update(specialKey(tea.KeyEnter))
	hs := scr.(*HomeScreen)
	if !hs.picking {
		t.Error("expected picker to stay open on out-of-range level")
	}
	if cmd != nil {
		t.Error("expected no command on rejected input")
	}
}

func TestPracticePickerStartsValidLevel(t *testing.T) {
	h := testHome(store.ProfileData{Grade: grades.P2, Level: 45})
	h.picking = true
	h.levelInput = components.NewTextInput("level", true, 3)

	h.Update(keyPress('7'))
	scr, cmd := h.Update(specialKey(tea.KeyEnter))
	hs := scr.(*HomeScreen)
	if hs.picking {
		t.Error("expected picker to close on a valid level")
	}
	if cmd == nil {
		t.Fatal("expected a command starting the practice session")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg carrying the play screen")
	}
}

func TestPracticePickerCancels(t *testing.T) {
	h := testHome(store.ProfileData{Grade: grades.P2, Level: 45})
	h.picking = true
	h.levelInput = components.NewTextInput("level", true, 3)

	scr, _ := h.Update(specialKey(tea.KeyEscape))
	if scr.(*HomeScreen).picking {
		t.Error("expected escape to dismiss the picker")
	}
}

func TestKeyHintsFollowPickerState(t *testing.T) {
	h := testHome(store.ProfileData{Grade: grades.P2, Level: 45})
	if len(h.KeyHints()) != 2 {
		t.Errorf("menu KeyHints length = %d, want 2", len(h.KeyHints()))
	}
	h.picking = true
	hints := h.KeyHints()
	if len(hints) != 2 || hints[0].Key != "Enter" {
		t.Errorf("picker KeyHints = %v, want Enter/Esc", hints)
	}
}
