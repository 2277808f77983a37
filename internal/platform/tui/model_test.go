package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/game"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:      config.DefaultGameConfig(),
		RefreshRate: 60,
		Seed:        5,
		Width:       120,
		Height:      40,
	})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func TestModelTicksToReady(t *testing.T) {
	m := newTestModel(t)
	if m.Manager().State() != game.StateInitializing {
		t.Fatalf("state = %s, expected initializing", m.Manager().State())
	}
	if !m.loading.Visible() {
		t.Error("loading indicator should show while initializing")
	}

	next, cmd := m.Update(TickMsg(time.Now().Add(2 * time.Second)))
	if cmd == nil {
		t.Error("tick should re-arm itself")
	}
	m = next.(Model)
	if m.Manager().State() != game.StateReady {
		t.Errorf("state = %s, expected ready", m.Manager().State())
	}
	if m.loading.Visible() {
		t.Error("loading indicator should close in ready")
	}
	if m.View() == "" {
		t.Error("view should render")
	}
}

func TestModelStartKey(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()
	next, _ := m.Update(TickMsg(now.Add(2 * time.Second)))
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	next, _ = m.Update(TickMsg(now.Add(3 * time.Second)))
	m = next.(Model)

	if m.Manager().State() != game.StateRunning {
		t.Errorf("state = %s, expected running", m.Manager().State())
	}
}

func TestModelRosterKeys(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m = next.(Model)
	if got := len(m.Manager().Snapshot().Players); got != 3 {
		t.Errorf("players after remove = %d, expected 3", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(Model)
	snap := m.Manager().Snapshot()
	if len(snap.Players) != 4 {
		t.Errorf("players after adds = %d, expected 4 (roster exhausted)", len(snap.Players))
	}
	if m.status != "no more players in roster" {
		t.Errorf("status = %q", m.status)
	}
	if snap.State != game.StateInitializing {
		t.Errorf("roster change should reinitialize, state = %s", snap.State)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd == nil || !m.quitting {
		t.Error("ctrl+c should quit")
	}
	if m.Manager().State() != game.StateStopped {
		t.Error("quitting should stop the manager")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsArenaSquare(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m = next.(Model)
	if m.screen.Width() != 2*m.screen.Height() {
		t.Errorf("arena %dx%d should be twice as wide as tall", m.screen.Width(), m.screen.Height())
	}
	if m.screen.Height() != (100-panelWidth-2)/2 {
		t.Errorf("arena rows = %d, expected the width-limited %d", m.screen.Height(), (100-panelWidth-2)/2)
	}
}

func TestModelHeldKeySurvivesRosterChange(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()
	next, _ := m.Update(TickMsg(now.Add(2 * time.Second)))
	m = next.(Model)

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}
	next, _ = m.Update(up)
	m = next.(Model)
	if !m.Manager().Keys().IsDown("w") {
		t.Fatal("w should be down after the first key event")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m = next.(Model)
	if m.Manager().Keys().IsDown("w") {
		t.Fatal("a roster change should clear the manager's keys")
	}

	// Auto-repeat of the still held key
	for i := 0; i < 3; i++ {
		next, _ = m.Update(up)
		m = next.(Model)
	}
	if !m.Manager().Keys().IsDown("w") {
		t.Fatal("a repeated key should be pressed again after the rebuild")
	}

	next, _ = m.Update(TickMsg(now.Add(4 * time.Second)))
	m = next.(Model)
	snap := m.Manager().Snapshot()
	if snap.State != game.StateReady {
		t.Fatalf("state = %s, expected ready", snap.State)
	}
	moving := false
	for _, p := range snap.Paddles {
		if p.PlayerID == snap.Players[0].ID && (p.DX != 0 || p.DY != 0) {
			moving = true
		}
	}
	if !moving {
		t.Error("the held key should drive its owner's paddle after the rebuild")
	}
}
