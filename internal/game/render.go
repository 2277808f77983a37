package game

import (
	"strings"

	"github.com/vovakirdan/quadpong/internal/core"
)

// draw paints every paddle and ball.
func (m *Manager) draw() {
	s := m.col.Surface
	for _, p := range m.paddles {
		p.Draw(s)
	}
	for _, b := range m.balls {
		b.Draw(s)
	}
}

func (m *Manager) drawReady() {
	mid := m.cfg.Arena.Size / 2
	m.col.Surface.FillText("Press "+KeyLabel(m.cfg.Gameplay.StartKey)+" to start", mid, mid+m.cfg.Arena.Size/4, core.ColorWhite)
}

func (m *Manager) drawWinners() {
	s := m.col.Surface
	mid := m.cfg.Arena.Size / 2
	line := m.cfg.Arena.GridSize * 2

	y := mid - line*float64(len(m.winners))/2
	for _, w := range m.winners {
		s.FillText(w.name+" wins!", mid, y, w.color)
		y += line
	}
	s.FillText("Press "+KeyLabel(m.cfg.Gameplay.StartKey)+" to play again", mid, y+line, core.ColorWhite)
}

// KeyLabel returns a human readable name for a key string.
func KeyLabel(key string) string {
	switch key {
	case " ":
		return "SPACE"
	case "enter":
		return "ENTER"
	}
	return strings.ToUpper(key)
}
