package game

import "github.com/vovakirdan/quadpong/internal/core"

// PlayerView is a read-only copy of a player.
type PlayerView struct {
	ID     int
	Name   string
	Color  core.Color
	Sound  string
	Score  int
	CanWin bool
}

// PaddleView is a read-only copy of a paddle.
type PaddleView struct {
	ID       int
	PlayerID int
	Side     Side
	Bounds   core.Rect
	DX, DY   float64
	Bound    bool
}

// BallView is a read-only copy of a ball.
type BallView struct {
	ID         int
	PlayerID   int
	Slot       Side
	Bounds     core.Rect
	DX, DY     float64
	CanCollide bool
}

// Snapshot is the state of a match at one instant.
// Players lists the configured roster. With an empty roster the paddles
// and balls belong to keyless filler players, which are listed in Fillers
// instead so that every PlayerID in the view resolves.
type Snapshot struct {
	State   State
	Players []PlayerView
	Fillers []PlayerView
	Paddles []PaddleView
	Balls   []BallView
	Winners []PlayerView
}

// Snapshot copies the current match state.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		State:   m.state,
		Players: make([]PlayerView, 0, len(m.players)),
		Paddles: make([]PaddleView, 0, len(m.paddles)),
		Balls:   make([]BallView, 0, len(m.balls)),
	}
	for _, p := range m.players {
		snap.Players = append(snap.Players, viewPlayer(p))
	}
	for _, f := range m.fillers {
		snap.Fillers = append(snap.Fillers, viewPlayer(f))
	}
	for _, w := range m.winners {
		snap.Winners = append(snap.Winners, viewPlayer(w))
	}
	for _, p := range m.paddles {
		snap.Paddles = append(snap.Paddles, PaddleView{
			ID:       p.id,
			PlayerID: p.player.id,
			Side:     p.side,
			Bounds:   p.Bounds(),
			DX:       p.dx,
			DY:       p.dy,
			Bound:    p.bound,
		})
	}
	for _, b := range m.balls {
		snap.Balls = append(snap.Balls, BallView{
			ID:         b.id,
			PlayerID:   b.player.id,
			Slot:       b.slot,
			Bounds:     b.Bounds(),
			DX:         b.dx,
			DY:         b.dy,
			CanCollide: b.canCollide,
		})
	}
	return snap
}

func viewPlayer(p *Player) PlayerView {
	return PlayerView{
		ID:     p.id,
		Name:   p.name,
		Color:  p.color,
		Sound:  p.sound,
		Score:  p.score,
		CanWin: p.canWin,
	}
}
