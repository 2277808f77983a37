package game

import (
	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/core"
)

// Paddle defends one side of the arena for its owning player.
type Paddle struct {
	id     int
	player *Player
	side   Side

	x, y   float64
	w, h   float64
	vx, vy float64 // Speed per axis; exactly one is non-zero
	dx, dy float64

	arena     float64
	colliding bool

	keyUp   string
	keyDown string
	bound   bool
}

// newPaddle places a paddle on its side. Geometry and movement axis are
// fixed by the side; an unknown side behaves as left.
func newPaddle(id int, player *Player, side Side, arena config.ArenaConfig, cfg config.PaddleConfig) *Paddle {
	p := &Paddle{
		id:     id,
		player: player,
		side:   side,
		arena:  arena.Size,
	}

	switch side {
	case SideTop:
		p.w, p.h = cfg.Length, cfg.Depth
		p.x = arena.Size/2 - p.w/2
		p.y = arena.GridSize
		p.vx, p.vy = cfg.Speed, 0
	case SideRight:
		p.w, p.h = cfg.Depth, cfg.Length
		p.x = arena.Size - arena.GridSize - p.w
		p.y = arena.Size/2 - p.h/2
		p.vx, p.vy = 0, cfg.Speed
	case SideBottom:
		p.w, p.h = cfg.Length, cfg.Depth
		p.x = arena.Size/2 - p.w/2
		p.y = arena.Size - arena.GridSize - p.h
		p.vx, p.vy = cfg.Speed, 0
	case SideLeft:
		fallthrough
	default:
		p.side = SideLeft
		p.w, p.h = cfg.Depth, cfg.Length
		p.x = arena.GridSize
		p.y = arena.Size/2 - p.h/2
		p.vx, p.vy = 0, cfg.Speed
	}

	// Players without both keys never react to input
	up, down := player.Keys()
	if up != "" && down != "" {
		p.keyUp, p.keyDown = up, down
		p.bound = true
	}
	return p
}

// ID returns the paddle id.
func (p *Paddle) ID() int {
	return p.id
}

// Player returns the owning player.
func (p *Paddle) Player() *Player {
	return p.player
}

// Side returns the side the paddle defends.
func (p *Paddle) Side() Side {
	return p.side
}

// Velocity returns the current per-frame velocity.
func (p *Paddle) Velocity() (float64, float64) {
	return p.dx, p.dy
}

// Bound reports whether the paddle reacts to its owner's keys.
func (p *Paddle) Bound() bool {
	return p.bound
}

// Colliding reports whether a ball overlapped the paddle in the last frame.
func (p *Paddle) Colliding() bool {
	return p.colliding
}

// Bounds returns the paddle's current bounding box.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.w, p.h)
}

// CanCollide is always true for paddles.
func (p *Paddle) CanCollide() bool {
	return true
}

// HandleKey applies a key edge to the paddle velocity.
// The up key sets (vx, -vy), the down key sets (-vx, vy), releasing either
// stops the paddle.
func (p *Paddle) HandleKey(e core.KeyEdge) bool {
	if !p.bound || (e.Key != p.keyUp && e.Key != p.keyDown) {
		return false
	}
	switch {
	case !e.Down:
		p.dx, p.dy = 0, 0
	case e.Key == p.keyUp:
		p.dx, p.dy = p.vx, -p.vy
	default:
		p.dx, p.dy = -p.vx, p.vy
	}
	return true
}

// Move integrates velocity and keeps the paddle inside the arena.
// Only one bound is corrected per call; paddles move along a single axis.
func (p *Paddle) Move() {
	p.x += p.dx
	p.y += p.dy

	if p.x < 0 {
		p.x = 0
	} else if p.x+p.w > p.arena {
		p.x = p.arena - p.w
	} else if p.y < 0 {
		p.y = 0
	} else if p.y+p.h > p.arena {
		p.y = p.arena - p.h
	}
}

// Detach unbinds the paddle from input. Called before a paddle is discarded.
func (p *Paddle) Detach() {
	p.bound = false
	p.dx, p.dy = 0, 0
}

// Draw fills the paddle rectangle with the owner's flickering color.
func (p *Paddle) Draw(s Surface) {
	s.FillRect(p.Bounds(), p.player.Color())
}
