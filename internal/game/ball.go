package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/core"
)

// ballHalo is how far the colored backing rectangle extends past the avatar.
const ballHalo = 5

// Ball is a moving body owned by a player.
type Ball struct {
	id     int
	player *Player
	slot   Side

	startX, startY float64
	x, y           float64
	w, h           float64
	dx, dy         float64

	speed      float64
	pointValue int
	arena      float64
	canCollide bool

	spawnDelay time.Duration
	sched      *Scheduler
	rng        *rand.Rand
	armToken   uint64
}

// newBall claims a starting slot from the pool and resets the ball.
func newBall(id int, player *Player, pool *SlotPool, arena config.ArenaConfig, cfg config.BallConfig,
	spawnDelay time.Duration, sched *Scheduler, rng *rand.Rand, now time.Time) *Ball {
	slot := pool.Claim()
	x, y := slotPosition(slot, arena.Size, cfg.Size, cfg.Size)

	b := &Ball{
		id:         id,
		player:     player,
		slot:       slot,
		startX:     x,
		startY:     y,
		w:          cfg.Size,
		h:          cfg.Size,
		speed:      cfg.Speed,
		pointValue: cfg.PointValue,
		arena:      arena.Size,
		spawnDelay: spawnDelay,
		sched:      sched,
		rng:        rng,
	}
	b.Reset(now)
	return b
}

// ID returns the ball id.
func (b *Ball) ID() int {
	return b.id
}

// Player returns the owning player.
func (b *Ball) Player() *Player {
	return b.player
}

// Slot returns the side slot the ball spawns at.
func (b *Ball) Slot() Side {
	return b.slot
}

// PointValue returns the score change a goal with this ball causes.
func (b *Ball) PointValue() int {
	return b.pointValue
}

// Velocity returns the current per-frame velocity.
func (b *Ball) Velocity() (float64, float64) {
	return b.dx, b.dy
}

// CanCollide reports whether the ball is armed.
func (b *Ball) CanCollide() bool {
	return b.canCollide
}

// Bounds returns the ball's current bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.x, b.y, b.w, b.h)
}

// Start returns the ball's starting slot position.
func (b *Ball) Start() (float64, float64) {
	return b.startX, b.startY
}

// Reset disarms the ball, puts it back on its slot and schedules arming.
// Only the latest reset arms the ball; earlier pending arms are ignored.
func (b *Ball) Reset(now time.Time) {
	b.canCollide = false
	b.x, b.y = b.startX, b.startY
	b.dx, b.dy = 0, 0

	b.armToken++
	token := b.armToken
	b.sched.After(now, b.spawnDelay, func() {
		if token != b.armToken {
			return
		}
		b.arm()
	})
}

// arm gives the ball its launch velocity.
// The heading is drawn in degrees and used as radians, as the game has
// always done; the resulting spread is not uniform over the circle.
func (b *Ball) arm() {
	angle := b.rng.Float64() * 360
	b.dx = b.speed * math.Cos(angle)
	b.dy = b.speed * math.Sin(angle)
	b.canCollide = true
}

// Move integrates velocity. Balls are not clamped; they are expected to exit.
func (b *Ball) Move() {
	b.x += b.dx
	b.y += b.dy
}

// OutOfBounds returns the side the ball has fully crossed, checked in the
// order left, right, top, bottom. ok is false while the ball is inside.
func (b *Ball) OutOfBounds() (side Side, ok bool) {
	switch {
	case b.x+b.w < 0:
		return SideLeft, true
	case b.x > b.arena:
		return SideRight, true
	case b.y+b.h < 0:
		return SideTop, true
	case b.y > b.arena:
		return SideBottom, true
	}
	return 0, false
}

// Draw paints the colored halo and then the avatar on top.
func (b *Ball) Draw(s Surface) {
	halo := core.NewRect(b.x-ballHalo, b.y-ballHalo, b.w+2*ballHalo, b.h+2*ballHalo)
	s.FillRect(halo, b.player.Color())
	s.DrawImage(Avatar, b.Bounds())
}
