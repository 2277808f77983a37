package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/core"
)

// Player is a participant: identity, color, score and sound cue.
// Players own no physics; paddles and balls refer to them.
type Player struct {
	id      int
	name    string
	color   core.Color
	sound   string
	keyUp   string
	keyDown string
	score   int
	canWin  bool

	rng   *rand.Rand
	audio AudioPlayer
}

// newPlayer builds a player from its settings record.
func newPlayer(id int, cfg config.PlayerConfig, canWin bool, rng *rand.Rand, audio AudioPlayer) (*Player, error) {
	color, err := core.ParsePlayerColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("game: player %q: %w", cfg.Name, err)
	}
	return &Player{
		id:      id,
		name:    cfg.Name,
		color:   color,
		sound:   cfg.Sound,
		keyUp:   cfg.KeyUp,
		keyDown: cfg.KeyDown,
		canWin:  canWin,
		rng:     rng,
		audio:   audio,
	}, nil
}

// ID returns the player's process-unique id.
func (p *Player) ID() int {
	return p.id
}

// Name returns the display name.
func (p *Player) Name() string {
	return p.name
}

// BaseColor returns the configured color without flicker.
func (p *Player) BaseColor() core.Color {
	return p.color
}

// Sound returns the sound cue identifier.
func (p *Player) Sound() string {
	return p.sound
}

// Score returns the current score. It may be negative.
func (p *Player) Score() int {
	return p.score
}

// CanWin reports whether goals change this player's score.
func (p *Player) CanWin() bool {
	return p.canWin
}

// Keys returns the movement keys. Both are empty for filler players.
func (p *Player) Keys() (up, down string) {
	return p.keyUp, p.keyDown
}

// Color returns the player's color half of the time and transparent
// otherwise. It is sampled on every draw call, so entities flicker
// independently of each other.
func (p *Player) Color() core.Color {
	if p.rng.Float64() < 0.5 {
		return p.color
	}
	return core.ColorTransparent
}

// PlayAudio triggers the player's sound cue.
func (p *Player) PlayAudio() {
	p.audio.Play(p.sound)
}

// AddScore adds amount (possibly negative) to the score.
func (p *Player) AddScore(amount int) {
	p.score += amount
}

// ResetScore sets the score back to zero.
func (p *Player) ResetScore() {
	p.score = 0
}
