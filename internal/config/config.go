// Package config provides YAML-based configuration loading for quadpong.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/quadpong/internal/core"
)

// ErrInvalid is returned (wrapped) for every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains all configuration for a quadpong session.
type GameConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Timing   TimingConfig   `yaml:"timing"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Players  []PlayerConfig `yaml:"players"`
}

// ArenaConfig defines the square playing field.
type ArenaConfig struct {
	Size     float64 `yaml:"size"`      // Side length of the arena
	GridSize float64 `yaml:"grid_size"` // Inset of paddles from the arena edge
}

// TimingConfig defines the simulation rate and the artificial delays.
type TimingConfig struct {
	FrameRate  int           `yaml:"frame_rate"`  // Simulation frames per second
	InitDelay  time.Duration `yaml:"init_delay"`  // Initializing -> Ready delay
	SpawnDelay time.Duration `yaml:"spawn_delay"` // Ball arming delay after (re)spawn
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	Length float64 `yaml:"length"` // Extent along the defended side
	Depth  float64 `yaml:"depth"`  // Thickness
	Speed  float64 `yaml:"speed"`  // Units per frame while a key is held
}

// BallConfig defines ball size, speed and goal value.
type BallConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`       // Units per frame after arming
	PointValue int     `yaml:"point_value"` // Score change per goal
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	MaxPlayers   int    `yaml:"max_players"`   // Paddle slots; players beyond this cannot win
	WinningScore int    `yaml:"winning_score"` // Score that ends the match
	StartKey     string `yaml:"start_key"`     // Key that starts and restarts a match
}

// PlayerConfig is a single player's settings record.
// KeyUp and KeyDown are empty for synthesized default players.
type PlayerConfig struct {
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`
	Sound   string `yaml:"sound"`
	KeyUp   string `yaml:"key_up,omitempty"`
	KeyDown string `yaml:"key_down,omitempty"`
}

// Sounds lists the accepted sound cue identifiers.
var Sounds = []string{"eagle", "goat", "monster", "trex"}

// FrameInterval returns the minimum wall-clock time between simulation frames.
func (c TimingConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate)
}

// HasKeys reports whether both movement keys are bound.
func (p PlayerConfig) HasKeys() bool {
	return p.KeyUp != "" && p.KeyDown != ""
}

// Validate checks a player record.
func (p PlayerConfig) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: player name is empty", ErrInvalid)
	}
	if _, err := core.ParsePlayerColor(p.Color); err != nil {
		return fmt.Errorf("%w: player %q: %v", ErrInvalid, p.Name, err)
	}
	if !isSound(p.Sound) {
		return fmt.Errorf("%w: player %q: unknown sound %q", ErrInvalid, p.Name, p.Sound)
	}
	if (p.KeyUp == "") != (p.KeyDown == "") {
		return fmt.Errorf("%w: player %q: key_up and key_down must be set together", ErrInvalid, p.Name)
	}
	return nil
}

// Validate checks the whole configuration.
func (c GameConfig) Validate() error {
	switch {
	case c.Arena.Size <= 0:
		return fmt.Errorf("%w: arena.size must be positive", ErrInvalid)
	case c.Arena.GridSize < 0:
		return fmt.Errorf("%w: arena.grid_size must not be negative", ErrInvalid)
	case c.Timing.FrameRate <= 0:
		return fmt.Errorf("%w: timing.frame_rate must be positive", ErrInvalid)
	case c.Timing.InitDelay < 0 || c.Timing.SpawnDelay < 0:
		return fmt.Errorf("%w: timing delays must not be negative", ErrInvalid)
	case c.Paddle.Length <= 0 || c.Paddle.Depth <= 0:
		return fmt.Errorf("%w: paddle dimensions must be positive", ErrInvalid)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball.size must be positive", ErrInvalid)
	case c.Gameplay.MaxPlayers <= 0:
		return fmt.Errorf("%w: gameplay.max_players must be positive", ErrInvalid)
	case c.Gameplay.WinningScore <= 0:
		return fmt.Errorf("%w: gameplay.winning_score must be positive", ErrInvalid)
	case c.Gameplay.StartKey == "":
		return fmt.Errorf("%w: gameplay.start_key is empty", ErrInvalid)
	}

	for _, p := range c.Players {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func isSound(s string) bool {
	for _, known := range Sounds {
		if s == known {
			return true
		}
	}
	return false
}
