package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/quadpong.yaml
var defaultGameYAML []byte

// gridSize is the base unit the default geometry is derived from.
const gridSize = 20

// DefaultGameConfig returns the default quadpong configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Size:     800,
			GridSize: gridSize,
		},
		Timing: TimingConfig{
			FrameRate:  60,
			InitDelay:  time.Second,
			SpawnDelay: time.Second,
		},
		Paddle: PaddleConfig{
			Length: gridSize * 4,
			Depth:  gridSize,
			Speed:  7,
		},
		Ball: BallConfig{
			Size:       gridSize,
			Speed:      2,
			PointValue: 1,
		},
		Gameplay: GameplayConfig{
			MaxPlayers:   4,
			WinningScore: 9,
			StartKey:     " ",
		},
		Players: DefaultPlayers()[:4],
	}
}

// DefaultPlayers returns the default roster with keybindings.
func DefaultPlayers() []PlayerConfig {
	return []PlayerConfig{
		{Name: "John", Color: "blue", Sound: "eagle", KeyUp: "w", KeyDown: "s"},
		{Name: "Jane", Color: "green", Sound: "goat", KeyUp: "r", KeyDown: "f"},
		{Name: "Jone", Color: "red", Sound: "monster", KeyUp: "y", KeyDown: "h"},
		{Name: "Jahn", Color: "yellow", Sound: "trex", KeyUp: "i", KeyDown: "k"},
		{Name: "Smith", Color: "yellow", Sound: "trex", KeyUp: "o", KeyDown: "l"},
	}
}

// DefaultPlayer returns the filler player used for an empty paddle slot.
// Filler players have no keys so they never react to input.
func DefaultPlayer(index int) PlayerConfig {
	roster := DefaultPlayers()
	if index < 0 || index >= len(roster) {
		index = 0
	}
	p := roster[index]
	p.KeyUp = ""
	p.KeyDown = ""
	return p
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
