package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/game"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show the configured players",
	Long: `Shows the player roster from the active config, with each player's
side, color, sound cue and keys.

Players beyond the fourth get a ball but no paddle and cannot win.`,
	Args: cobra.NoArgs,
	RunE: runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if len(cfg.Players) == 0 {
		fmt.Println("No players configured. Default players will fill every side.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range cfg.Players {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-11s  %-6s  %-7s  %s\n", maxNameLen, "Name", "Side", "Color", "Sound", "Keys")
	fmt.Printf("  %-*s  %-11s  %-6s  %-7s  %s\n", maxNameLen, "----", "----", "-----", "-----", "----")

	for i, p := range cfg.Players {
		fmt.Printf("  %-*s  %-11s  %-6s  %-7s  %s\n", maxNameLen, p.Name, sidesOf(i, len(cfg.Players), cfg.Gameplay.MaxPlayers), p.Color, p.Sound, keysOf(p))
	}

	fmt.Println()
	fmt.Printf("Press %s to start a match, first to %d wins.\n", game.KeyLabel(cfg.Gameplay.StartKey), cfg.Gameplay.WinningScore)
	return nil
}

// sidesOf lists the sides player i defends when paddles cycle through n players.
func sidesOf(i, n, maxPlayers int) string {
	if i >= maxPlayers {
		return "-"
	}
	s := ""
	for slot, side := range game.Sides {
		if slot%n != i {
			continue
		}
		if s != "" {
			s += ","
		}
		s += side.String()
	}
	return s
}

func keysOf(p config.PlayerConfig) string {
	if !p.HasKeys() {
		return "-"
	}
	return game.KeyLabel(p.KeyUp) + "/" + game.KeyLabel(p.KeyDown)
}
