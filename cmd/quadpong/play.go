package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  Space      - Start the match / play again after a win
  <player>   - Each player's up/down keys from the config (w/s, r/f, y/h, i/k)
  +/-        - Add or remove a player (restarts the session)
  Ctrl+R     - Reload the player list from the config file
  Esc/Ctrl+C - Quit

Terminals do not report key releases, so a paddle keeps moving while the
key auto-repeats and stops shortly after it is let go.

Examples:
  quadpong play
  quadpong play --seed 7 --log quadpong.log
  quadpong play --config ./party.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Logs never go to the terminal while the alt screen is active
	logger, closeLog, err := newLogger(io.Discard, log.InfoLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting", "players", len(cfg.Players), "frame_rate", cfg.Timing.FrameRate)
	if err := tui.Run(tui.Options{
		Config:      cfg,
		ConfigPath:  flagConfig,
		RefreshRate: flagFPS,
		Seed:        flagSeed,
		Logger:      logger,
		Width:       width,
		Height:      height,
	}); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
