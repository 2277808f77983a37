package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/game"
	"github.com/vovakirdan/quadpong/internal/settings"
)

var (
	flagFrames   int
	flagPlayers  int
	flagRealtime time.Duration
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run a match without a terminal UI. Nobody moves the paddles; the
balls bounce around until the frame budget runs out or someone wins.

By default time is simulated and the run finishes immediately. With
--realtime the simulation runs on the wall clock for the given duration.

Examples:
  quadpong simulate
  quadpong simulate --frames 20000 --seed 42
  quadpong simulate --players 0
  quadpong simulate --realtime 10s -v`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of simulation frames to run")
	simulateCmd.Flags().IntVar(&flagPlayers, "players", -1, "Limit the roster to this many players (-1 = all)")
	simulateCmd.Flags().DurationVar(&flagRealtime, "realtime", 0, "Run on the wall clock for this long")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log goals and state changes")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagPlayers >= 0 && flagPlayers < len(cfg.Players) {
		cfg.Players = cfg.Players[:flagPlayers]
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger, closeLog, err := newLogger(os.Stderr, level)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := settings.NewStore(cfg.Players)
	now := time.Now()
	clock := func() time.Time { return now }
	if flagRealtime > 0 {
		clock = time.Now
	}

	m, err := game.New(cfg, store, game.NopCollaborators(), game.Options{
		Logger: logger,
		Seed:   seed,
		Clock:  clock,
	})
	if err != nil {
		return err
	}
	unsub := store.Subscribe(m.OnSettingsChange)
	defer unsub()

	if flagRealtime > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagRealtime)
		defer cancel()
		err := game.RunLoop(ctx, m, time.Second/time.Duration(flagFPS), game.AutoStart)
		if err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		step := cfg.Timing.FrameInterval()
		for m.Frames() < flagFrames && m.State() != game.StateWinner && m.State() != game.StateStopped {
			now = now.Add(step)
			game.AutoStart(m, now)
			m.Update(now)
		}
	}

	printResult(m.Snapshot(), seed)
	return m.Err()
}

// printResult writes the final state of a headless run.
func printResult(snap game.Snapshot, seed int64) {
	fmt.Printf("State: %s (seed %d)\n", snap.State, seed)
	fmt.Println()

	if len(snap.Players) == 0 {
		fmt.Println("No players configured; default players fill every side.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, p := range snap.Players {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Color", "Score")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "-----", "-----")
	for _, p := range snap.Players {
		fmt.Printf("  %-*s  %-6s  %d\n", maxNameLen, p.Name, p.Color, p.Score)
	}

	if len(snap.Winners) > 0 {
		fmt.Println()
		for _, w := range snap.Winners {
			fmt.Printf("%s wins!\n", w.Name)
		}
	}
}
