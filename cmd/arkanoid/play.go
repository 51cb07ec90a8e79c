package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive game in the terminal.

Controls:
  Mouse drag     - Move the paddle
  Click/Space    - Launch the ball
  Left/Right     - Nudge the paddle
  ?              - Toggle help
  Q/Esc/Ctrl+C   - Quit

Examples:
  arkanoid play
  arkanoid play --seed 42
  arkanoid play --config ./wide.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := resolveSeed()
	rt := core.DefaultConfig()
	rt.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	var opts []arkanoid.Option
	if flagDebug {
		opts = append(opts, arkanoid.WithLogger(log.Default()))
	}
	sim := arkanoid.New(cfg, seed, opts...)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open session journal", "error", err)
		store = nil
	}

	runErr := tui.Run(sim, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	log.Info("session finished", "seed", seed, "ticks", sim.Ticks(), "bricks_hit", sim.BricksHit())
	return nil
}
