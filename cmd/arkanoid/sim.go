package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
)

var (
	flagTicks    uint64
	flagLaunchAt int64
	flagRealtime bool
	flagOut      string
	flagFrom     string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a UI",
	Long: `Run the simulation headless for a fixed number of ticks and report the
result. The ball is launched after --launch-at ticks (negative: never).

With --realtime the ticks are paced at the configured tick period;
otherwise they run as fast as possible. Either way the result for a given
seed is identical.

Examples:
  arkanoid sim --ticks 1000 --seed 42
  arkanoid sim --ticks 500 --launch-at 100 --out snap.yaml
  arkanoid sim --from snap.yaml --ticks 500
  arkanoid sim --ticks 300 --realtime --debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 1000, "Number of ticks to run")
	simCmd.Flags().Int64Var(&flagLaunchAt, "launch-at", 0, "Launch the ball after this many ticks (negative = never)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured tick period")
	simCmd.Flags().StringVar(&flagOut, "out", "", "Write the final snapshot as YAML to this file")
	simCmd.Flags().StringVar(&flagFrom, "from", "", "Resume from a YAML snapshot")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := resolveSeed()
	sim := arkanoid.New(cfg, seed, arkanoid.WithLogger(log.Default()))

	if flagFrom != "" {
		snap, err := readSnapshot(flagFrom)
		if err != nil {
			return err
		}
		sim.ApplySnapshot(snap)
		log.Info("resumed", "from", flagFrom, "tick", snap.Tick, "seed", snap.Seed)
	}

	start := sim.Ticks()
	end := start + flagTicks
	launchAt := start + uint64(max(flagLaunchAt, 0)) //#nosec G115 -- clamped to non-negative
	if flagLaunchAt == 0 {
		sim.TriggerLaunch()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	onTick := func(res arkanoid.TickResult) {
		if flagLaunchAt > 0 && res.Tick == launchAt {
			sim.TriggerLaunch()
		}
		if res.Tick >= end {
			cancel()
		}
	}

	driver := arkanoid.NewDriver(sim, cfg.TickPeriod, onTick)
	if flagRealtime {
		if flagTicks > 0 {
			if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		}
	} else {
		driver.Advance(int(flagTicks)) //#nosec G115 -- tick counts fit in int
	}

	ball := sim.Ball()
	log.Info("simulation finished",
		"seed", sim.Seed(),
		"ticks", sim.Ticks(),
		"bricks_hit", sim.BricksHit(),
		"attached", ball.Attached,
		"ball", fmt.Sprintf("(%.2f, %.2f)", ball.Pos.X, ball.Pos.Y),
		"speed", fmt.Sprintf("%.4f", ball.Speed()),
	)

	if flagOut != "" {
		if err := writeSnapshot(flagOut, sim.Snapshot()); err != nil {
			return err
		}
		log.Info("snapshot written", "path", flagOut)
	}
	return nil
}

func readSnapshot(path string) (arkanoid.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return arkanoid.Snapshot{}, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var snap arkanoid.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return arkanoid.Snapshot{}, fmt.Errorf("cannot parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

func writeSnapshot(path string, snap arkanoid.Snapshot) error {
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}
