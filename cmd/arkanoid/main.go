// arkanoid is a deterministic brick-breaker simulation with a terminal front end.
//
// Usage:
//
//	arkanoid play              - Play in the terminal
//	arkanoid sim --ticks N     - Run the simulation headless
//	arkanoid serve             - Start SSH server for remote play
//	arkanoid history           - Show recorded sessions
//	arkanoid config            - Print the effective playfield config
//
// Global flags:
//
//	--config <path> - Playfield config YAML (default: search path, then built-in)
//	--seed <value>  - Set RNG seed for reproducible launches
//	--db <path>     - Set session journal path (default: ~/.arkanoid/sessions.db)
//	--debug         - Enable debug logging
//
// ARKANOID_CONFIG, ARKANOID_SEED and ARKANOID_DB (also read from .env) supply
// defaults for the matching flags.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

const defaultDBPath = "~/.arkanoid/sessions.db"

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - a brick-breaker simulation in your terminal",
	Long: `Arkanoid runs a fixed-tick brick-breaker simulation: a ball, a paddle and
a 10x6 grid of bricks. Play it in the terminal, over SSH, or headless.

Available commands:
  play     - Play in the terminal
  sim      - Run the simulation without a UI
  serve    - Start SSH server for remote play
  history  - Show recorded sessions
  config   - Print the effective playfield config

Examples:
  arkanoid play
  arkanoid play --seed 42
  arkanoid sim --ticks 1000 --out snap.yaml
  arkanoid serve --ssh :2222
  arkanoid history --limit 5`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to playfield config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to session journal database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, applies environment defaults to unset flags and
// configures the default logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if v, ok := os.LookupEnv("ARKANOID_CONFIG"); ok && !flags.Changed("config") {
		flagConfig = v
	}
	if v, ok := os.LookupEnv("ARKANOID_DB"); ok && !flags.Changed("db") {
		flagDBPath = v
	}
	if v, ok := os.LookupEnv("ARKANOID_SEED"); ok && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ARKANOID_SEED %q: %w", v, err)
		}
		flagSeed = seed
	}

	log.SetReportTimestamp(true)
	log.SetPrefix("arkanoid")
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// loadConfig resolves the playfield config from --config or the search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	log.Debug("config loaded", "path", flagConfig, "bricks", cfg.BrickCount(), "tick", cfg.TickPeriod)
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
