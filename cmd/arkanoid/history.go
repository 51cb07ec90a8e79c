package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagLimit int
	flagStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `List the most recent play sessions, newest first.

On a terminal the list is scrollable; when piped it is printed as a table.

Examples:
  arkanoid history
  arkanoid history --limit 5
  arkanoid history --stats`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of sessions to show")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Print totals over the whole journal")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagStats {
		stats, err := store.GetStats()
		if err != nil {
			return err
		}
		fmt.Printf("Sessions:   %d\n", stats.Sessions)
		fmt.Printf("Ticks:      %d\n", stats.TotalTicks)
		fmt.Printf("Bricks hit: %d\n", stats.TotalHits)
		fmt.Printf("Best:       %d\n", stats.BestHits)
		return nil
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) && len(sessions) > 0 {
		_, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			height = 24
		}
		return tui.RunHistory(sessions, height)
	}

	fmt.Print(tui.RenderHistory(sessions))
	return nil
}
