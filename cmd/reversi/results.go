package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/match"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished games and statistics",
	Long: `Display the most recent games and overall statistics.

Examples:
  reversi results
  reversi results --limit 5
  reversi results --player Ada
  reversi results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file search and flag
overrides, as YAML. Redirect it to ~/.reversi/config.yaml to customize.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	resultsCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show games with this player")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored games")
}

func runResults(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig(cmd)

	// Open results storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	var records []storage.GameRecord
	if flagPlayer != "" {
		records, err = store.PlayerResults(flagPlayer, flagLimit)
	} else {
		records, err = store.RecentResults(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	printResults(os.Stdout, records, stats)
}

// printResults writes the results table and statistics.
func printResults(w io.Writer, records []storage.GameRecord, stats *storage.Stats) {
	fmt.Fprintln(w, "Recent Games")
	fmt.Fprintln(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'reversi play' to record the first game!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-16s  %-12s  %-12s  %-7s  %s\n", "Date", "Black", "White", "Score", "Result")
	fmt.Fprintf(w, "  %-16s  %-12s  %-12s  %-7s  %s\n", "----", "-----", "-----", "-----", "------")

	for _, r := range records {
		fmt.Fprintf(w, "  %-16s  %-12s  %-12s  %-7s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.BlackName,
			r.WhiteName,
			fmt.Sprintf("%d-%d", r.BlackCount, r.WhiteCount),
			outcome(r),
		)
	}

	if stats == nil || stats.Games == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Black wins: %d  White wins: %d  Draws: %d  Abandoned: %d\n",
		stats.Games, stats.BlackWins, stats.WhiteWins, stats.Draws, stats.Abandoned)
	fmt.Fprintf(w, "Average margin: %.1f  Last played: %s\n",
		stats.AvgMargin, stats.LastPlayed.Format("2006-01-02 15:04"))
}

func outcome(r storage.GameRecord) string {
	if r.EndReason == match.ReasonAbandoned {
		return "abandoned"
	}
	if name := r.WinnerName(); name != "" {
		return name + " wins"
	}
	return "draw"
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig(cmd)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
