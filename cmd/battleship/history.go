package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryAll   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished matches",
	Long: `Display the most recent matches and the win/loss record.

By default only matches of the current user are shown.

Examples:
  battleship history
  battleship history --limit 5
  battleship history --all
  battleship history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "Show matches of every player")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the shown player's matches")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	player := currentUser()
	if flagHistoryAll {
		player = ""
	}

	if flagHistoryClear {
		if err := store.ClearMatches(player); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Match history cleared.")
		return nil
	}

	matches, err := store.RecentMatches(player, flagHistoryLimit)
	if err != nil {
		return err
	}
	summary, err := store.Summary(player)
	if err != nil {
		return err
	}

	printHistory(cmd.OutOrStdout(), player, matches, summary, time.Now())
	return nil
}

// printHistory writes the history table.
func printHistory(w io.Writer, player string, matches []storage.MatchRecord, summary storage.Summary, now time.Time) {
	title := "Match History"
	if player != "" {
		title += " - " + player
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'battleship console' or 'battleship play' to record your first match!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-16s  %-10s  %-9s  %-6s  %-5s  %-8s  %s\n", "When", "Player", "Result", "Board", "Moves", "Accuracy", "Time")
	fmt.Fprintf(w, "  %-16s  %-10s  %-9s  %-6s  %-5s  %-8s  %s\n", "----", "------", "------", "-----", "-----", "--------", "----")

	for _, rec := range matches {
		row := tui.HistoryRow(rec, now)
		fmt.Fprintf(w, "  %-16s  %-10s  %-9s  %-6s  %-5s  %-8s  %s\n", row[0], rec.Player, row[1], row[2], row[3], row[4], row[5])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.SummaryLine(summary))
	if summary.Played > 0 {
		fmt.Fprintf(w, "Win rate: %s%%\n", humanize.FtoaWithDigits(winRate(summary), 1))
	}
}

// winRate is the share of completed matches the human won, in percent.
func winRate(s storage.Summary) float64 {
	completed := s.Won + s.Lost
	if completed == 0 {
		return 0
	}
	return float64(s.Won) * 100 / float64(completed)
}
