package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkuzn/isect/internal/storage"
)

var (
	flagHistoryKind  string
	flagHistoryLimit int
	flagClearKind    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved query history",
	Long: `Display recently saved intersection queries, newest first.

Queries are recorded by the --save flag of the lines, rect and scene
commands.

Examples:
  isect history
  isect history --kind lines --limit 5
  isect history clear --kind rect`,
	Run: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete saved query history",
	Run:   runHistoryClear,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryKind, "kind", "", "Only show queries of one kind (lines, rect, scene)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of entries to show")
	historyClearCmd.Flags().StringVar(&flagClearKind, "kind", "", "Only clear queries of one kind (default: all)")
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.QueryEntry
	if flagHistoryKind != "" {
		entries, err = store.QueriesByKind(flagHistoryKind, flagHistoryLimit)
	} else {
		entries, err = store.RecentQueries(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No queries recorded yet.")
		fmt.Println()
		fmt.Println("Run a command with --save to record it, e.g.:")
		fmt.Println("  isect lines 0,0 4,4 0,4 4,0 --save")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-5s  %-40s  %s\n", "Kind", "Hits", "Input", "Date")
	fmt.Printf("  %-6s  %-5s  %-40s  %s\n", "----", "----", "-----", "----")

	for _, e := range entries {
		input := e.Input
		if len(input) > 40 {
			input = input[:37] + "..."
		}
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6s  %-5d  %-40s  %s\n", e.Kind, e.Hits, input, dateStr)
		if e.Points != "" {
			fmt.Printf("          -> %s\n", e.Points)
		}
	}

	// Show per-kind summary when filtered
	if flagHistoryKind != "" {
		stats, err := store.Stats(flagHistoryKind)
		if err == nil {
			fmt.Println()
			fmt.Printf("Total: %d %s queries, %d found intersections.\n",
				stats.Count, stats.Kind, stats.WithHits)
		}
	}
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearHistory(flagClearKind); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
		os.Exit(1)
	}

	if flagClearKind == "" {
		fmt.Println("History cleared.")
	} else {
		fmt.Printf("History cleared for kind %q.\n", flagClearKind)
	}
}
