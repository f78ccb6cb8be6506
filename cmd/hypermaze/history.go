package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hypermaze/internal/platform/tui"
	"github.com/vovakirdan/hypermaze/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs and stats",
	Long: `Browse recorded maze runs per variant: outcome, turns taken, and
cells explored, plus aggregate win/loss stats.

Examples:
  hypermaze history
  hypermaze history --db ./runs.db`,
	Run: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunHistory(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}
