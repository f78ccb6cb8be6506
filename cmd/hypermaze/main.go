// hypermaze is a terminal maze game set in a 4-dimensional grid.
//
// Usage:
//
//	hypermaze list               - List available maze variants
//	hypermaze play <variant>     - Play a maze
//	hypermaze history            - Show past runs and stats
//	hypermaze serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.hypermaze/runs.db)
//	--config <path>  - Set config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hypermaze",
	Short: "hypermaze - Escape a 4D maze in your terminal",
	Long: `hypermaze drops you at a random cell of a 4-dimensional grid.
Type movement commands to reach the center cell and escape; step on a
trap cell and the maze keeps you.

Available commands:
  list     - Show all maze variants
  play     - Play a specific variant
  history  - View past runs and stats
  serve    - Start SSH server for remote play

Examples:
  hypermaze list
  hypermaze play flux
  hypermaze play classic
  hypermaze history
  hypermaze serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hypermaze/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
