package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hypermaze/internal/config"
	"github.com/vovakirdan/hypermaze/internal/maze"
	"github.com/vovakirdan/hypermaze/internal/platform/tui"
	"github.com/vovakirdan/hypermaze/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a maze variant",
	Long: `Start a maze run with the specified variant.

Variants:
  classic - 5x5x5x5 grid, traps are fixed: a cell whose coordinate sum
            is prime is always lethal
  flux    - 4x4x4x4 grid, the trap field shifts every turn; the 'view'
            and 'map' commands show what you have learned so far

Type commands at the prompt: xp/xn/yp/yn/zp/zn/wp/wn to move, 'help'
for the full reference, 'exit' to give up.

Examples:
  hypermaze play flux
  hypermaze play classic
  hypermaze play flux --config ./my-hypermaze.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := args[0]

	variant, err := maze.VariantByID(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'hypermaze list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size for layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the session
	runErr := tui.Run(variant, cfg, store, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running maze: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Println("Thanks for playing hypermaze.")
}
