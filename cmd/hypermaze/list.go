package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hypermaze/internal/maze"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all maze variants",
	Long:  `Shows the maze variants you can play.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := maze.Variants()

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Grid", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "-----")

	// Print variants
	for _, v := range variants {
		grid := fmt.Sprintf("%d^4", v.DefaultSize)
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, v.ID, grid, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'hypermaze play <id>' to play a variant.")
}
