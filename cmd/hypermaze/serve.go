package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hypermaze/internal/maze"
	"github.com/vovakirdan/hypermaze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagVariant     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hypermaze SSH server",
	Long: `Start an SSH server that drops each connecting user into their own
maze run. Runs are recorded per-server (all users share the history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hypermaze/host_key

Examples:
  hypermaze serve                           # Listen on :23234
  hypermaze serve --ssh :2222               # Listen on port 2222
  hypermaze serve --variant classic         # Serve the classic variant
  hypermaze serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagVariant, "variant", "flux", "Maze variant to serve")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if !maze.VariantExists(flagVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagVariant)
		fmt.Fprintln(os.Stderr, "Run 'hypermaze list' to see available variants.")
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		VariantID:   flagVariant,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hypermaze SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
