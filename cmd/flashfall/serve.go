package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"flashfall/internal/deck"
	"flashfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flashfall SSH server",
	Long: `Start an SSH server that serves a game to each connection.

Every connection gets an independent session with its own seed, so no
two players see the same card sequence. The deck and rules flags mirror
'flashfall play' and apply to all sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flashfall/host_key

Examples:
  flashfall serve                           # Listen on :23234 with auto-generated key
  flashfall serve --ssh :2222               # Listen on port 2222
  flashfall serve --deck welsh-numbers      # Serve a specific deck
  flashfall serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")

	// Session flags shared with play
	serveCmd.Flags().StringVar(&flagMode, "mode", "normal", "Play direction: normal, reverse, both")
	serveCmd.Flags().StringVar(&flagDeck, "deck", deck.DefaultID, "Built-in deck to serve")
	serveCmd.Flags().StringVar(&flagDeckFile, "deck-file", "", "Serve the deck from a YAML/CSV/TSV file instead")
	serveCmd.Flags().Float64Var(&flagSpeed, "speed", 1.0, "Fall speed multiplier")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := buildGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Session: tui.Options{
			Game:     gameCfg,
			TickRate: flagFPS,
		},
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting flashfall SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
