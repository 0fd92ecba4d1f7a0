// flashfall is a terminal typing game for drilling flashcards.
//
// Usage:
//
//	flashfall play               - Play in the current terminal
//	flashfall decks [file...]    - List built-in decks or preview deck files
//	flashfall config             - Print the default gameplay rules as YAML
//	flashfall serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flashfall",
	Short: "Flashfall - catch falling flashcards by typing the translation",
	Long: `Flashfall is a terminal typing game: flashcards fall down the board and
you clear them by typing the translation before they reach the bottom.
Each card that slips through costs a heart; matches unlock more of the deck.

Available commands:
  play    - Start a game in the current terminal
  decks   - List built-in decks or preview deck files
  config  - Print the default gameplay rules as YAML
  serve   - Start SSH server for remote play

Examples:
  flashfall play
  flashfall play --deck welsh-numbers --mode reverse
  flashfall play --deck-file ./kitchen.csv --missed-out ./missed.csv
  flashfall decks
  flashfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
