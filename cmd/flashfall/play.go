package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flashfall/internal/config"
	"flashfall/internal/deck"
	"flashfall/internal/deckio"
	"flashfall/internal/game"
	"flashfall/internal/platform/tui"
)

var (
	flagMode       string
	flagDeck       string
	flagDeckFile   string
	flagSpeed      float64
	flagDifficulty string
	flagConfig     string
	flagMissedOut  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Cards fall from the top of the board. Type the translation of any card
and press Enter to clear it before it reaches the bottom; each card that
slips through flips over, shows its answer, and costs a heart.

Controls:
  Enter      - Submit answer
  Esc        - Pause/resume
  R          - Restart (after game over)
  S          - Save missed cards (after game over, needs --missed-out)
  Ctrl+C     - Quit

Difficulty options:
  easy   - More hearts, slower cards, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer hearts, faster cards, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flashfall play
  flashfall play --deck welsh-numbers
  flashfall play --mode reverse --difficulty hard
  flashfall play --deck-file ./kitchen.csv --missed-out ./missed.csv
  flashfall play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "normal", "Play direction: normal, reverse, both")
	playCmd.Flags().StringVar(&flagDeck, "deck", deck.DefaultID, "Built-in deck to play")
	playCmd.Flags().StringVar(&flagDeckFile, "deck-file", "",
		"Load the deck from a file instead ("+strings.Join(deckio.SupportedExtensions(), ", ")+")")
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 1.0, "Fall speed multiplier")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagMissedOut, "missed-out", "", "Path for saving missed cards as CSV")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := buildGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game:      gameCfg,
		TickRate:  flagFPS,
		ScreenW:   width,
		ScreenH:   height,
		MissedOut: flagMissedOut,
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// buildGameConfig resolves the deck and rules flags shared by play and
// serve into an engine configuration.
func buildGameConfig() (game.Config, error) {
	var pairs []deck.Pair
	if flagDeckFile != "" {
		df, err := deckio.LoadFile(flagDeckFile)
		if err != nil {
			return game.Config{}, err
		}
		pairs = df.Pairs
	} else {
		var ok bool
		pairs, ok = deck.Pairs(flagDeck)
		if !ok {
			return game.Config{}, fmt.Errorf("unknown deck %q (run 'flashfall decks' to see what is available)", flagDeck)
		}
	}

	mode, err := game.ParseMode(flagMode)
	if err != nil {
		return game.Config{}, err
	}

	rules, err := config.Load(flagConfig)
	if err != nil {
		return game.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return game.Config{}, err
	}
	if preset != "" {
		config.ApplyPreset(&rules, preset)
	}

	return game.Config{
		BoardWidth:      rules.Board.Width,
		BoardHeight:     rules.Board.Height,
		Seed:            flagSeed,
		Mode:            mode,
		SpeedMultiplier: flagSpeed,
		Deck:            pairs,
		Rules:           rules,
	}, nil
}
