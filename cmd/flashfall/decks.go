package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"flashfall/internal/deck"
	"flashfall/internal/deckio"
)

// maxPreviewEntries caps how many cards a deck-file preview prints.
const maxPreviewEntries = 10

var decksCmd = &cobra.Command{
	Use:   "decks [file...]",
	Short: "List built-in decks or preview deck files",
	Long: `Without arguments, lists the built-in decks.
With file arguments, parses each deck file and previews its cards along
with the answers the game will accept, so custom decks can be checked
before playing them.

Supported deck file formats: .yaml/.yml, .csv, .tsv

Examples:
  flashfall decks
  flashfall decks ./kitchen.csv ./verbs.yaml`,
	Run: runDecks,
}

func runDecks(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		listBuiltinDecks()
		return
	}

	failed := false
	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := previewDeckFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func listBuiltinDecks() {
	decks := deck.List()

	if len(decks) == 0 {
		fmt.Println("No decks available.")
		return
	}

	fmt.Println("Built-in decks:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range decks {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Cards", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print decks
	for _, d := range decks {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, d.ID, d.Size, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flashfall play --deck <id>' to play a deck.")
}

// previewDeckFile parses a deck file and prints its cards with the
// accepted answer variants.
func previewDeckFile(path string) error {
	df, err := deckio.LoadFile(path)
	if err != nil {
		return err
	}
	d, err := df.Build()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d cards", df.Name, d.Len())
	if d.Len() < len(df.Pairs) {
		fmt.Printf(" (%d rows skipped)", len(df.Pairs)-d.Len())
	}
	fmt.Println()

	maxFront := 0
	for _, e := range d.Entries() {
		if len(e.RawFront) > maxFront {
			maxFront = len(e.RawFront)
		}
	}

	for i, e := range d.Entries() {
		if i >= maxPreviewEntries {
			fmt.Printf("  ... and %d more\n", d.Len()-maxPreviewEntries)
			break
		}
		line := fmt.Sprintf("  %-*s  %s", maxFront, e.RawFront, e.RawBack)
		if len(e.BackAnswers) > 1 {
			line += fmt.Sprintf("  (accepts: %s)", strings.Join(e.BackAnswers, ", "))
		}
		fmt.Println(line)
	}

	return nil
}
