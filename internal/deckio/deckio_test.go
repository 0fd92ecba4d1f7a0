package deckio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flashfall/internal/deck"
)

const yamlDoc = `id: test-welsh
name: Test Welsh
cards:
  - front: Bore da
    back: Good morning
  - front: Diolch
    back: Thank you / Thanks
  - front: Broken
  - back: Also broken
`

func TestParseYAML(t *testing.T) {
	df, err := ParseYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if df.ID != "test-welsh" || df.Name != "Test Welsh" {
		t.Errorf("metadata mismatch: %q / %q", df.ID, df.Name)
	}
	if len(df.Pairs) != 2 {
		t.Fatalf("pair count mismatch: %d vs 2 (malformed cards must be skipped)", len(df.Pairs))
	}
	if df.Pairs[1].Back != "Thank you / Thanks" {
		t.Errorf("pair content mismatch: %+v", df.Pairs[1])
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	if _, err := ParseYAML([]byte("cards: {not a list}")); err == nil {
		t.Error("invalid yaml should fail")
	}
}

func TestParseCSV(t *testing.T) {
	data := strings.Join([]string{
		"# Welsh practice deck",
		"front,back",
		"Bore da,Good morning",
		"Diolch,Thank you / Thanks",
		"only one column",
		"  ,empty front",
		"Nos da,Good night",
	}, "\n")

	df, err := ParseCSV([]byte(data), ',')
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(df.Pairs) != 3 {
		t.Fatalf("pair count mismatch: %d vs 3", len(df.Pairs))
	}
	if df.Pairs[0].Front != "Bore da" || df.Pairs[2].Back != "Good night" {
		t.Errorf("pair content mismatch: %+v", df.Pairs)
	}
}

func TestParseTSV(t *testing.T) {
	data := "Croeso\tWelcome\nHwyl fawr\tGoodbye / Bye\n"

	df, err := ParseCSV([]byte(data), '\t')
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(df.Pairs) != 2 {
		t.Fatalf("pair count mismatch: %d vs 2", len(df.Pairs))
	}
	if df.Pairs[1].Back != "Goodbye / Bye" {
		t.Errorf("pair content mismatch: %+v", df.Pairs[1])
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	df, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile yaml: %v", err)
	}
	if df.ID != "test-welsh" {
		t.Errorf("id mismatch: %q", df.ID)
	}
	if df.Path != yamlPath {
		t.Errorf("path mismatch: %q", df.Path)
	}

	// CSV decks take their id from the file name
	csvPath := filepath.Join(dir, "kitchen-welsh.csv")
	if err := os.WriteFile(csvPath, []byte("Caws,Cheese\nBara,Bread\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	df, err = LoadFile(csvPath)
	if err != nil {
		t.Fatalf("LoadFile csv: %v", err)
	}
	if df.ID != "kitchen-welsh" || df.Name != "kitchen-welsh" {
		t.Errorf("derived metadata mismatch: %q / %q", df.ID, df.Name)
	}
	if len(df.Pairs) != 2 {
		t.Errorf("pair count mismatch: %d vs 2", len(df.Pairs))
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	badPath := filepath.Join(dir, "deck.txt")
	if err := os.WriteFile(badPath, []byte("Caws,Cheese\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(badPath); err == nil {
		t.Error("unsupported extension should fail")
	}
}

func TestDeckFileBuild(t *testing.T) {
	df := DeckFile{
		Path:  "x.csv",
		Pairs: []deck.Pair{{Front: "Un", Back: "One"}},
	}
	d, err := df.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("entry count mismatch: %d vs 1", d.Len())
	}

	if _, err := (DeckFile{Path: "empty.csv"}).Build(); err == nil {
		t.Error("empty deck file should fail to build")
	}
}

func TestWriteMissedDedup(t *testing.T) {
	pairs := []deck.Pair{
		{Front: "Diolch", Back: "Thank you / Thanks"},
		{Front: "Bore da", Back: "Good morning"},
		{Front: "Diolch", Back: "Thank you / Thanks"},
		{Front: "Diolch", Back: "Thank you / Thanks"},
	}

	var buf bytes.Buffer
	if err := WriteMissed(&buf, pairs); err != nil {
		t.Fatalf("WriteMissed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count mismatch: %d vs 3 (header + 2 unique)", len(lines))
	}
	if lines[0] != "front,back" {
		t.Errorf("header mismatch: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Diolch,") || !strings.HasPrefix(lines[2], "Bore da,") {
		t.Errorf("row order should follow first occurrence: %v", lines[1:])
	}

	// The export is itself loadable
	df, err := ParseCSV(buf.Bytes(), ',')
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(df.Pairs) != 2 {
		t.Errorf("round-trip pair count mismatch: %d vs 2", len(df.Pairs))
	}
}

func TestSaveMissed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missed.csv")
	pairs := []deck.Pair{{Front: "Nos da", Back: "Good night"}}

	if err := SaveMissed(path, pairs); err != nil {
		t.Fatalf("SaveMissed: %v", err)
	}
	df, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(df.Pairs) != 1 || df.Pairs[0].Front != "Nos da" {
		t.Errorf("saved deck mismatch: %+v", df.Pairs)
	}
}
