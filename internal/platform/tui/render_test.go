package tui

import (
	"strings"
	"testing"

	"flashfall/internal/core"
	"flashfall/internal/deck"
	"flashfall/internal/game"
)

func testGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Config{
		BoardWidth:      800,
		BoardHeight:     600,
		Seed:            7,
		SpeedMultiplier: 1,
		Deck: []deck.Pair{
			{Front: "Un", Back: "One"},
			{Front: "Dau", Back: "Two"},
		},
	})
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	return g
}

func TestScale(t *testing.T) {
	cases := []struct {
		pos, span float64
		cells     int
		want      int
	}{
		{0, 550, 16, 0},
		{550, 550, 16, 16},
		{275, 550, 16, 8},
		{550, 0, 16, 0},
		{100, 550, 0, 0},
	}

	for _, c := range cases {
		if got := scale(c.pos, c.span, c.cells); got != c.want {
			t.Errorf("scale(%v, %v, %d) = %d, want %d", c.pos, c.span, c.cells, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hi", 0, ""},
	}

	for _, c := range cases {
		if got := truncate(c.in, c.width); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestDrawBoardShowsHUDAndCard(t *testing.T) {
	g := testGame(t)
	s := core.NewScreen(60, 20)

	drawBoard(s, g, false)

	out := s.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD score missing:\n%s", out)
	}
	if !strings.Contains(out, "Cards: 2/2") {
		t.Errorf("HUD unlock progress missing:\n%s", out)
	}

	prompt := g.Cards()[0].FrontText
	if !strings.Contains(out, prompt) {
		t.Errorf("card prompt %q not drawn:\n%s", prompt, out)
	}
}

func TestDrawBoardPausedOverlay(t *testing.T) {
	g := testGame(t)
	g.Pause()

	s := core.NewScreen(60, 20)
	drawBoard(s, g, false)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Errorf("paused overlay missing:\n%s", s.String())
	}
}

func TestDrawBoardGameOverOverlay(t *testing.T) {
	g, err := game.New(game.Config{
		BoardWidth:      800,
		BoardHeight:     600,
		Seed:            3,
		SpeedMultiplier: 1,
		MaxHealth:       1,
		Deck:            []deck.Pair{{Front: "Un", Back: "One"}},
	})
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	for i := 0; i < 200 && !g.IsGameOver(); i++ {
		g.Tick(0.25)
	}
	if !g.IsGameOver() {
		t.Fatal("game did not reach game over")
	}

	s := core.NewScreen(60, 20)
	drawBoard(s, g, true)

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("game over banner missing:\n%s", out)
	}
	if !strings.Contains(out, "Final score: 0") {
		t.Errorf("final score missing:\n%s", out)
	}
	if !strings.Contains(out, "s: save missed") {
		t.Errorf("save hint missing:\n%s", out)
	}
}

func TestDrawBoardTooSmall(t *testing.T) {
	g := testGame(t)
	s := core.NewScreen(30, 4)

	drawBoard(s, g, false)

	out := s.String()
	if !strings.Contains(out, "terminal too small") {
		t.Errorf("small-terminal notice missing:\n%s", out)
	}
	if strings.Contains(out, "Score:") {
		t.Errorf("HUD should not render on a tiny screen:\n%s", out)
	}
}

func TestDrawCardFlippedShowsAnswer(t *testing.T) {
	g, err := game.New(game.Config{
		BoardWidth:      800,
		BoardHeight:     600,
		Seed:            3,
		SpeedMultiplier: 1,
		Deck:            []deck.Pair{{Front: "Un", Back: "One"}},
	})
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	// Run until the opening card crosses the flip line.
	for i := 0; i < 200; i++ {
		g.Tick(0.1)
		cards := g.Cards()
		if len(cards) > 0 && cards[0].Flipped {
			break
		}
	}

	var flipped *game.CardView
	for _, c := range g.Cards() {
		if c.Flipped {
			flipped = &c
			break
		}
	}
	if flipped == nil {
		t.Fatal("no card flipped")
	}

	s := core.NewScreen(60, 20)
	drawBoard(s, g, false)

	if !strings.Contains(s.String(), flipped.BackText) {
		t.Errorf("flipped card should reveal %q:\n%s", flipped.BackText, s.String())
	}
}
