package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"flashfall/internal/core"
	"flashfall/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// Styles for the chrome lines rendered below the board buffer.
var (
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleNote      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleHelp      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Card box geometry in screen cells. Cards keep a readable fixed height
// while their width follows the label.
const (
	cardBoxHeight   = 3
	minCardBoxWidth = 8
)

// Minimum terminal size for the board to be playable.
const (
	minBoardCols = 24
	minBoardRows = 9
)

// drawBoard renders one frame of the game onto the screen buffer.
// The simulation runs in its own pixel space, so every position is scaled
// onto the cell grid here.
func drawBoard(s *core.Screen, g *game.Game, canSave bool) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w < minBoardCols || h < minBoardRows {
		s.DrawTextCentered(h/2, "terminal too small")
		return
	}

	s.DrawBox(core.NewRect(0, 0, w, h))
	drawHUD(s, g)

	for _, c := range g.Cards() {
		drawCard(s, g, c)
	}

	switch {
	case g.IsGameOver():
		drawGameOver(s, g, canSave)
	case g.IsPaused():
		s.DrawTextCenteredColor(h/2, "PAUSED", core.ColorBrightYellow)
	}
}

// drawHUD draws score, hearts, and unlock progress on the row under the
// top border.
func drawHUD(s *core.Screen, g *game.Game) {
	s.DrawText(2, 1, fmt.Sprintf("Score: %d", g.Score()))

	hearts := strings.Repeat("♥", g.Health()) +
		strings.Repeat("♡", g.MaxHealth()-g.Health())
	s.DrawTextColor((s.Width()-utf8.RuneCountInString(hearts))/2, 1, hearts, core.ColorBrightRed)

	progress := fmt.Sprintf("Cards: %d/%d", len(g.UnlockedCards()), g.DeckSize())
	s.DrawText(s.Width()-len(progress)-2, 1, progress)
}

// drawCard maps a card from board pixels to screen cells and draws it as
// a boxed label. Falling cards show the prompt side; flipped cards reveal
// the answer in red for the linger period.
func drawCard(s *core.Screen, g *game.Game, c game.CardView) {
	label := c.FrontText
	color := core.ColorCyan
	if c.Flipped {
		label = c.BackText
		color = core.ColorRed
	}

	innerW := s.Width() - 2
	boxW := core.Clamp(utf8.RuneCountInString(label)+4, minCardBoxWidth, innerW)
	label = truncate(label, boxW-4)

	// The engine clamps positions to [0, board - card], so mapping that
	// span onto the free cell range keeps boxes inside the border and
	// lands resting cards exactly on the bottom row.
	rules := g.Rules()
	travelX := innerW - boxW
	travelY := s.Height() - 3 - cardBoxHeight
	bx := 1 + scale(c.X, g.BoardWidth()-rules.Card.Width, travelX)
	by := 2 + scale(c.Y, g.BoardHeight()-rules.Card.Height, travelY)

	s.DrawBoxColor(core.NewRect(bx, by, boxW, cardBoxHeight), color)
	s.DrawTextColor(bx+2, by+1, label, color)
}

// drawGameOver draws the end-of-run overlay on top of the frozen board.
func drawGameOver(s *core.Screen, g *game.Game, canSave bool) {
	cy := s.Height() / 2
	s.DrawTextCenteredColor(cy-2, "GAME OVER", core.ColorBrightRed)
	s.DrawTextCentered(cy-1, fmt.Sprintf("Final score: %d", g.Score()))
	s.DrawTextCentered(cy, fmt.Sprintf("Missed cards: %d", len(g.MissedCards())))

	help := "r: restart | q: quit"
	if canSave {
		help = "r: restart | s: save missed | q: quit"
	}
	s.DrawTextCentered(cy+2, help)
}

// scale maps a position in [0, span] board pixels onto [0, cells].
func scale(pos, span float64, cells int) int {
	if span <= 0 || cells <= 0 {
		return 0
	}
	return core.Clamp(int(pos/span*float64(cells)+0.5), 0, cells)
}

// truncate shortens a label to at most width runes.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
