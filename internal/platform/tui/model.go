package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flashfall/internal/core"
	"flashfall/internal/deckio"
	"flashfall/internal/game"
)

// Options configures an interactive play session.
type Options struct {
	// Game is the engine configuration. A zero Seed is replaced with a
	// time-based seed so every session plays differently.
	Game game.Config

	// TickRate is the simulation and render rate in frames per second.
	TickRate int

	// ScreenW and ScreenH are the initial terminal dimensions. Bubble Tea
	// sends a resize message on startup, so these only shape the first frame.
	ScreenW, ScreenH int

	// MissedOut is where the game-over screen saves missed cards.
	// Empty disables saving.
	MissedOut string
}

// chromeRows is the number of terminal rows reserved below the board for
// the answer field and the status line.
const chromeRows = 2

// flashDuration is how long the incorrect-answer cue stays visible, in seconds.
const flashDuration = 0.6

// Model is the Bubble Tea model for a flashfall session.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	input     textinput.Model
	keys      *KeyMapper
	tickRate  int
	missedOut string
	lastTick  time.Time
	flash     float64 // seconds left on the incorrect-answer cue
	note      string  // one-line feedback on the game-over screen
	quitting  bool
}

// NewModel creates a new Bubble Tea model running one game.
func NewModel(opts Options) (Model, error) {
	// Use time-based seed if not specified
	if opts.Game.Seed == 0 {
		opts.Game.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 30
	}
	if opts.ScreenW <= 0 {
		opts.ScreenW = 80
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = 24
	}

	g, err := game.New(opts.Game)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "type the translation and press enter"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = inputWidth(opts.ScreenW)
	ti.Focus()

	return Model{
		game:      g,
		screen:    core.NewScreen(opts.ScreenW, max(1, opts.ScreenH-chromeRows)),
		input:     ti,
		keys:      NewKeyMapper(),
		tickRate:  opts.TickRate,
		missedOut: opts.MissedOut,
	}, nil
}

// inputWidth sizes the answer field to the terminal.
func inputWidth(screenW int) int {
	return core.Clamp(screenW-8, 16, 48)
}

// Init starts the tick loop and the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.tickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Control keys are intercepted; every
// other key flows into the answer field.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg, m.game.IsGameOver()) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionPause:
		if m.game.IsPaused() {
			m.game.Resume()
		} else {
			m.game.Pause()
		}
		return m, nil

	case ActionSubmit:
		return m.submit()

	case ActionRestart:
		m.game.Restart()
		m.input.SetValue("")
		m.flash = 0
		m.note = ""
		return m, nil

	case ActionSaveMissed:
		m.note = m.saveMissed()
		return m, nil
	}

	// The input field is inert on the game-over screen.
	if m.game.IsGameOver() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds the typed answer to the engine.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.game.IsGameOver() || m.game.IsPaused() {
		return m, nil
	}

	text := m.input.Value()
	if m.game.SubmitAnswer(text) {
		m.input.SetValue("")
		m.flash = 0
	} else if strings.TrimSpace(text) != "" {
		// Keep the text so a typo can be fixed, but flash the cue.
		m.flash = flashDuration
	}
	return m, nil
}

// saveMissed writes the missed cards to the configured output path and
// returns a one-line status for the game-over screen.
func (m Model) saveMissed() string {
	if m.missedOut == "" {
		return "saving disabled: run with --missed-out"
	}
	missed := m.game.MissedCards()
	if len(missed) == 0 {
		return "no missed cards to save"
	}
	if err := deckio.SaveMissed(m.missedOut, missed); err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	return fmt.Sprintf("missed cards saved to %s", m.missedOut)
}

// handleResize adjusts the board buffer to the new terminal size.
// The simulation runs in its own coordinate space, so resizing never
// resets the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(1, msg.Height-chromeRows))
	m.input.Width = inputWidth(msg.Width)
	return m, nil
}

// handleTick advances the simulation by the real elapsed wall-clock time.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 1.0 / float64(m.tickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	if dt > maxTickDelta {
		dt = maxTickDelta
	}

	m.game.Tick(dt)

	if m.flash > 0 {
		m.flash -= dt
		if m.flash < 0 {
			m.flash = 0
		}
	}

	return m, tickCmd(m.tickRate)
}

// View renders the board, the answer field, and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, m.game, m.missedOut != "")

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.inputLine())
	sb.WriteRune('\n')
	sb.WriteString(m.statusLine())
	return sb.String()
}

// inputLine renders the answer field with the incorrect-answer cue.
func (m Model) inputLine() string {
	line := m.input.View()
	if m.flash > 0 {
		line += "  " + styleIncorrect.Render("✗ not quite")
	}
	return line
}

// statusLine renders context-sensitive key help.
func (m Model) statusLine() string {
	if m.note != "" {
		return styleNote.Render(m.note)
	}
	switch {
	case m.game.IsGameOver():
		help := "r: restart | q: quit"
		if m.missedOut != "" {
			help = "r: restart | s: save missed | q: quit"
		}
		return styleHelp.Render(help)
	case m.game.IsPaused():
		return styleHelp.Render("esc: resume | ctrl+c: quit")
	default:
		return styleHelp.Render("enter: submit | esc: pause | ctrl+c: quit")
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
