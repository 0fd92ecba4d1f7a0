package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a high-level control derived from keyboard input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionSubmit
	ActionRestart
	ActionSaveMissed
)

// KeyMapper translates Bubble Tea key messages to control actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey classifies a key for the given game phase. Almost every key must
// reach the answer field, so only a handful of control keys map to actions
// while playing. The letter shortcuts (r, s, q) are live only on the
// game-over screen where the input field is inert.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, gameOver bool) Action {
	switch msg.String() {
	case "ctrl+c":
		return ActionQuit
	case "esc":
		return ActionPause
	case "enter":
		return ActionSubmit
	}

	if gameOver {
		switch msg.String() {
		case "r":
			return ActionRestart
		case "s":
			return ActionSaveMissed
		case "q":
			return ActionQuit
		}
	}

	return ActionNone
}
