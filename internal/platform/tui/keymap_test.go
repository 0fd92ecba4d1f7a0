package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyWhilePlaying(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionPause},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionSubmit},
		// Letters must stay typable while playing
		{runeKey('r'), ActionNone},
		{runeKey('s'), ActionNone},
		{runeKey('q'), ActionNone},
		{runeKey('x'), ActionNone},
	}

	for _, c := range cases {
		if got := km.MapKey(c.msg, false); got != c.want {
			t.Errorf("MapKey(%q, playing) = %d, want %d", c.msg.String(), got, c.want)
		}
	}
}

func TestMapKeyAtGameOver(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{runeKey('r'), ActionRestart},
		{runeKey('s'), ActionSaveMissed},
		{runeKey('q'), ActionQuit},
		{runeKey('x'), ActionNone},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
	}

	for _, c := range cases {
		if got := km.MapKey(c.msg, true); got != c.want {
			t.Errorf("MapKey(%q, game over) = %d, want %d", c.msg.String(), got, c.want)
		}
	}
}
