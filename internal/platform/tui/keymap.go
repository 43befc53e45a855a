package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionRetry
	ActionContinue
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a semantic action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "w", "up", "k": // vim-style k for up
		return ActionUp
	case "s", "down", "j": // vim-style j for down
		return ActionDown
	case "enter", " ":
		return ActionConfirm
	case "b", "esc":
		return ActionBack
	case "r":
		return ActionRetry
	case "c":
		return ActionContinue
	}
	return ActionNone
}

// ButtonIndex maps a digit key to a zero-based board button, or ok=false
// for any other key.
func ButtonIndex(key string) (int, bool) {
	switch key {
	case "1", "2", "3", "4":
		return int(key[0] - '1'), true
	}
	return 0, false
}
