package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Down     key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// DefaultGameKeyMap returns arrow, WASD and vim-style bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "soft drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "rotate"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Down, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Down},
		{k.HardDrop, k.Pause, k.Restart, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionMoveDown, false
	case key.Matches(msg, km.keys.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, km.keys.HardDrop):
		return core.ActionHardDrop, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
