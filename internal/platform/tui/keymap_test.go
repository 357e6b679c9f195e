package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{"a", runeKey('a'), core.ActionMoveLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{"l", runeKey('l'), core.ActionMoveRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMoveDown, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"w", runeKey('w'), core.ActionRotate, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)

	if !frame.Has(core.ActionMoveLeft) || !frame.Has(core.ActionRotate) {
		t.Errorf("Expected left and rotate in frame, got %v", frame.Actions)
	}
	if frame.Has(core.ActionHardDrop) {
		t.Error("Unexpected hard drop in frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.expected)
		}
	}
}
