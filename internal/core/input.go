package core

// Action represents a semantic game action, abstracted from physical key presses.
// Both the terminal and the desktop shells translate their input into actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A, H
	ActionMoveRight        // Right arrow, D, L
	ActionMoveDown         // Down arrow, S, J - soft drop by one row
	ActionRotate           // Up arrow, W, K - rotate clockwise
	ActionHardDrop         // Space - drop and lock immediately
	ActionPause            // P, Escape - toggle pause
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveDown:
		return "MoveDown"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
