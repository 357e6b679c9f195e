package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether a winning tile was reached (meaningful once GameOver)
	MaxTile  int  // Highest tile value on the board
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLocked EventKind = iota + 1
	EventMerged
	EventFreeTilesRemoved
	EventRowsCleared
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLocked:
		return "locked"
	case EventMerged:
		return "merged"
	case EventFreeTilesRemoved:
		return "free_tiles_removed"
	case EventRowsCleared:
		return "rows_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event describes one occurrence within a tick.
// Count is the number of merges, tiles or rows involved; Points is the score gained.
type Event struct {
	Kind   EventKind
	Count  int
	Points int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
