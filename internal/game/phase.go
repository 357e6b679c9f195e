package game

// Phase is the stage of the spawn/fall/lock/resolve cycle the game is in.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseResolving
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseResolving:
		return "resolving"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
