package tetris

// Phase is the lifecycle state of the engine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePaused
	PhaseRunning
	PhaseEnded

	phaseCount
)

// active reports whether the worker loops should keep going.
func (p Phase) active() bool {
	return p == PhaseRunning || p == PhasePaused
}

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePaused:
		return "paused"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
