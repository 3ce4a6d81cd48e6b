package cyclist

// Phase is a state of the game state machine.
type Phase int

const (
	PhaseStart       Phase = iota // Title screen, waiting for start input
	PhasePlaying                  // Simulation running
	PhasePaused                   // Simulation frozen by the player
	PhaseQuizGate                 // Break quiz shown, simulation frozen
	PhaseBreakScreen              // Wrong answer, take-a-break screen
	PhaseGameOver                 // All lives lost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseQuizGate:
		return "quiz"
	case PhaseBreakScreen:
		return "break"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
