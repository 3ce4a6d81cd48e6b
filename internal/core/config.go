package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for tick-rate conversions and deterministic simulation.
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
	Phase      string // Current phase name, for display and logging
	Score      int    // Current score
	GameOver   bool   // Whether the run has ended
	Paused     bool   // Whether the game is paused
	AcceptText bool   // Whether printable keys should be routed as text
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues that fired.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// RunSummary describes a finished run, for the session history.
type RunSummary struct {
	Score     int
	Coins     int
	Distance  int
	League    string
	Skills    int
	HighScore int
}
