package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Player profile the session plays as. Level 0 means a fresh profile.
	PlayerName  string
	PlayerLevel int
	PlayerScore int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    60,
		Seed:        0, // 0 means use current time in platform layer
		PlayerName:  "player",
		PlayerLevel: 1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Cumulative profile score
	Earned   int    // Score earned in the current session
	Level    int    // Current player level
	Phase    string // Name of the active play phase
	GameOver bool   // Whether the session has ended (defeat or checkpoint)
	Paused   bool   // Whether the game is paused
	Exit     bool   // Whether the player asked to leave to the outer menu
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// PhaseChanged is set when the tick moved the game into a new phase.
	// The platform uses it to persist the player profile.
	PhaseChanged bool
}
