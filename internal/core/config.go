package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Displayed score
	Stones    int    // Stones destroyed
	MovesLeft int    // Swaps left, -1 when unlimited
	MovesUsed int
	Level     string // Level ID being played
	GameOver  bool
	Paused    bool
	Busy      bool // Board is animating and ignores commands
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
