package core

// RuntimeConfig contains host parameters passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState summarizes the simulation for the platform layer.
type GameState struct {
	Tick        uint64 // Ticks simulated since reset
	Defeated    int    // Enemies removed after being hit
	Projectiles int    // Live projectiles in the world
	Charges     int    // Remaining jump charges
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
