package core

// RuntimeConfig contains the host parameters passed to the simulation at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for quiz selection; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for a 20ms timer.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0,
	}
}
