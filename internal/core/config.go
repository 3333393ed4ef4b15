package core

import "time"

// RuntimeConfig contains configuration passed to a match at initialization.
// Front ends use this to size the screen and seed the RNG.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Seed    int64         // RNG seed for reproducible fleets and AI shots
	AIDelay time.Duration // Pause before an automated shot is shown (TUI only)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		AIDelay: 600 * time.Millisecond,
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
