package service

import "github.com/zappabad/bullrush/internal/game"

// Config holds configuration for a game session.
type Config struct {
	// Game is the starting configuration for each run.
	Game game.Config
	// Seed seeds the session's random source; 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Game: game.DefaultConfig(),
	}
}
