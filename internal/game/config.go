package game

import "github.com/samdwyer/minesweeper/internal/difficulty"

// Config holds game configuration options.
type Config struct {
	// Seed for mine placement. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated for every game.
	Seed int64

	// Difficulty is a preset ID or difficulty.CustomID.
	Difficulty string

	// Custom holds dimensions for the custom difficulty and an optional
	// mine count override for presets.
	Custom difficulty.Custom

	// TimeLimit in seconds; 0 means unlimited.
	TimeLimit int
}
