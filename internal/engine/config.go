package engine

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel wrapped by every ConfigError.
var ErrConfig = errors.New("invalid game config")

// Config holds the parameters of one game. It is immutable once the game starts.
type Config struct {
	Width            int
	Height           int
	MineCount        int
	TimeLimitSeconds int // 0 means unlimited

	// Seed for mine placement. A seed of 0 means a random seed will be generated.
	Seed int64
}

// TotalCells returns Width*Height.
func (c Config) TotalCells() int {
	return c.Width * c.Height
}

// Validate checks the config and returns a *ConfigError describing the first problem.
func (c Config) Validate() error {
	var reason string
	switch {
	case c.Width <= 0:
		reason = "width must be positive"
	case c.Height <= 0:
		reason = "height must be positive"
	case c.MineCount < 0:
		reason = "mine count must not be negative"
	case c.TimeLimitSeconds < 0:
		reason = "time limit must not be negative"
	case c.MineCount >= c.TotalCells():
		reason = fmt.Sprintf("too many mines: %d mines need more than %d cells", c.MineCount, c.TotalCells())
	default:
		return nil
	}
	return &ConfigError{Config: c, Reason: reason}
}

// ConfigError reports a config that cannot produce a board.
type ConfigError struct {
	Config Config
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%dx%d, %d mines, limit %ds): %s",
		ErrConfig, e.Config.Width, e.Config.Height, e.Config.MineCount, e.Config.TimeLimitSeconds, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
