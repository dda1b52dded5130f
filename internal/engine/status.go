package engine

// Status represents where a game is in its lifecycle.
type Status int

const (
	// InProgress accepts reveal, flag and tick operations.
	InProgress Status = iota
	// Won means every safe cell has been revealed. Terminal.
	Won
	// Lost means a mine was revealed or the time limit expired. Terminal.
	Lost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// LossCause records why a game was lost.
type LossCause int

const (
	CauseNone LossCause = iota
	CauseMine
	CauseTimeout
)

// String returns a human-readable cause name.
func (c LossCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseMine:
		return "mine"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// State is the counter snapshot handed to the UI after every operation.
type State struct {
	Status         Status
	RevealedSafe   int
	Flagged        int
	FlagsRemaining int // MineCount - Flagged; may go negative, 0 after a win
	ElapsedSeconds int
}
