package engine

import (
	"strconv"

	"github.com/samdwyer/minesweeper/internal/board"
)

// Display is what the UI should show for one cell.
type Display int

const (
	// Blank is an unrevealed, unflagged cell.
	Blank Display = iota
	// Flag is an unrevealed cell carrying a flag.
	Flag
	// Mine is a revealed mine (shown when the game is lost).
	Mine
	// Empty is a revealed cell with no neighbouring mines.
	Empty
	Hint1
	Hint2
	Hint3
	Hint4
	Hint5
	Hint6
	Hint7
	Hint8
)

// HintDisplay returns the display for a revealed safe cell with n adjacent mines.
func HintDisplay(n int) Display {
	if n <= 0 || n > 8 {
		return Empty
	}
	return Hint1 + Display(n-1)
}

// Hint returns the numeric hint 1-8, or 0 for non-hint displays.
func (d Display) Hint() int {
	if d < Hint1 || d > Hint8 {
		return 0
	}
	return int(d-Hint1) + 1
}

// Revealed returns true if the display belongs to an opened cell.
func (d Display) Revealed() bool {
	return d == Mine || d == Empty || d.Hint() > 0
}

// String returns a short name for the display value.
func (d Display) String() string {
	switch d {
	case Blank:
		return "blank"
	case Flag:
		return "flag"
	case Mine:
		return "mine"
	case Empty:
		return "empty"
	}
	if h := d.Hint(); h > 0 {
		return strconv.Itoa(h)
	}
	return "unknown"
}

// displayOf maps cell state to its display value.
func displayOf(c board.Cell) Display {
	switch {
	case c.IsRevealed && c.IsMine:
		return Mine
	case c.IsRevealed:
		return HintDisplay(c.AdjacentMines)
	case c.IsFlagged:
		return Flag
	default:
		return Blank
	}
}

// Update tells the UI that the cell at Index now shows Display.
type Update struct {
	Index   int
	Display Display
}

// Result is returned by every mutating operation.
type Result struct {
	Updates []Update
	State   State
}

// Changed returns true if the operation touched any cell.
func (r Result) Changed() bool {
	return len(r.Updates) > 0
}
