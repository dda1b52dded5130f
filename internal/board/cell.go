// Package board provides the minefield grid: mine placement, hint counts and neighbour lookup.
package board

// Cell represents a single board position.
type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	AdjacentMines int // Mines among the up-to-8 neighbours; only meaningful for non-mine cells
}

// IsHidden returns true if the cell has not been revealed yet.
func (c Cell) IsHidden() bool {
	return !c.IsRevealed
}

// IsZero returns true if the cell is a safe cell with no neighbouring mines.
// Revealing such a cell opens its neighbours as well.
func (c Cell) IsZero() bool {
	return !c.IsMine && c.AdjacentMines == 0
}
