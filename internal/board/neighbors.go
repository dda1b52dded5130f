package board

// offsets lists the relative positions of the 8 grid-adjacent neighbours.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Index converts x, y coordinates to a cell index.
func (b *Board) Index(x, y int) int {
	return y*b.Width + x
}

// Coords converts a cell index to x, y coordinates.
func (b *Board) Coords(index int) (int, int) {
	return index % b.Width, index / b.Width
}

// InBounds returns true if the given position lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Contains returns true if the index addresses a cell on the board.
func (b *Board) Contains(index int) bool {
	return index >= 0 && index < len(b.Cells)
}

// Neighbors returns the indices of the in-bounds cells adjacent to index.
// Corner cells have 3 neighbours, edge cells 5, interior cells 8.
func (b *Board) Neighbors(index int) []int {
	x, y := b.Coords(index)
	result := make([]int, 0, len(offsets))
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if b.InBounds(nx, ny) {
			result = append(result, b.Index(nx, ny))
		}
	}
	return result
}

// CountAdjacentMines counts the mines among the neighbours of index.
func (b *Board) CountAdjacentMines(index int) int {
	count := 0
	for _, n := range b.Neighbors(index) {
		if b.Cells[n].IsMine {
			count++
		}
	}
	return count
}
