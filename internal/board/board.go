package board

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Board represents the minefield. Cells are stored row-major, indexed y*Width+x.
type Board struct {
	Width     int
	Height    int
	MineCount int
	Cells     []Cell
	rng       *rand.Rand
}

// New creates an empty board with no mines. The caller guarantees
// width > 0 and height > 0.
func New(width, height int, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
		rng:    rng,
	}
}

// FromMines creates a board with mines at exactly the given indices and
// computes hints. Out-of-range and duplicate indices are ignored.
func FromMines(width, height int, mines []int) *Board {
	b := New(width, height, nil)
	for _, i := range mines {
		if b.Contains(i) && !b.Cells[i].IsMine {
			b.Cells[i].IsMine = true
			b.MineCount++
		}
	}
	b.computeHints()
	return b
}

// Generate places count mines uniformly at random without replacement and
// computes hints. The caller guarantees 0 <= count < Width*Height.
func (b *Board) Generate(ctx context.Context, count int) {
	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()

	b.placeMines(count)
	b.computeHints()

	span.SetAttributes(
		attribute.Int("board.width", b.Width),
		attribute.Int("board.height", b.Height),
		attribute.Int("board.mines", b.MineCount),
		attribute.Int64("board.generation_us", time.Since(startTime).Microseconds()),
	)
}

// placeMines runs a partial Fisher-Yates shuffle over the cell indices so
// every subset of count positions is equally likely.
func (b *Board) placeMines(count int) {
	total := len(b.Cells)
	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}

	for i := 0; i < count; i++ {
		j := i + b.rng.Intn(total-i)
		positions[i], positions[j] = positions[j], positions[i]
		b.Cells[positions[i]].IsMine = true
	}
	b.MineCount = count
}

// computeHints fills AdjacentMines for every non-mine cell.
func (b *Board) computeHints() {
	for i := range b.Cells {
		if b.Cells[i].IsMine {
			b.Cells[i].AdjacentMines = 0
			continue
		}
		b.Cells[i].AdjacentMines = b.CountAdjacentMines(i)
	}
}

// Cell returns a pointer to the cell at index, or nil if out of range.
func (b *Board) Cell(index int) *Cell {
	if !b.Contains(index) {
		return nil
	}
	return &b.Cells[index]
}

// At returns the cell at the given coordinates. Out-of-range positions
// return a zero Cell.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.Cells[b.Index(x, y)]
}

// SafeCells returns the number of non-mine cells.
func (b *Board) SafeCells() int {
	return len(b.Cells) - b.MineCount
}

// MineIndices returns the indices of all mines in ascending order.
func (b *Board) MineIndices() []int {
	mines := make([]int, 0, b.MineCount)
	for i, c := range b.Cells {
		if c.IsMine {
			mines = append(mines, i)
		}
	}
	return mines
}

// Snapshot returns a copy of the board that shares no cell storage with b.
func (b *Board) Snapshot() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		Width:     b.Width,
		Height:    b.Height,
		MineCount: b.MineCount,
		Cells:     cells,
	}
}
