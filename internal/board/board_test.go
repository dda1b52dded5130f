package board

import (
	"context"
	"math/rand"
	"testing"
)

func TestBoardReproducibility(t *testing.T) {
	// Generate two boards with the same seed
	seed := int64(12345)

	b1 := New(16, 16, rand.New(rand.NewSource(seed)))
	b2 := New(16, 16, rand.New(rand.NewSource(seed)))

	ctx := context.Background()
	b1.Generate(ctx, 40)
	b2.Generate(ctx, 40)

	for i := range b1.Cells {
		if b1.Cells[i] != b2.Cells[i] {
			t.Errorf("Cell mismatch at %d: %+v != %+v", i, b1.Cells[i], b2.Cells[i])
		}
	}
}

func TestBoardDifferentSeeds(t *testing.T) {
	b1 := New(16, 16, rand.New(rand.NewSource(12345)))
	b2 := New(16, 16, rand.New(rand.NewSource(54321)))

	ctx := context.Background()
	b1.Generate(ctx, 40)
	b2.Generate(ctx, 40)

	// With different seeds the layouts should differ
	// (very unlikely to be identical by chance)
	identical := true
	for i := range b1.Cells {
		if b1.Cells[i].IsMine != b2.Cells[i].IsMine {
			identical = false
			break
		}
	}

	if identical {
		t.Error("Boards with different seeds should not be identical")
	}
}

func TestGenerateMineCountAndHints(t *testing.T) {
	tests := []struct {
		width, height, mines int
	}{
		{9, 9, 10},
		{16, 16, 40},
		{30, 16, 99},
		{1, 1, 0},
		{5, 5, 24},
		{3, 1, 2},
		{1, 7, 0},
	}

	for seed := int64(1); seed <= 20; seed++ {
		for _, tt := range tests {
			b := New(tt.width, tt.height, rand.New(rand.NewSource(seed)))
			b.Generate(context.Background(), tt.mines)

			mines := 0
			for _, c := range b.Cells {
				if c.IsMine {
					mines++
				}
			}
			if mines != tt.mines {
				t.Errorf("%dx%d seed %d: mines = %d, want %d", tt.width, tt.height, seed, mines, tt.mines)
			}
			if b.MineCount != tt.mines {
				t.Errorf("%dx%d seed %d: MineCount = %d, want %d", tt.width, tt.height, seed, b.MineCount, tt.mines)
			}
			if got, want := b.SafeCells(), tt.width*tt.height-tt.mines; got != want {
				t.Errorf("%dx%d seed %d: SafeCells() = %d, want %d", tt.width, tt.height, seed, got, want)
			}

			for i, c := range b.Cells {
				if c.IsMine {
					continue
				}
				if want := bruteForceHint(b, i); c.AdjacentMines != want {
					t.Errorf("%dx%d seed %d: hint at %d = %d, want %d", tt.width, tt.height, seed, i, c.AdjacentMines, want)
				}
			}
		}
	}
}

func TestGenerateLeavesCellsHidden(t *testing.T) {
	b := New(9, 9, rand.New(rand.NewSource(7)))
	b.Generate(context.Background(), 10)

	for i, c := range b.Cells {
		if c.IsRevealed || c.IsFlagged {
			t.Errorf("Cell %d should start hidden and unflagged: %+v", i, c)
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	b := New(4, 3, nil)

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"top-left corner", b.Index(0, 0), 3},
		{"top-right corner", b.Index(3, 0), 3},
		{"bottom-left corner", b.Index(0, 2), 3},
		{"bottom-right corner", b.Index(3, 2), 3},
		{"top edge", b.Index(1, 0), 5},
		{"left edge", b.Index(0, 1), 5},
		{"interior", b.Index(1, 1), 8},
	}

	for _, tt := range tests {
		if got := len(b.Neighbors(tt.index)); got != tt.want {
			t.Errorf("%s: len(Neighbors(%d)) = %d, want %d", tt.name, tt.index, got, tt.want)
		}
	}
}

func TestNeighborsNoRowWrap(t *testing.T) {
	b := New(3, 3, nil)

	// Index 2 is the top-right corner; index 3 starts the next row and must
	// not be treated as adjacent.
	for _, n := range b.Neighbors(2) {
		if n == 3 {
			t.Error("Neighbors(2) should not wrap onto the next row")
		}
	}
}

func TestFromMines(t *testing.T) {
	// . * .
	// . . .
	// * . .
	b := FromMines(3, 3, []int{1, 6, 6, 42})

	if b.MineCount != 2 {
		t.Fatalf("MineCount = %d, want 2", b.MineCount)
	}

	want := []int{1, 0, 1, 2, 2, 1, 0, 1, 0}
	for i, c := range b.Cells {
		if c.IsMine {
			continue
		}
		if c.AdjacentMines != want[i] {
			t.Errorf("hint at %d = %d, want %d", i, c.AdjacentMines, want[i])
		}
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	b := New(7, 5, nil)
	for i := range b.Cells {
		x, y := b.Coords(i)
		if got := b.Index(x, y); got != i {
			t.Errorf("Index(Coords(%d)) = %d", i, got)
		}
	}
}

func TestCellAccessors(t *testing.T) {
	b := FromMines(2, 2, []int{3})

	if b.Cell(-1) != nil || b.Cell(4) != nil {
		t.Error("Cell() should return nil for out-of-range indices")
	}
	if !b.At(1, 1).IsMine {
		t.Error("At(1, 1) should be a mine")
	}
	if (b.At(5, 5) != Cell{}) {
		t.Error("At() out of range should return a zero Cell")
	}
	if got := b.MineIndices(); len(got) != 1 || got[0] != 3 {
		t.Errorf("MineIndices() = %v, want [3]", got)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := FromMines(2, 2, []int{0})
	snap := b.Snapshot()
	snap.Cells[1].IsRevealed = true

	if b.Cells[1].IsRevealed {
		t.Error("Snapshot() should not share cell storage with the board")
	}
}

// bruteForceHint counts mines around index by scanning the whole grid.
func bruteForceHint(b *Board, index int) int {
	x, y := b.Coords(index)
	count := 0
	for j, c := range b.Cells {
		if j == index || !c.IsMine {
			continue
		}
		nx, ny := b.Coords(j)
		if abs(nx-x) <= 1 && abs(ny-y) <= 1 {
			count++
		}
	}
	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
