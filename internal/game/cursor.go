package game

// Cursor is the keyboard selection on the board.
type Cursor struct {
	X, Y          int // Current cell
	width, height int
}

// NewCursor creates a cursor at the centre of a width x height board.
func NewCursor(width, height int) *Cursor {
	return &Cursor{
		X:      width / 2,
		Y:      height / 2,
		width:  width,
		height: height,
	}
}

// Move shifts the cursor by the given delta, clamped to the board.
func (c *Cursor) Move(dx, dy int) {
	c.X = clamp(c.X+dx, 0, c.width-1)
	c.Y = clamp(c.Y+dy, 0, c.height-1)
}

// Set places the cursor on a cell index. Out-of-range indices are ignored.
func (c *Cursor) Set(index int) {
	if index < 0 || index >= c.width*c.height {
		return
	}
	c.X, c.Y = index%c.width, index/c.width
}

// Index returns the board index under the cursor.
func (c *Cursor) Index() int {
	return c.Y*c.width + c.X
}

// Position returns the current x, y coordinates.
func (c *Cursor) Position() (int, int) {
	return c.X, c.Y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
