package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/engine"
)

const (
	// cellWidth is the number of columns per board cell; 2 keeps cells roughly square.
	cellWidth = 2
	// boardTop is the first screen row of the grid, below the status line.
	boardTop = 2
)

const helpText = "arrows/hjkl move  space reveal  f flag  r restart  1-3 difficulty  q quit"

// Palette supplies the colour of each numeric hint.
type Palette interface {
	HintColor(n int) tcell.Color
}

// View is everything the renderer needs for one frame.
type View struct {
	Width, Height int
	Cells         []engine.Display
	Cursor        int
	State         engine.State
	Cause         engine.LossCause
	Difficulty    string
	TimeLimit     int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the status line, the board and the footer.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.drawText(0, 0, StatusLine(v), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for i, d := range v.Cells {
		col, row := i%v.Width, i/v.Width
		style := r.displayStyle(d)
		if i == v.Cursor && !v.State.Status.Terminal() {
			style = style.Reverse(true)
		}
		x, y := col*cellWidth, boardTop+row
		r.screen.SetContent(x, y, Glyph(d), style)
		r.screen.SetContent(x+1, y, ' ', tcell.StyleDefault)
	}

	footer := boardTop + v.Height + 1
	if banner := Banner(v); banner != "" {
		r.drawText(0, footer, banner, r.bannerStyle(v.State.Status))
		footer++
	}
	r.drawText(0, footer, helpText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// CellAt maps a screen position to a board index.
func CellAt(sx, sy, width, height int) (int, bool) {
	if sx < 0 || sy < boardTop {
		return 0, false
	}
	col, row := sx/cellWidth, sy-boardTop
	if col >= width || row >= height {
		return 0, false
	}
	return row*width + col, true
}

// Glyph returns the character drawn for a display value.
func Glyph(d engine.Display) rune {
	switch d {
	case engine.Blank:
		return '-'
	case engine.Flag:
		return 'F'
	case engine.Mine:
		return '*'
	case engine.Empty:
		return '.'
	}
	if h := d.Hint(); h > 0 {
		return rune('0' + h)
	}
	return '?'
}

// StatusLine returns the top line: difficulty, flags left and the clock.
func StatusLine(v View) string {
	clock := fmt.Sprintf("%ds", v.State.ElapsedSeconds)
	if v.TimeLimit > 0 {
		clock = fmt.Sprintf("%d/%ds", v.State.ElapsedSeconds, v.TimeLimit)
	}
	return fmt.Sprintf("%s  %dx%d  Flags left: %d  Time: %s",
		v.Difficulty, v.Width, v.Height, v.State.FlagsRemaining, clock)
}

// Banner returns the end-of-game message, or "" while playing.
func Banner(v View) string {
	switch v.State.Status {
	case engine.Won:
		return "Cleared! Congratulations! Press r to play again."
	case engine.Lost:
		if v.Cause == engine.CauseTimeout {
			return "Time's up! Press r to play again."
		}
		return "Boom! You stepped on a mine. Press r to play again."
	default:
		return ""
	}
}

// displayStyle returns the style for one cell.
func (r *Renderer) displayStyle(d engine.Display) tcell.Style {
	switch d {
	case engine.Blank:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case engine.Flag:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case engine.Mine:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case engine.Empty:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	if h := d.Hint(); h > 0 && r.palette != nil {
		return tcell.StyleDefault.Foreground(r.palette.HintColor(h))
	}
	return tcell.StyleDefault
}

func (r *Renderer) bannerStyle(status engine.Status) tcell.Style {
	if status == engine.Won {
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
}

// drawText writes msg starting at x, y.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
