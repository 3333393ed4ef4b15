package battle

import (
	"strconv"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Board glyphs.
const (
	GlyphEmpty    = 'O'
	GlyphOccupied = '■'
	GlyphMiss     = 'T'
	GlyphHit      = 'X'
	GlyphContour  = '-'
	GlyphUnknown  = '◇'
)

// Glyph returns the rune and color for a cell. When hidden, Empty and
// Occupied cells look the same.
func Glyph(st CellState, hidden bool) (rune, core.Color) {
	if hidden && !st.Resolved() {
		return GlyphUnknown, core.ColorGray
	}
	switch st {
	case CellOccupied:
		return GlyphOccupied, core.ColorGreen
	case CellMiss:
		return GlyphMiss, core.ColorBlue
	case CellHit:
		return GlyphHit, core.ColorBrightRed
	case CellContour:
		return GlyphContour, core.ColorYellow
	default:
		return GlyphEmpty, core.ColorCyan
	}
}

// cellPitch is the horizontal distance between two cells on screen.
func cellPitch(size int) int {
	return len(strconv.Itoa(size)) + 1
}

// BoardWidth returns the screen width DrawBoard needs for a board of size.
func BoardWidth(size int) int {
	return cellPitch(size) * (size + 1)
}

// BoardHeight returns the screen height DrawBoard needs for a board of size.
func BoardHeight(size int) int {
	return size + 1
}

// DrawBoard draws b with its top-left corner at (x, y): a header of column
// numbers, then one labelled line per row. The board is only read.
func DrawBoard(dst *core.Screen, x, y int, b *Board) {
	pitch := cellPitch(b.Size())

	for col := 1; col <= b.Size(); col++ {
		label := strconv.Itoa(col)
		dst.DrawTextColor(x+pitch*col+pitch-1-len(label), y, label, core.ColorGray)
	}

	for row := 1; row <= b.Size(); row++ {
		ry := y + row
		label := strconv.Itoa(row)
		dst.DrawTextColor(x+pitch-1-len(label), ry, label, core.ColorGray)
		for col := 1; col <= b.Size(); col++ {
			st, _ := b.Cell(C(row, col))
			r, color := Glyph(st, b.Hidden())
			dst.SetColor(x+pitch*col+pitch-2, ry, r, color)
		}
	}
}
