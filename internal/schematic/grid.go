package schematic

import (
	"bytes"
	"fmt"
)

const (
	// Terminator ends every row and is counted in the row stride.
	Terminator byte = '\n'
	// Blank is an empty cell.
	Blank byte = '.'
	// GearSymbol is the only symbol that can act as a gear.
	GearSymbol byte = '*'
)

// Grid is a read-only view over a flattened schematic buffer.
type Grid struct {
	buf   []byte
	width int
}

// Build wraps raw without copying it. The row width is the offset of the
// first terminator plus one. A missing trailing terminator is tolerated.
func Build(raw []byte) (*Grid, error) {
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	first := bytes.IndexByte(raw, Terminator)
	if first < 0 {
		return nil, ErrNoTerminator
	}
	if first == 0 {
		return nil, fmt.Errorf("%w: first row has no content", ErrMalformed)
	}
	return &Grid{buf: raw, width: first + 1}, nil
}

// CharAt returns the byte at a flat index.
func (g *Grid) CharAt(index int) byte {
	return g.buf[index]
}

// Width is the row stride, terminator included.
func (g *Grid) Width() int {
	return g.width
}

// Len is the number of bytes in the buffer.
func (g *Grid) Len() int {
	return len(g.buf)
}

// Cols is the number of content columns per row.
func (g *Grid) Cols() int {
	return g.width - 1
}

// Rows counts rows, including a final row without a trailing terminator.
func (g *Grid) Rows() int {
	return (len(g.buf) + g.width - 1) / g.width
}

// Coord converts a flat index into (row, col).
func (g *Grid) Coord(index int) (row, col int) {
	return index / g.width, index % g.width
}

// index converts (row, col) into a flat index and reports whether the cell
// is inside the content area.
func (g *Grid) index(row, col int) (int, bool) {
	if row < 0 || col < 0 || col >= g.Cols() {
		return 0, false
	}
	i := row*g.width + col
	if i >= len(g.buf) {
		return 0, false
	}
	return i, true
}

// At returns the cell at (row, col). ok is false for anything outside the
// content area, including the terminator column.
func (g *Grid) At(row, col int) (c byte, ok bool) {
	i, ok := g.index(row, col)
	if !ok {
		return 0, false
	}
	return g.buf[i], true
}

// Validate checks that every row holds exactly Cols content cells followed
// by a terminator. The last row may omit its terminator.
func (g *Grid) Validate() error {
	for row := 0; row < g.Rows(); row++ {
		start := row * g.width
		end := start + g.width
		if end > len(g.buf) {
			if len(g.buf)-start != g.Cols() {
				return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, row, len(g.buf)-start, g.Cols())
			}
			end = len(g.buf) + 1
		} else if g.buf[end-1] != Terminator {
			return fmt.Errorf("%w: row %d is longer than %d cells", ErrMalformed, row, g.Cols())
		}
		if i := bytes.IndexByte(g.buf[start:end-1], Terminator); i >= 0 {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, row, i, g.Cols())
		}
	}
	return nil
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSymbol reports whether c is neither a digit, a blank, nor a terminator.
func IsSymbol(c byte) bool {
	return c != Blank && c != Terminator && !IsDigit(c)
}

// neighbours are the eight (row, col) offsets around a cell.
var neighbours = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// touchesSymbol reports whether any in-bounds neighbour of (row, col) is a
// symbol.
func (g *Grid) touchesSymbol(row, col int) bool {
	for _, d := range neighbours {
		if c, ok := g.At(row+d[0], col+d[1]); ok && IsSymbol(c) {
			return true
		}
	}
	return false
}

// digitAt reports whether (row, col) is in bounds and holds a digit.
func (g *Grid) digitAt(row, col int) bool {
	c, ok := g.At(row, col)
	return ok && IsDigit(c)
}
