package schematic

import "fmt"

// Number is a digit run: a maximal sequence of digits within one row.
// Start and End are flat indices, End exclusive.
type Number struct {
	Value uint32
	Start int
	End   int
}

// Extract recovers the digit run containing index. It panics with an error
// wrapping ErrInvalidArgument if index does not hold a digit.
func (g *Grid) Extract(index int) Number {
	if index < 0 || index >= len(g.buf) || !IsDigit(g.buf[index]) {
		panic(fmt.Errorf("%w: extract at index %d: cell is not a digit", ErrInvalidArgument, index))
	}

	rowStart := (index / g.width) * g.width
	// The terminator sits at rowStart+width-1 and is never a digit, but a
	// final row without one ends at the buffer instead.
	rowEnd := min(rowStart+g.width-1, len(g.buf))

	start := index
	for start > rowStart && IsDigit(g.buf[start-1]) {
		start--
	}
	end := index + 1
	for end < rowEnd && IsDigit(g.buf[end]) {
		end++
	}

	var value uint32
	for _, c := range g.buf[start:end] {
		value = value*10 + uint32(c-'0')
	}
	return Number{Value: value, Start: start, End: end}
}

// extractAt is Extract addressed by (row, col). The caller must already know
// the cell is an in-bounds digit.
func (g *Grid) extractAt(row, col int) Number {
	i, ok := g.index(row, col)
	if !ok {
		panic(fmt.Errorf("%w: extract at (%d, %d): out of bounds", ErrInvalidArgument, row, col))
	}
	return g.Extract(i)
}
