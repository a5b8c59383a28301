package schematic

// SumValidNumbers adds up every digit run that touches at least one symbol,
// counting each run once however many of its digits touch symbols.
func (g *Grid) SumValidNumbers() uint32 {
	var (
		sum     uint32
		current uint32
		open    bool
		valid   bool
	)

	for i, c := range g.buf {
		if !IsDigit(c) {
			if open && valid {
				sum += current
			}
			current, open, valid = 0, false, false
			continue
		}

		current = current*10 + uint32(c-'0')
		open = true
		if valid {
			continue
		}
		row, col := g.Coord(i)
		valid = g.touchesSymbol(row, col)
	}

	// Flush a run that ends the buffer when the last row has no terminator.
	if open && valid {
		sum += current
	}
	return sum
}
