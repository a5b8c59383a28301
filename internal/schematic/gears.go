package schematic

// Gear is a '*' cell together with the distinct numbers adjacent to it.
type Gear struct {
	Index   int
	Numbers []Number
}

// Ratio returns the product of the gear's numbers. ok is false unless
// exactly two numbers are adjacent.
func (gr Gear) Ratio() (ratio uint32, ok bool) {
	if len(gr.Numbers) != 2 {
		return 0, false
	}
	return gr.Numbers[0].Value * gr.Numbers[1].Value, true
}

// GearAt collects the distinct numbers adjacent to the '*' at index. ok is
// false when index does not hold a '*'.
//
// Left and right neighbours are always distinct runs. Above and below, the
// three cells of a block may all belong to one run, so each block yields at
// most one number unless both diagonals are digits with a non-digit between
// them, in which case they are two separate runs.
func (g *Grid) GearAt(index int) (Gear, bool) {
	if index < 0 || index >= len(g.buf) || g.buf[index] != GearSymbol {
		return Gear{}, false
	}
	row, col := g.Coord(index)
	gear := Gear{Index: index}
	take := func(r, c int) {
		gear.Numbers = append(gear.Numbers, g.extractAt(r, c))
	}

	if g.digitAt(row, col-1) {
		take(row, col-1)
	}
	if g.digitAt(row, col+1) {
		take(row, col+1)
	}

	for _, r := range [2]int{row - 1, row + 1} {
		left, mid, right := g.digitAt(r, col-1), g.digitAt(r, col), g.digitAt(r, col+1)
		switch {
		case left && right && !mid:
			take(r, col-1)
			take(r, col+1)
		case left:
			take(r, col-1)
		case mid:
			take(r, col)
		case right:
			take(r, col+1)
		}
	}
	return gear, true
}

// Gears returns every '*' cell in buffer order with its adjacent numbers.
func (g *Grid) Gears() []Gear {
	var gears []Gear
	for i, c := range g.buf {
		if c != GearSymbol {
			continue
		}
		gear, _ := g.GearAt(i)
		gears = append(gears, gear)
	}
	return gears
}

// SumGearRatios adds the ratio of every '*' with exactly two adjacent
// numbers.
func (g *Grid) SumGearRatios() uint32 {
	var sum uint32
	for i, c := range g.buf {
		if c != GearSymbol {
			continue
		}
		gear, _ := g.GearAt(i)
		if ratio, ok := gear.Ratio(); ok {
			sum += ratio
		}
	}
	return sum
}
