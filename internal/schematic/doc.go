// Package schematic analyses engine schematics: rectangular grids of ASCII
// cells where digits form numbers, '.' is empty space and every other cell is
// a symbol.
//
// A Grid is built once over the raw bytes handed in by a loader and is never
// mutated afterwards, so the two scanners (SumValidNumbers and SumGearRatios)
// can run in any order or concurrently over the same Grid.
//
// All neighbour lookups go through Grid.At, which reports whether a (row, col)
// pair lies inside the content area. The row terminator column is never part
// of the content area, which is what keeps digit runs from leaking from one
// row into the next.
package schematic
