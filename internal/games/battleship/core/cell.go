// Package core implements the battleship game rules: bitpacked grids,
// fleet placement, attack resolution, the computer gunner and the phase
// machine. It has no dependencies outside the standard library so the whole
// ruleset stays testable without a terminal.
package core

import "fmt"

// CellState is the state of a single grid cell. Exactly these four values
// are ever stored; the packed representation has no room for anything else.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

// String returns a human-readable name for the cell state.
func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Coord represents a 2D grid coordinate.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
