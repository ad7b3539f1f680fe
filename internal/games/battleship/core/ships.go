package core

// Ship is an immutable roster entry. The name is display-only; all rules
// care about is the length.
type Ship struct {
	Name   string
	Length int
}

// Placement records where a ship was committed to a grid.
type Placement struct {
	Ship       Ship
	X, Y       int
	Horizontal bool
}

// Footprint returns the cells the placed ship occupies, anchored at (X, Y)
// and extending right or down.
func (p Placement) Footprint() []Coord {
	cells := make([]Coord, p.Ship.Length)
	for i := 0; i < p.Ship.Length; i++ {
		if p.Horizontal {
			cells[i] = C(p.X+i, p.Y)
		} else {
			cells[i] = C(p.X, p.Y+i)
		}
	}
	return cells
}

// Contains returns true if (x, y) is part of the ship's footprint.
func (p Placement) Contains(x, y int) bool {
	if p.Horizontal {
		return y == p.Y && x >= p.X && x < p.X+p.Ship.Length
	}
	return x == p.X && y >= p.Y && y < p.Y+p.Ship.Length
}

// CountPolicy selects how "ships remaining" is computed. Variants disagree
// on this, so both policies are supported and the variant config picks one.
type CountPolicy int

const (
	// CountShips counts distinct ships with at least one cell not yet hit.
	// A three-cell cruiser counts as remaining until its third hit.
	CountShips CountPolicy = iota

	// CountCells counts raw cells still in CellShip state. Ships are
	// fungible; the game is lost when the last ship cell is hit, which is
	// the same moment as under CountShips, but intermediate counts differ.
	CountCells
)

// String returns the config spelling of the policy.
func (p CountPolicy) String() string {
	if p == CountCells {
		return "cells"
	}
	return "ships"
}

// Fleet tracks the placements committed to one ownership grid, giving the
// per-ship identity that the packed cell states alone cannot.
type Fleet struct {
	placements []Placement
}

// NewFleet creates an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{}
}

// Add records a committed placement.
func (f *Fleet) Add(p Placement) {
	f.placements = append(f.placements, p)
}

// Size returns the number of ships placed so far.
func (f *Fleet) Size() int {
	return len(f.placements)
}

// Placements returns the committed placements in placement order.
func (f *Fleet) Placements() []Placement {
	return f.placements
}

// Afloat returns the number of distinct ships that still have at least one
// cell in CellShip state on the given ownership grid.
func (f *Fleet) Afloat(g *Grid) int {
	n := 0
	for _, p := range f.placements {
		for _, c := range p.Footprint() {
			if g.Cell(c.X, c.Y) == CellShip {
				n++
				break
			}
		}
	}
	return n
}

// SunkAt reports whether the ship occupying (x, y) has no un-hit cells left.
// Used after a confirmed hit to raise the ship-sunk feedback event.
func (f *Fleet) SunkAt(g *Grid, x, y int) (Ship, bool) {
	for _, p := range f.placements {
		if !p.Contains(x, y) {
			continue
		}
		for _, c := range p.Footprint() {
			if g.Cell(c.X, c.Y) == CellShip {
				return Ship{}, false
			}
		}
		return p.Ship, true
	}
	return Ship{}, false
}

// Remaining computes the ships-remaining count for a win check under the
// given policy. Zero means the owning side has lost.
func Remaining(g *Grid, f *Fleet, policy CountPolicy) int {
	if policy == CountCells {
		return g.Count(CellShip)
	}
	return f.Afloat(g)
}
