package core

import (
	"errors"
	"math/rand"
)

// ErrInvalidPlacement is returned when a ship footprint is out of bounds,
// overlaps another ship, or violates the adjacency buffer. Always
// recoverable: the caller reports it and lets the player retry.
var ErrInvalidPlacement = errors.New("battleship: invalid placement")

// ErrNoSpace is returned when no legal placement exists for a ship even
// after an exhaustive scan. With sane rosters this cannot happen; it exists
// so a broken custom config fails loudly instead of looping forever.
var ErrNoSpace = errors.New("battleship: no legal placement for ship")

// maxPlaceTries bounds the random sampling phase of auto-placement before
// falling back to an exhaustive scan.
const maxPlaceTries = 256

// CanPlace reports whether a ship of the given length fits at (x, y) with
// the given orientation: fully in bounds, every footprint cell empty, and,
// when buffer is set, no occupied cell among the 8-neighbors of the
// footprint (the one-cell gap rule some variants enforce).
func CanPlace(g *Grid, x, y, length int, horizontal, buffer bool) bool {
	if x < 0 || y < 0 {
		return false
	}
	if horizontal {
		if x+length > g.Size() {
			return false
		}
	} else {
		if y+length > g.Size() {
			return false
		}
	}

	p := Placement{Ship: Ship{Length: length}, X: x, Y: y, Horizontal: horizontal}
	for _, c := range p.Footprint() {
		if g.Cell(c.X, c.Y) != CellEmpty {
			return false
		}
		if !buffer {
			continue
		}
		// Footprint cells of the ship being placed are still empty, so any
		// occupied neighbor belongs to a previously placed ship.
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := c.X+dx, c.Y+dy
				if !g.InBounds(nx, ny) {
					continue
				}
				if g.Cell(nx, ny) != CellEmpty {
					return false
				}
			}
		}
	}
	return true
}

// Place commits a ship to the grid and fleet. The caller must have
// validated the placement with CanPlace; Place performs no checks and
// always succeeds structurally.
func Place(g *Grid, f *Fleet, s Ship, x, y int, horizontal bool) {
	p := Placement{Ship: s, X: x, Y: y, Horizontal: horizontal}
	for _, c := range p.Footprint() {
		g.SetCell(c.X, c.Y, CellShip)
	}
	f.Add(p)
}

// AutoPlace places the whole roster randomly, ship by ship in roster order.
// Each ship is rejection-sampled up to maxPlaceTries times; if that fails,
// an exhaustive scan picks uniformly among the remaining legal placements,
// so the loop terminates even on pathologically crowded boards.
func AutoPlace(rng *rand.Rand, g *Grid, f *Fleet, roster []Ship, buffer bool) error {
	for _, ship := range roster {
		if err := autoPlaceShip(rng, g, f, ship, buffer); err != nil {
			return err
		}
	}
	return nil
}

func autoPlaceShip(rng *rand.Rand, g *Grid, f *Fleet, ship Ship, buffer bool) error {
	n := g.Size()
	for try := 0; try < maxPlaceTries; try++ {
		x, y := rng.Intn(n), rng.Intn(n)
		horizontal := rng.Intn(2) == 0
		if CanPlace(g, x, y, ship.Length, horizontal, buffer) {
			Place(g, f, ship, x, y, horizontal)
			return nil
		}
	}

	// Fallback: enumerate every legal placement and pick one at random.
	type spot struct {
		x, y       int
		horizontal bool
	}
	var legal []spot
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			for _, horizontal := range [2]bool{true, false} {
				if CanPlace(g, x, y, ship.Length, horizontal, buffer) {
					legal = append(legal, spot{x, y, horizontal})
				}
			}
		}
	}
	if len(legal) == 0 {
		return ErrNoSpace
	}
	s := legal[rng.Intn(len(legal))]
	Place(g, f, ship, s.x, s.y, s.horizontal)
	return nil
}
