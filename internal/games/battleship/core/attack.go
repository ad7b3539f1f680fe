package core

// AttackOutcome is the result of resolving one shot.
type AttackOutcome int

const (
	// AttackAlreadyTried means the attacker had already fired at that cell.
	// Nothing changes; the shot is rejected idempotently.
	AttackAlreadyTried AttackOutcome = iota
	AttackHit
	AttackMiss
)

// String returns a human-readable name for the outcome.
func (o AttackOutcome) String() string {
	switch o {
	case AttackAlreadyTried:
		return "already-tried"
	case AttackHit:
		return "hit"
	case AttackMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Attack resolves a shot at (x, y): the attacker's attack grid records the
// result from the shooter's viewpoint, and on a hit the defender's ownership
// cell transitions SHIP -> HIT. A miss is recorded only on the attack grid;
// the ownership grid keeps its invariant that cells only ever move
// EMPTY -> SHIP -> HIT.
//
// A cell already resolved on the attack grid is rejected without touching
// either grid, so firing twice at the same coordinate is harmless.
func Attack(attack, ownership *Grid, x, y int) AttackOutcome {
	switch attack.Cell(x, y) {
	case CellHit, CellMiss:
		return AttackAlreadyTried
	}

	if ownership.Cell(x, y) == CellShip {
		ownership.SetCell(x, y, CellHit)
		attack.SetCell(x, y, CellHit)
		return AttackHit
	}

	attack.SetCell(x, y, CellMiss)
	return AttackMiss
}
