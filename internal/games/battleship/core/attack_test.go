package core

import "testing"

func TestAttackHitAndMiss(t *testing.T) {
	ownership := NewGrid(8)
	attackMap := NewGrid(8)
	f := NewFleet()
	Place(ownership, f, Ship{Name: "Destroyer", Length: 2}, 3, 3, true)

	if out := Attack(attackMap, ownership, 3, 3); out != AttackHit {
		t.Fatalf("attack on ship cell = %v, want hit", out)
	}
	if ownership.Cell(3, 3) != CellHit {
		t.Error("ownership cell did not transition SHIP -> HIT")
	}
	if attackMap.Cell(3, 3) != CellHit {
		t.Error("attack grid did not record the hit")
	}

	if out := Attack(attackMap, ownership, 0, 0); out != AttackMiss {
		t.Fatalf("attack on empty cell = %v, want miss", out)
	}
	if attackMap.Cell(0, 0) != CellMiss {
		t.Error("attack grid did not record the miss")
	}
	if ownership.Cell(0, 0) != CellEmpty {
		t.Error("a miss must not touch the defender's ownership grid")
	}
}

func TestAttackIdempotent(t *testing.T) {
	ownership := NewGrid(8)
	attackMap := NewGrid(8)
	f := NewFleet()
	Place(ownership, f, Ship{Name: "Destroyer", Length: 2}, 0, 0, true)

	if out := Attack(attackMap, ownership, 0, 0); out != AttackHit {
		t.Fatalf("first attack = %v, want hit", out)
	}

	before := ownership.Clone()
	beforeAttack := attackMap.Clone()

	if out := Attack(attackMap, ownership, 0, 0); out != AttackAlreadyTried {
		t.Fatalf("second attack = %v, want already-tried", out)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if ownership.Cell(x, y) != before.Cell(x, y) {
				t.Errorf("rejected attack changed ownership cell (%d,%d)", x, y)
			}
			if attackMap.Cell(x, y) != beforeAttack.Cell(x, y) {
				t.Errorf("rejected attack changed attack cell (%d,%d)", x, y)
			}
		}
	}
}

// End-to-end: one 2-cell ship, two hits, win condition, duplicate rejection.
func TestAttackSinksLastShip(t *testing.T) {
	ownership := NewGrid(8)
	attackMap := NewGrid(8)
	f := NewFleet()
	Place(ownership, f, Ship{Name: "Destroyer", Length: 2}, 0, 0, true)

	if out := Attack(attackMap, ownership, 0, 0); out != AttackHit {
		t.Fatalf("attack (0,0) = %v, want hit", out)
	}
	if got := Remaining(ownership, f, CountShips); got != 1 {
		t.Errorf("one hit on a 2-cell ship: Remaining(ships) = %d, want 1", got)
	}
	if got := Remaining(ownership, f, CountCells); got != 1 {
		t.Errorf("one hit on a 2-cell ship: Remaining(cells) = %d, want 1", got)
	}

	if out := Attack(attackMap, ownership, 1, 0); out != AttackHit {
		t.Fatalf("attack (1,0) = %v, want hit", out)
	}
	if got := Remaining(ownership, f, CountShips); got != 0 {
		t.Errorf("sunk fleet: Remaining(ships) = %d, want 0", got)
	}
	if got := Remaining(ownership, f, CountCells); got != 0 {
		t.Errorf("sunk fleet: Remaining(cells) = %d, want 0", got)
	}

	if out := Attack(attackMap, ownership, 0, 0); out != AttackAlreadyTried {
		t.Errorf("repeat attack (0,0) = %v, want already-tried", out)
	}
}

func TestFleetSunkAt(t *testing.T) {
	ownership := NewGrid(8)
	attackMap := NewGrid(8)
	f := NewFleet()
	Place(ownership, f, Ship{Name: "Cruiser", Length: 3}, 2, 2, true)
	Place(ownership, f, Ship{Name: "Destroyer", Length: 2}, 0, 5, false)

	Attack(attackMap, ownership, 2, 2)
	if _, sunk := f.SunkAt(ownership, 2, 2); sunk {
		t.Error("cruiser reported sunk after one of three hits")
	}

	Attack(attackMap, ownership, 3, 2)
	Attack(attackMap, ownership, 4, 2)
	ship, sunk := f.SunkAt(ownership, 4, 2)
	if !sunk {
		t.Fatal("cruiser not reported sunk after all three hits")
	}
	if ship.Name != "Cruiser" {
		t.Errorf("sunk ship = %q, want Cruiser", ship.Name)
	}

	if got := Remaining(ownership, f, CountShips); got != 1 {
		t.Errorf("Remaining(ships) = %d, want 1 (destroyer afloat)", got)
	}
}
