package core

import (
	"errors"
	"math/rand"
	"testing"
)

func testRules() Rules {
	return Rules{
		GridSize:    8,
		CountPolicy: CountShips,
		Roster: []Ship{
			{Name: "Battleship", Length: 4},
			{Name: "Cruiser", Length: 3},
			{Name: "Destroyer", Length: 2},
		},
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		phase   Phase
		trigger Trigger
		want    Phase
	}{
		{"start begins placement", PhaseWaitingToStart, TriggerStart, PhasePlacingShips},
		{"waiting ignores attacks", PhaseWaitingToStart, TriggerAttackResolved, PhaseWaitingToStart},
		{"fleet placed starts player turn", PhasePlacingShips, TriggerFleetPlaced, PhasePlayerTurn},
		{"placing ignores reset", PhasePlacingShips, TriggerReset, PhasePlacingShips},
		{"player attack passes turn", PhasePlayerTurn, TriggerAttackResolved, PhaseOpponentTurn},
		{"player sinks fleet", PhasePlayerTurn, TriggerDefenderSunk, PhaseGameOver},
		{"opponent attack passes turn", PhaseOpponentTurn, TriggerAttackResolved, PhasePlayerTurn},
		{"opponent sinks fleet", PhaseOpponentTurn, TriggerDefenderSunk, PhaseGameOver},
		{"game over resets to placement", PhaseGameOver, TriggerReset, PhasePlacingShips},
		{"game over ignores start", PhaseGameOver, TriggerStart, PhaseGameOver},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Transition(tc.phase, tc.trigger); got != tc.want {
				t.Errorf("Transition(%v, %v) = %v, want %v", tc.phase, tc.trigger, got, tc.want)
			}
		})
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rules)
		wantErr bool
	}{
		{"valid", func(r *Rules) {}, false},
		{"grid too small", func(r *Rules) { r.GridSize = 4 }, true},
		{"grid too large", func(r *Rules) { r.GridSize = 30 }, true},
		{"empty roster", func(r *Rules) { r.Roster = nil }, true},
		{"ship too long", func(r *Rules) { r.Roster[0].Length = 6 }, true},
		{"ship length zero", func(r *Rules) { r.Roster[0].Length = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRules()
			tc.mutate(&r)
			err := r.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

// moveCursorTo walks the cursor to an absolute position with unit steps.
func moveCursorTo(s *Session, x, y int) {
	c := s.Cursor()
	for c.X != x || c.Y != y {
		dx, dy := 0, 0
		if c.X < x {
			dx = 1
		} else if c.X > x {
			dx = -1
		}
		if c.Y < y {
			dy = 1
		} else if c.Y > y {
			dy = -1
		}
		s.MoveCursor(dx, dy)
		c = s.Cursor()
	}
}

// placeAllShips lays the roster out on separate rows.
func placeAllShips(t *testing.T, s *Session) {
	t.Helper()
	for i := range s.Rules().Roster {
		moveCursorTo(s, 0, i*2)
		if !s.Horizontal() {
			s.ToggleOrientation()
		}
		if _, err := s.PlaceCurrent(); err != nil {
			t.Fatalf("placing ship %d: %v", i, err)
		}
	}
}

func TestSessionStartPlacesEnemyFleet(t *testing.T) {
	s := NewSession(testRules(), rand.New(rand.NewSource(11)))

	if s.Phase() != PhaseWaitingToStart {
		t.Fatalf("new session phase = %v, want waiting", s.Phase())
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if s.Phase() != PhasePlacingShips {
		t.Fatalf("phase after Start = %v, want placing", s.Phase())
	}
	if got := s.Enemy().Fleet.Size(); got != 3 {
		t.Errorf("enemy fleet size = %d, want 3", got)
	}
	if got := s.Enemy().Remaining(CountShips); got != 3 {
		t.Errorf("enemy remaining = %d, want 3", got)
	}
}

func TestSessionManualPlacementFlow(t *testing.T) {
	s := NewSession(testRules(), rand.New(rand.NewSource(11)))
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	placeAllShips(t, s)

	if s.Phase() != PhasePlayerTurn {
		t.Errorf("phase after full placement = %v, want player-turn", s.Phase())
	}
	if got := s.Player().Fleet.Size(); got != 3 {
		t.Errorf("player fleet size = %d, want 3", got)
	}
	if got := s.Player().Remaining(CountShips); got != 3 {
		t.Errorf("player remaining = %d, want 3 (roster length)", got)
	}
}

func TestSessionRejectedPlacementKeepsState(t *testing.T) {
	s := NewSession(testRules(), rand.New(rand.NewSource(11)))
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	// First ship at (0,0) horizontal.
	if _, err := s.PlaceCurrent(); err != nil {
		t.Fatalf("first placement failed: %v", err)
	}

	// Second ship overlapping the first must be rejected with no change.
	moveCursorTo(s, 2, 0)
	cells := s.Player().Ownership.Count(CellShip)
	_, err := s.PlaceCurrent()
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("overlapping placement err = %v, want ErrInvalidPlacement", err)
	}
	if s.Player().Fleet.Size() != 1 {
		t.Error("rejected placement changed the fleet")
	}
	if s.Player().Ownership.Count(CellShip) != cells {
		t.Error("rejected placement wrote to the grid")
	}
	if s.Phase() != PhasePlacingShips {
		t.Errorf("phase = %v, want placing after rejection", s.Phase())
	}

	// Retry below the first ship succeeds and advances the roster.
	moveCursorTo(s, 0, 2)
	if _, err := s.PlaceCurrent(); err != nil {
		t.Fatalf("retry placement failed: %v", err)
	}
	if s.Player().Fleet.Size() != 2 {
		t.Errorf("fleet size = %d, want 2 after retry", s.Player().Fleet.Size())
	}
}

func TestSessionDuplicateAttackKeepsTurn(t *testing.T) {
	s := NewSession(testRules(), rand.New(rand.NewSource(11)))
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	placeAllShips(t, s)

	moveCursorTo(s, 0, 0)
	first := s.PlayerShoot()
	if first.Outcome == AttackAlreadyTried {
		t.Fatal("first shot rejected as duplicate")
	}
	if s.Phase() != PhaseOpponentTurn {
		t.Fatalf("phase after player shot = %v, want opponent-turn", s.Phase())
	}

	s.OpponentShoot()
	if s.Phase() != PhasePlayerTurn {
		t.Fatalf("phase after opponent shot = %v, want player-turn", s.Phase())
	}

	moveCursorTo(s, 0, 0)
	second := s.PlayerShoot()
	if second.Outcome != AttackAlreadyTried {
		t.Errorf("repeat shot outcome = %v, want already-tried", second.Outcome)
	}
	if s.Phase() != PhasePlayerTurn {
		t.Errorf("duplicate shot must not pass the turn: phase = %v", s.Phase())
	}
}

func TestSessionFullBattleTerminates(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := NewSession(testRules(), rand.New(rand.NewSource(seed)))
		if err := s.Start(); err != nil {
			t.Fatalf("seed %d: Start() failed: %v", seed, err)
		}
		placeAllShips(t, s)

		// Player scans the board row by row; the gunner plays properly.
		scanX, scanY := 0, 0
		for turns := 0; s.Phase() != PhaseGameOver; turns++ {
			if turns > 300 {
				t.Fatalf("seed %d: battle did not terminate", seed)
			}
			switch s.Phase() {
			case PhasePlayerTurn:
				moveCursorTo(s, scanX, scanY)
				rep := s.PlayerShoot()
				if rep.Outcome != AttackAlreadyTried {
					scanX++
					if scanX == 8 {
						scanX = 0
						scanY++
					}
				}
			case PhaseOpponentTurn:
				s.OpponentShoot()
			}
		}

		playerDead := s.Player().Remaining(CountShips) == 0
		enemyDead := s.Enemy().Remaining(CountShips) == 0
		if playerDead == enemyDead {
			t.Fatalf("seed %d: exactly one side must be sunk at game over", seed)
		}
		if s.PlayerWon() != enemyDead {
			t.Errorf("seed %d: PlayerWon() = %v, enemy dead = %v", seed, s.PlayerWon(), enemyDead)
		}

		// Reset goes straight back to placement with clean boards.
		if err := s.Reset(); err != nil {
			t.Fatalf("seed %d: Reset() failed: %v", seed, err)
		}
		if s.Phase() != PhasePlacingShips {
			t.Errorf("seed %d: phase after reset = %v, want placing", seed, s.Phase())
		}
		if s.Player().Fleet.Size() != 0 {
			t.Errorf("seed %d: player fleet not cleared on reset", seed)
		}
		if s.Enemy().Fleet.Size() != 3 {
			t.Errorf("seed %d: enemy fleet not re-placed on reset", seed)
		}
	}
}
