package core

import (
	"fmt"
	"math/rand"
)

// Phase is the battle's top-level state. Exactly one phase is active at a
// time and all transitions go through Transition.
type Phase int

const (
	PhaseWaitingToStart Phase = iota
	PhasePlacingShips
	PhasePlayerTurn
	PhaseOpponentTurn
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting"
	case PhasePlacingShips:
		return "placing"
	case PhasePlayerTurn:
		return "player-turn"
	case PhaseOpponentTurn:
		return "opponent-turn"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Trigger is an event fed into the phase transition table.
type Trigger int

const (
	// TriggerStart begins a new battle from the idle state.
	TriggerStart Trigger = iota

	// TriggerFleetPlaced fires when the last roster ship is committed.
	TriggerFleetPlaced

	// TriggerAttackResolved fires after a hit or miss with the defender
	// still afloat; turns alternate.
	TriggerAttackResolved

	// TriggerDefenderSunk fires when an attack leaves the defender with
	// zero ships remaining.
	TriggerDefenderSunk

	// TriggerReset restarts after game over via full reinitialization.
	TriggerReset
)

// Transition returns the next phase for a trigger in the given phase.
// Unlisted combinations leave the phase unchanged: waiting and game-over
// are inert except for their single trigger, and PlacingShips is only ever
// re-entered through a full reset.
func Transition(p Phase, t Trigger) Phase {
	switch p {
	case PhaseWaitingToStart:
		if t == TriggerStart {
			return PhasePlacingShips
		}
	case PhasePlacingShips:
		if t == TriggerFleetPlaced {
			return PhasePlayerTurn
		}
	case PhasePlayerTurn:
		switch t {
		case TriggerAttackResolved:
			return PhaseOpponentTurn
		case TriggerDefenderSunk:
			return PhaseGameOver
		}
	case PhaseOpponentTurn:
		switch t {
		case TriggerAttackResolved:
			return PhasePlayerTurn
		case TriggerDefenderSunk:
			return PhaseGameOver
		}
	case PhaseGameOver:
		if t == TriggerReset {
			return PhasePlacingShips
		}
	}
	return p
}

// Rules is the immutable variant configuration a session plays under.
type Rules struct {
	GridSize        int
	AdjacencyBuffer bool
	CountPolicy     CountPolicy
	Roster          []Ship
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	if r.GridSize < 5 || r.GridSize > 26 {
		return fmt.Errorf("battleship: grid size %d out of range [5,26]", r.GridSize)
	}
	if len(r.Roster) == 0 {
		return fmt.Errorf("battleship: empty ship roster")
	}
	total := 0
	for _, s := range r.Roster {
		if s.Length < 1 || s.Length > 5 {
			return fmt.Errorf("battleship: ship %q has length %d out of range [1,5]", s.Name, s.Length)
		}
		total += s.Length
	}
	if total > r.GridSize*r.GridSize {
		return fmt.Errorf("battleship: roster needs %d cells but grid has %d", total, r.GridSize*r.GridSize)
	}
	return nil
}

// Side is one participant's pair of grids plus the fleet overlay that gives
// ships identity on the ownership grid.
type Side struct {
	Ownership *Grid
	AttackMap *Grid
	Fleet     *Fleet
}

// NewSide creates an empty side for the given board size.
func NewSide(size int) *Side {
	return &Side{
		Ownership: NewGrid(size),
		AttackMap: NewGrid(size),
		Fleet:     NewFleet(),
	}
}

// Remaining returns this side's ships-remaining count under the policy.
func (s *Side) Remaining(policy CountPolicy) int {
	return Remaining(s.Ownership, s.Fleet, policy)
}

// Session owns all mutable battle state: both sides, the cursor, the
// placement progress, the gunner and the current phase. It is single-owner
// state driven from one tick loop; nothing in it is safe for concurrent use
// and nothing needs to be.
type Session struct {
	rules  Rules
	rng    *rand.Rand
	player *Side
	enemy  *Side
	gunner *Gunner

	phase      Phase
	cursor     Coord
	horizontal bool
	nextShip   int
	playerWon  bool
}

// NewSession creates an idle session. Start or Reset must be called before
// any placement or shot.
func NewSession(rules Rules, rng *rand.Rand) *Session {
	s := &Session{
		rules:  rules,
		rng:    rng,
		gunner: NewGunner(rng),
	}
	s.allocate()
	return s
}

func (s *Session) allocate() {
	s.player = NewSide(s.rules.GridSize)
	s.enemy = NewSide(s.rules.GridSize)
}

// Rules returns the variant rules for this session.
func (s *Session) Rules() Rules {
	return s.rules
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Player returns the human side.
func (s *Session) Player() *Side {
	return s.player
}

// Enemy returns the computer side.
func (s *Session) Enemy() *Side {
	return s.enemy
}

// Gunner returns the computer shot selector, exposed for inspection.
func (s *Session) Gunner() *Gunner {
	return s.gunner
}

// Cursor returns the player-controlled coordinate.
func (s *Session) Cursor() Coord {
	return s.cursor
}

// Horizontal returns the current placement orientation.
func (s *Session) Horizontal() bool {
	return s.horizontal
}

// PlayerWon reports who won; meaningful only in PhaseGameOver.
func (s *Session) PlayerWon() bool {
	return s.playerWon
}

// MoveCursor shifts the cursor by (dx, dy), clamped to the board.
func (s *Session) MoveCursor(dx, dy int) {
	s.cursor.X = clamp(s.cursor.X+dx, 0, s.rules.GridSize-1)
	s.cursor.Y = clamp(s.cursor.Y+dy, 0, s.rules.GridSize-1)
}

// ToggleOrientation flips the placement orientation.
func (s *Session) ToggleOrientation() {
	s.horizontal = !s.horizontal
}

// NextShip returns the roster ship awaiting manual placement.
// ok is false once the whole roster is down.
func (s *Session) NextShip() (Ship, bool) {
	if s.nextShip >= len(s.rules.Roster) {
		return Ship{}, false
	}
	return s.rules.Roster[s.nextShip], true
}

// Start begins a battle from the idle state: fresh grids, the enemy fleet
// auto-placed, the player roster ready for manual placement.
func (s *Session) Start() error {
	if s.phase != PhaseWaitingToStart {
		return nil
	}
	if err := s.reinit(); err != nil {
		return err
	}
	s.phase = Transition(s.phase, TriggerStart)
	return nil
}

// Reset restarts after game over through full reinitialization, landing
// back in the placement phase.
func (s *Session) Reset() error {
	if s.phase != PhaseGameOver {
		return nil
	}
	if err := s.reinit(); err != nil {
		return err
	}
	s.phase = Transition(s.phase, TriggerReset)
	return nil
}

// reinit rebuilds every piece of battle state from scratch.
func (s *Session) reinit() error {
	s.allocate()
	s.gunner.Reset()
	s.cursor = Coord{}
	s.horizontal = true
	s.nextShip = 0
	s.playerWon = false
	return AutoPlace(s.rng, s.enemy.Ownership, s.enemy.Fleet, s.rules.Roster, s.rules.AdjacencyBuffer)
}

// PlaceCurrent tries to commit the next roster ship at the cursor with the
// current orientation. On ErrInvalidPlacement nothing changes and the
// player retries; on success the roster advances and, once the last ship is
// down, the phase moves to the player's turn.
func (s *Session) PlaceCurrent() (Ship, error) {
	if s.phase != PhasePlacingShips {
		return Ship{}, nil
	}
	ship, ok := s.NextShip()
	if !ok {
		return Ship{}, nil
	}

	if !CanPlace(s.player.Ownership, s.cursor.X, s.cursor.Y, ship.Length, s.horizontal, s.rules.AdjacencyBuffer) {
		return ship, ErrInvalidPlacement
	}

	Place(s.player.Ownership, s.player.Fleet, ship, s.cursor.X, s.cursor.Y, s.horizontal)
	s.nextShip++
	if s.nextShip >= len(s.rules.Roster) {
		s.phase = Transition(s.phase, TriggerFleetPlaced)
	}
	return ship, nil
}

// ShotReport describes one resolved (or rejected) attack.
type ShotReport struct {
	Target   Coord
	Outcome  AttackOutcome
	Sunk     Ship // zero value unless SunkShip
	SunkShip bool
	GameOver bool
}

// PlayerShoot fires at the cursor on the enemy board. A duplicate target is
// rejected with no state change and no phase transition; otherwise the turn
// passes to the opponent, or the game ends if the enemy fleet is gone.
func (s *Session) PlayerShoot() ShotReport {
	if s.phase != PhasePlayerTurn {
		return ShotReport{Target: s.cursor}
	}

	rep := ShotReport{Target: s.cursor}
	rep.Outcome = Attack(s.player.AttackMap, s.enemy.Ownership, s.cursor.X, s.cursor.Y)
	if rep.Outcome == AttackAlreadyTried {
		return rep
	}

	if rep.Outcome == AttackHit {
		rep.Sunk, rep.SunkShip = s.enemy.Fleet.SunkAt(s.enemy.Ownership, s.cursor.X, s.cursor.Y)
	}

	if s.enemy.Remaining(s.rules.CountPolicy) == 0 {
		s.playerWon = true
		rep.GameOver = true
		s.phase = Transition(s.phase, TriggerDefenderSunk)
	} else {
		s.phase = Transition(s.phase, TriggerAttackResolved)
	}
	return rep
}

// OpponentShoot lets the gunner take its turn against the player board.
// Exactly one attack resolves; the gunner handles its own hunt/target
// bookkeeping internally.
func (s *Session) OpponentShoot() ShotReport {
	if s.phase != PhaseOpponentTurn {
		return ShotReport{}
	}

	target, outcome := s.gunner.TakeTurn(s.enemy.AttackMap, s.player.Ownership)
	rep := ShotReport{Target: target, Outcome: outcome}

	if outcome == AttackHit {
		rep.Sunk, rep.SunkShip = s.player.Fleet.SunkAt(s.player.Ownership, target.X, target.Y)
	}

	if s.player.Remaining(s.rules.CountPolicy) == 0 {
		s.playerWon = false
		rep.GameOver = true
		s.phase = Transition(s.phase, TriggerDefenderSunk)
	} else {
		s.phase = Transition(s.phase, TriggerAttackResolved)
	}
	return rep
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
