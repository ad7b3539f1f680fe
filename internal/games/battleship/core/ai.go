package core

import "math/rand"

// TargetingMode is the gunner's current search strategy.
type TargetingMode int

const (
	// ModeHunt fires at uniformly random untried cells.
	ModeHunt TargetingMode = iota

	// ModeTarget works through the orthogonal neighbors of the most recent
	// hit. Ships are straight segments, so once one cell is found the rest
	// of the ship is among those neighbors.
	ModeTarget
)

// String returns a human-readable name for the mode.
func (m TargetingMode) String() string {
	if m == ModeTarget {
		return "target"
	}
	return "hunt"
}

// Gunner is the computer opponent's shot selector: a two-state hunt/target
// machine over its own attack grid. It keeps the coordinate of the last
// confirmed hit and a small queue (at most 4 entries) of untried neighbors.
type Gunner struct {
	rng     *rand.Rand
	mode    TargetingMode
	lastHit Coord
	queue   []Coord
}

// NewGunner creates a gunner in hunt mode.
func NewGunner(rng *rand.Rand) *Gunner {
	return &Gunner{rng: rng, queue: make([]Coord, 0, 4)}
}

// Reset returns the gunner to hunt mode with an empty queue.
// Called at the start of every new battle.
func (gn *Gunner) Reset() {
	gn.mode = ModeHunt
	gn.lastHit = Coord{}
	gn.queue = gn.queue[:0]
}

// Mode returns the current targeting mode.
func (gn *Gunner) Mode() TargetingMode {
	return gn.mode
}

// Queue returns the pending target candidates, highest priority first.
func (gn *Gunner) Queue() []Coord {
	return gn.queue
}

// TakeTurn selects a coordinate and resolves exactly one attack against the
// defender. In target mode it pops the next queued candidate that is still
// untried; if the queue runs dry it falls back to hunt mode within the same
// turn. The whole turn is a loop bounded by the untried-cell count, never a
// recursive call.
func (gn *Gunner) TakeTurn(attack, ownership *Grid) (Coord, AttackOutcome) {
	if gn.mode == ModeTarget {
		for len(gn.queue) > 0 {
			c := gn.queue[0]
			gn.queue = gn.queue[1:]
			if attack.Cell(c.X, c.Y) != CellEmpty {
				continue
			}
			out := Attack(attack, ownership, c.X, c.Y)
			if out == AttackHit {
				// Chase the ship: rebuild the queue around the fresh hit.
				gn.lastHit = c
				gn.buildQueue(attack.Size())
			}
			return c, out
		}
		gn.mode = ModeHunt
	}

	c := gn.huntCoord(attack)
	out := Attack(attack, ownership, c.X, c.Y)
	if out == AttackHit {
		gn.mode = ModeTarget
		gn.lastHit = c
		gn.buildQueue(attack.Size())
	}
	return c, out
}

// buildQueue fills the candidate queue with the in-bounds orthogonal
// neighbors of the last hit, in left, right, up, down priority order.
// Already-tried neighbors are filtered at pop time, not here.
func (gn *Gunner) buildQueue(size int) {
	gn.queue = gn.queue[:0]
	candidates := [4]Coord{
		gn.lastHit.Add(-1, 0),
		gn.lastHit.Add(1, 0),
		gn.lastHit.Add(0, -1),
		gn.lastHit.Add(0, 1),
	}
	for _, c := range candidates {
		if c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size {
			gn.queue = append(gn.queue, c)
		}
	}
}

// huntCoord picks a uniformly random untried cell by rejection sampling.
// After size*size*4 failed samples it degrades to a linear scan so a turn
// always terminates while any untried cell remains.
func (gn *Gunner) huntCoord(attack *Grid) Coord {
	n := attack.Size()
	for try := 0; try < n*n*4; try++ {
		x, y := gn.rng.Intn(n), gn.rng.Intn(n)
		if attack.Cell(x, y) == CellEmpty {
			return C(x, y)
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if attack.Cell(x, y) == CellEmpty {
				return C(x, y)
			}
		}
	}
	// Callers only take a turn while the defender has ships afloat, which
	// implies at least one untried cell exists.
	return C(0, 0)
}
