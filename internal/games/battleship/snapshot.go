package battleship

// Snapshot captures the observable game state for determinism testing and
// replay.
type Snapshot struct {
	Tick       uint64
	Variant    string
	Phase      string
	CursorX    int
	CursorY    int
	Horizontal bool
	ShipsToGo  int // Roster ships not yet placed by the player
	FleetLeft  int // Player ships remaining under the variant's count policy
	EnemyLeft  int
	Shots      int
	Hits       int
	Score      int
	GunnerMode string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	policy := g.session.Rules().CountPolicy
	toGo := len(g.session.Rules().Roster) - g.placedCount()
	cur := g.session.Cursor()
	return Snapshot{
		Tick:       g.tick,
		Variant:    g.ID(),
		Phase:      g.session.Phase().String(),
		CursorX:    cur.X,
		CursorY:    cur.Y,
		Horizontal: g.session.Horizontal(),
		ShipsToGo:  toGo,
		FleetLeft:  g.session.Player().Remaining(policy),
		EnemyLeft:  g.session.Enemy().Remaining(policy),
		Shots:      g.shots,
		Hits:       g.hitsDealt,
		Score:      g.score,
		GunnerMode: g.session.Gunner().Mode().String(),
	}
}

// placedCount returns how many roster ships the player has committed.
func (g *Game) placedCount() int {
	return g.session.Player().Fleet.Size()
}
