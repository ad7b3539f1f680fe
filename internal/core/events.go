package core

// Event is a discrete feedback notification emitted by a game step.
// Events are purely advisory: the platform turns them into status flashes
// and they never feed back into game state.
type Event string

const (
	EventShipPlaced        Event = "ship-placed"
	EventPlacementRejected Event = "placement-rejected"
	EventDuplicateAttack   Event = "duplicate-attack"
	EventHit               Event = "hit"
	EventMiss              Event = "miss"
	EventShipSunk          Event = "ship-sunk"
	EventWin               Event = "win"
	EventLose              Event = "lose"
)
