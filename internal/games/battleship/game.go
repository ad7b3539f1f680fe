// Package battleship adapts the battleship rules core to the armada
// platform: it owns pacing, status messages and rendering while the core
// package owns grids, placement, attacks and the phase machine.
package battleship

import (
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/tui-armada/internal/core"

	"github.com/vovakirdan/tui-armada/internal/config"
	"github.com/vovakirdan/tui-armada/internal/games/battleship/core"
	"github.com/vovakirdan/tui-armada/internal/registry"
)

// Game implements the battleship game for one variant.
type Game struct {
	variant config.VariantPreset
	cfg     config.BattleshipConfig
	rng     *rand.Rand
	session *core.Session
	tick    uint64

	// Screen layout, computed on Reset
	screenW   int
	screenH   int
	boardW    int
	boardH    int
	ownX      int
	radarX    int
	boardY    int
	tooSmall  bool

	paused bool

	// Enemy fire pacing
	opponentDelay int

	// Status flash line
	message      string
	messageColor platformcore.Color
	messageTicks int

	// Last enemy shot, highlighted on the fleet board
	enemyShot    core.Coord
	hasEnemyShot bool

	// Battle statistics for the scoreboard
	score     int
	shots     int
	hitsDealt int
	hitsTaken int
	shipsSunk int
	shipsLost int
}

// Package-level variables set by the CLI before a game is created.
var configPath string

// SetConfigPath sets a custom config file path for all variants.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a classic 10x10 five-ship game.
func New() *Game {
	return &Game{variant: config.VariantClassic}
}

// NewCompact creates an 8x8 four-ship game.
func NewCompact() *Game {
	return &Game{variant: config.VariantCompact}
}

// NewGrand creates a 12x12 seven-ship game.
func NewGrand() *Game {
	return &Game{variant: config.VariantGrand}
}

// NewStrict creates a classic game with the one-cell adjacency buffer rule.
func NewStrict() *Game {
	return &Game{variant: config.VariantStrict}
}

func init() {
	registry.Register("battleship", func() registry.Game {
		return New()
	})
	registry.Register("battleship_compact", func() registry.Game {
		return NewCompact()
	})
	registry.Register("battleship_grand", func() registry.Game {
		return NewGrand()
	})
	registry.Register("battleship_strict", func() registry.Game {
		return NewStrict()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == config.VariantClassic {
		return "battleship"
	}
	return "battleship_" + string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.variant {
	case config.VariantCompact:
		return "Battleship (Compact)"
	case config.VariantGrand:
		return "Battleship (Grand)"
	case config.VariantStrict:
		return "Battleship (Strict)"
	default:
		return "Battleship"
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.opponentDelay = 0
	g.message = ""
	g.messageTicks = 0
	g.hasEnemyShot = false
	g.score = 0
	g.shots = 0
	g.hitsDealt = 0
	g.hitsTaken = 0
	g.shipsSunk = 0
	g.shipsLost = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	loaded, err := config.LoadBattleship(configPath)
	if err != nil {
		loaded = config.DefaultBattleshipConfig()
	}
	config.ApplyVariantPreset(&loaded, g.variant)
	g.cfg = loaded

	rules := buildRules(g.cfg)
	if rules.Validate() != nil {
		g.cfg = config.DefaultBattleshipConfig()
		config.ApplyVariantPreset(&g.cfg, g.variant)
		rules = buildRules(g.cfg)
	}
	if g.cfg.Pacing.MessageTicks <= 0 {
		g.cfg.Pacing.MessageTicks = 45
	}
	if g.cfg.Pacing.OpponentDelayTicks < 0 {
		g.cfg.Pacing.OpponentDelayTicks = 0
	}

	g.session = core.NewSession(rules, g.rng)
	g.layout()
}

// buildRules maps the YAML config onto the rules the core understands.
func buildRules(cfg config.BattleshipConfig) core.Rules {
	policy := core.CountShips
	if cfg.Rules.CountPolicy == "cells" {
		policy = core.CountCells
	}
	roster := make([]core.Ship, len(cfg.Fleet))
	for i, s := range cfg.Fleet {
		roster[i] = core.Ship{Name: s.Name, Length: s.Length}
	}
	return core.Rules{
		GridSize:        cfg.Grid.Size,
		AdjacencyBuffer: cfg.Rules.AdjacencyBuffer,
		CountPolicy:     policy,
		Roster:          roster,
	}
}

// layout computes board positions and the too-small flag.
func (g *Game) layout() {
	n := g.session.Rules().GridSize
	g.boardW = n*2 + 2 // border + two chars per cell
	g.boardH = n + 2
	g.boardY = 3

	gap := 4
	totalW := g.boardW*2 + gap
	g.ownX = (g.screenW - totalW) / 2
	g.radarX = g.ownX + g.boardW + gap

	requiredW := totalW + 2
	requiredH := g.boardY + g.boardH + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	var events []platformcore.Event

	if input.Has(platformcore.ActionRestart) && g.session.Phase() == core.PhaseGameOver {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	switch g.session.Phase() {
	case core.PhaseWaitingToStart:
		if input.Has(platformcore.ActionConfirm) {
			if err := g.session.Start(); err != nil {
				g.flash("Fleet deployment failed", platformcore.ColorBrightRed)
				break
			}
			g.flash("Deploy your fleet", platformcore.ColorBrightCyan)
		}

	case core.PhasePlacingShips:
		g.moveCursor(input)
		if input.Has(platformcore.ActionRotate) {
			g.session.ToggleOrientation()
		}
		if input.Has(platformcore.ActionConfirm) {
			events = append(events, g.placeShip()...)
		}

	case core.PhasePlayerTurn:
		g.moveCursor(input)
		if input.Has(platformcore.ActionConfirm) {
			events = append(events, g.playerFire()...)
		}

	case core.PhaseOpponentTurn:
		if g.opponentDelay > 0 {
			g.opponentDelay--
			break
		}
		events = append(events, g.opponentFire()...)
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	return platformcore.StepResult{State: g.State(), Events: events}
}

// restart begins a fresh battle after game over, keeping the rng stream.
func (g *Game) restart() {
	if err := g.session.Reset(); err != nil {
		g.flash("Fleet deployment failed", platformcore.ColorBrightRed)
		return
	}
	g.opponentDelay = 0
	g.hasEnemyShot = false
	g.score = 0
	g.shots = 0
	g.hitsDealt = 0
	g.hitsTaken = 0
	g.shipsSunk = 0
	g.shipsLost = 0
	g.flash("Deploy your fleet", platformcore.ColorBrightCyan)
}

// moveCursor applies direction actions to the session cursor.
func (g *Game) moveCursor(input platformcore.InputFrame) {
	dx, dy := 0, 0
	if input.Has(platformcore.ActionUp) {
		dy--
	}
	if input.Has(platformcore.ActionDown) {
		dy++
	}
	if input.Has(platformcore.ActionLeft) {
		dx--
	}
	if input.Has(platformcore.ActionRight) {
		dx++
	}
	if dx != 0 || dy != 0 {
		g.session.MoveCursor(dx, dy)
	}
}

// placeShip commits the pending roster ship at the cursor.
func (g *Game) placeShip() []platformcore.Event {
	ship, err := g.session.PlaceCurrent()
	if err != nil {
		g.flash("Can't place there", platformcore.ColorBrightRed)
		return []platformcore.Event{platformcore.EventPlacementRejected}
	}

	events := []platformcore.Event{platformcore.EventShipPlaced}
	if g.session.Phase() == core.PhasePlayerTurn {
		g.flash("Enemy fleet sighted. Fire at will", platformcore.ColorBrightYellow)
	} else {
		g.flash(fmt.Sprintf("%s deployed", ship.Name), platformcore.ColorBrightGreen)
	}
	return events
}

// playerFire resolves the player's shot at the cursor.
func (g *Game) playerFire() []platformcore.Event {
	rep := g.session.PlayerShoot()

	switch rep.Outcome {
	case core.AttackAlreadyTried:
		g.flash("Already fired there", platformcore.ColorBrightYellow)
		return []platformcore.Event{platformcore.EventDuplicateAttack}

	case core.AttackHit:
		g.shots++
		g.hitsDealt++
		g.score += 10
		events := []platformcore.Event{platformcore.EventHit}
		if rep.SunkShip {
			g.shipsSunk++
			g.score += 25
			events = append(events, platformcore.EventShipSunk)
			g.flash(fmt.Sprintf("Enemy %s destroyed!", rep.Sunk.Name), platformcore.ColorBrightGreen)
		} else {
			g.flash("Direct hit!", platformcore.ColorBrightRed)
		}
		if rep.GameOver {
			g.score += 100
			events = append(events, platformcore.EventWin)
			g.flash("Victory! Enemy fleet destroyed", platformcore.ColorBrightGreen)
		} else {
			g.opponentDelay = g.cfg.Pacing.OpponentDelayTicks
		}
		return events

	default: // miss
		g.shots++
		g.flash("Splash... miss", platformcore.ColorBrightBlue)
		g.opponentDelay = g.cfg.Pacing.OpponentDelayTicks
		return []platformcore.Event{platformcore.EventMiss}
	}
}

// opponentFire lets the gunner take its delayed turn.
func (g *Game) opponentFire() []platformcore.Event {
	rep := g.session.OpponentShoot()
	g.enemyShot = rep.Target
	g.hasEnemyShot = true

	if rep.Outcome == core.AttackHit {
		g.hitsTaken++
		events := []platformcore.Event{platformcore.EventHit}
		if rep.SunkShip {
			g.shipsLost++
			events = append(events, platformcore.EventShipSunk)
			g.flash(fmt.Sprintf("Your %s was destroyed", rep.Sunk.Name), platformcore.ColorBrightRed)
		} else {
			g.flash("Your fleet is taking fire", platformcore.ColorBrightRed)
		}
		if rep.GameOver {
			events = append(events, platformcore.EventLose)
			g.flash("Defeat. Your fleet is at the bottom", platformcore.ColorBrightRed)
		}
		return events
	}

	g.flash("Enemy shot splashed wide", platformcore.ColorBrightCyan)
	return []platformcore.Event{platformcore.EventMiss}
}

// flash sets the status line for the configured number of ticks.
func (g *Game) flash(msg string, c platformcore.Color) {
	g.message = msg
	g.messageColor = c
	g.messageTicks = g.cfg.Pacing.MessageTicks
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	phase := g.session.Phase()
	return platformcore.GameState{
		Score:    g.score,
		GameOver: phase == core.PhaseGameOver,
		Won:      phase == core.PhaseGameOver && g.session.PlayerWon(),
		Paused:   g.paused,
	}
}

// Report summarizes a finished battle for persistence.
type Report struct {
	Variant   string
	Won       bool
	Score     int
	Shots     int
	Hits      int
	ShipsSunk int
	ShipsLost int
	Ticks     uint64
}

// Report returns the battle statistics accumulated so far.
func (g *Game) Report() Report {
	return Report{
		Variant:   g.ID(),
		Won:       g.session.Phase() == core.PhaseGameOver && g.session.PlayerWon(),
		Score:     g.score,
		Shots:     g.shots,
		Hits:      g.hitsDealt,
		ShipsSunk: g.shipsSunk,
		ShipsLost: g.shipsLost,
		Ticks:     g.tick,
	}
}
