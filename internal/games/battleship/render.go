package battleship

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-armada/internal/core"

	"github.com/vovakirdan/tui-armada/internal/games/battleship/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderFleetBoard(dst)
	g.renderRadarBoard(dst)
	g.renderStatus(dst)

	switch {
	case g.session.Phase() == core.PhaseWaitingToStart:
		g.renderOverlay(dst, g.Title(), "Press Enter to begin")
	case g.session.Phase() == core.PhaseGameOver && g.session.PlayerWon():
		g.renderOverlay(dst, "Victory!", "Press N for a new battle")
	case g.session.Phase() == core.PhaseGameOver:
		g.renderOverlay(dst, "Defeat", "Press N for a new battle")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and board titles.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	policy := g.session.Rules().CountPolicy
	hud := fmt.Sprintf(" %s | Shots: %d  Your fleet: %d  Enemy: %d",
		g.Title(), g.shots,
		g.session.Player().Remaining(policy),
		g.session.Enemy().Remaining(policy))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	ownTitle := "YOUR FLEET"
	radarTitle := "TARGET RADAR"
	dst.DrawTextColored(g.ownX+(g.boardW-len(ownTitle))/2, g.boardY-1, ownTitle, platformcore.ColorBrightCyan)
	dst.DrawTextColored(g.radarX+(g.boardW-len(radarTitle))/2, g.boardY-1, radarTitle, platformcore.ColorBrightYellow)
}

// renderFleetBoard draws the player's own grid with ships visible.
func (g *Game) renderFleetBoard(dst *platformcore.Screen) {
	dst.DrawBox(platformcore.NewRect(g.ownX, g.boardY, g.boardW, g.boardH))

	n := g.session.Rules().GridSize
	own := g.session.Player().Ownership
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r1, r2, c := fleetCellRunes(own.Cell(x, y))
			if g.hasEnemyShot && g.enemyShot == core.C(x, y) {
				c = platformcore.ColorBrightYellow
			}
			g.drawCell(dst, g.ownX, x, y, r1, r2, c)
		}
	}

	if g.session.Phase() == core.PhasePlacingShips {
		g.renderGhost(dst)
	}
}

// fleetCellRunes maps an ownership cell to its two display runes and color.
// Misses are never recorded on an ownership grid.
func fleetCellRunes(s core.CellState) (rune, rune, platformcore.Color) {
	switch s {
	case core.CellShip:
		return '█', '█', platformcore.ColorCyan
	case core.CellHit:
		return 'X', 'X', platformcore.ColorBrightRed
	default:
		return '·', ' ', platformcore.ColorGray
	}
}

// renderGhost previews the pending ship's footprint at the cursor.
func (g *Game) renderGhost(dst *platformcore.Screen) {
	ship, ok := g.session.NextShip()
	if !ok {
		return
	}
	cur := g.session.Cursor()
	ok = core.CanPlace(g.session.Player().Ownership, cur.X, cur.Y,
		ship.Length, g.session.Horizontal(), g.session.Rules().AdjacencyBuffer)

	c := platformcore.ColorBrightGreen
	if !ok {
		c = platformcore.ColorBrightRed
	}
	n := g.session.Rules().GridSize
	for i := 0; i < ship.Length; i++ {
		x, y := cur.X, cur.Y
		if g.session.Horizontal() {
			x += i
		} else {
			y += i
		}
		if x >= n || y >= n {
			continue
		}
		g.drawCell(dst, g.ownX, x, y, '▒', '▒', c)
	}
}

// renderRadarBoard draws the enemy grid as the player knows it. It reads
// only the player's attack map, so un-hit enemy ships never show.
func (g *Game) renderRadarBoard(dst *platformcore.Screen) {
	dst.DrawBox(platformcore.NewRect(g.radarX, g.boardY, g.boardW, g.boardH))

	n := g.session.Rules().GridSize
	radar := g.session.Player().AttackMap
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var r1, r2 rune
			var c platformcore.Color
			switch radar.Cell(x, y) {
			case core.CellHit:
				r1, r2, c = 'X', 'X', platformcore.ColorBrightRed
			case core.CellMiss:
				r1, r2, c = '~', ' ', platformcore.ColorBrightBlue
			default:
				r1, r2, c = '·', ' ', platformcore.ColorGray
			}
			g.drawCell(dst, g.radarX, x, y, r1, r2, c)
		}
	}

	if g.session.Phase() == core.PhasePlayerTurn {
		cur := g.session.Cursor()
		g.drawCell(dst, g.radarX, cur.X, cur.Y, '[', ']', platformcore.ColorBrightYellow)
	}
}

// drawCell paints one two-character grid cell inside a board box.
func (g *Game) drawCell(dst *platformcore.Screen, boardX, x, y int, r1, r2 rune, c platformcore.Color) {
	px := boardX + 1 + x*2
	py := g.boardY + 1 + y
	dst.SetColored(px, py, r1, c)
	dst.SetColored(px+1, py, r2, c)
}

// renderStatus draws the flash message and the per-phase key help.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	statusY := g.boardY + g.boardH
	if g.message != "" {
		x := (dst.Width() - len(g.message)) / 2
		dst.DrawTextColored(x, statusY, g.message, g.messageColor)
	}

	var help string
	switch g.session.Phase() {
	case core.PhasePlacingShips:
		if ship, ok := g.session.NextShip(); ok {
			dir := "horizontal"
			if !g.session.Horizontal() {
				dir = "vertical"
			}
			help = fmt.Sprintf("Placing %s (%d cells, %s) - arrows move, R rotates, Enter places",
				ship.Name, ship.Length, dir)
		}
	case core.PhasePlayerTurn:
		help = "Arrows aim, Enter fires"
	case core.PhaseOpponentTurn:
		help = "Enemy is taking aim..."
	}
	if help != "" {
		dst.DrawTextCentered(statusY+1, help)
	}
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 6
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
