// Package tetris implements the falling-block simulation: the well, the
// seven tetromino families with precomputed rotation states, and the
// gravity/scoring loop. It is pure logic driven by the platform once per
// tick; rendering and input mapping live in the platform layer.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Package-level knobs set by the CLI before the game is created.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the tuning config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-10). 0 means start at level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// Game is the session state machine: Playing until a piece locks above the
// well or a fresh spawn does not fit, then GameOver until restart.
type Game struct {
	cfg      config.TetrisConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	board   *Board
	current Piece
	next    Piece

	score        int
	lines        int
	level        int
	startLevel   int
	fallInterval float64 // Seconds between forced drops
	fallTicks    int     // fallInterval converted to simulation ticks
	fallTicker   int     // Ticks since the last forced drop

	gameOver bool
	paused   bool

	screenW int
	screenH int
}

// New creates a new game. State is established by Reset.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the session: empty well, fresh current and next
// pieces, score and level reset, gravity timer primed from the tuning config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tuning, err := config.LoadTetris(configPath)
	if err != nil {
		tuning = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&tuning, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = tuning

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.tick = 0
	g.score = 0
	g.lines = 0
	g.gameOver = false
	g.paused = false

	// A freshly selected start level wins; otherwise keep the session's
	// choice so in-game restarts don't demote the player to level 1.
	if selectedStartLevel > 0 {
		g.startLevel = selectedStartLevel
		selectedStartLevel = 0 // Consumed
	} else if g.startLevel < 1 {
		g.startLevel = 1
	}
	g.level = g.startLevel
	g.applyGravity()
	g.fallTicker = 0

	g.board = NewBoard(tuning.Well.Columns, tuning.Well.Rows)
	g.current = g.spawn()
	g.next = g.spawn()
}

// spawn produces a random-family piece placed above the well.
func (g *Game) spawn() Piece {
	return Spawn(Kind(g.rng.Intn(int(kindCount))), g.board.Columns())
}

// applyGravity recomputes the fall interval for the current level and
// converts it to whole ticks (at least one).
func (g *Game) applyGravity() {
	g.fallInterval = g.cfg.Gravity.IntervalForLevel(g.level)
	g.fallTicks = core.Max(1, int(g.fallInterval*float64(g.tickRate)+0.5))
}

// Step advances the game by one tick: frame commands first, in arrival
// order, then the gravity update.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Game over accepts nothing but restart
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Frame commands are edge-triggered: every buffered command applies,
	// in the order the host delivered it. Pause is itself a command, so a
	// move buffered before the pause press still lands, and two pause
	// presses in one frame toggle twice.
	for _, action := range in.Actions() {
		if action == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused {
			continue
		}
		switch action {
		case core.ActionLeft:
			g.current.MoveLeft(g.board)
		case core.ActionRight:
			g.current.MoveRight(g.board)
		case core.ActionRotateCW:
			g.current.RotateCW(g.board)
		case core.ActionRotateCCW:
			g.current.RotateCCW(g.board)
		case core.ActionSoftDrop:
			g.current.SoftDrop(g.board)
		case core.ActionHardDrop:
			g.current.HardDrop(g.board)
			g.lockPiece()
			g.fallTicker = 0
			if g.gameOver {
				return core.StepResult{State: g.State()}
			}
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Gravity: force a drop every fallTicks; a blocked drop locks the piece.
	g.fallTicker++
	if g.fallTicker >= g.fallTicks {
		g.fallTicker = 0
		if !g.current.SoftDrop(g.board) {
			g.lockPiece()
		}
	}

	return core.StepResult{State: g.State()}
}

// lockPiece merges the current piece into the well, clears completed rows,
// applies the reward table at the pre-update level, promotes the next piece
// and spawns a new lookahead. Game over when the merge reached above the
// well or the promoted piece does not fit its spawn placement.
func (g *Game) lockPiece() {
	aboveWell := g.board.Merge(g.current.Cells(), g.current.Kind.Color())

	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.score += g.cfg.Scoring.RewardFor(cleared) * g.level
		g.lines += cleared
		g.level = core.Max(g.startLevel, g.lines/g.cfg.Scoring.LinesPerLevel+1)
		g.applyGravity()
	}

	g.current = g.next
	g.next = g.spawn()

	if aboveWell || !g.board.Fits(g.current.Cells()) {
		g.gameOver = true
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// --- Rendering ---

// Layout constants. Well cells render two runes wide so the playfield is
// roughly square in terminal aspect.
const (
	cellWidth  = 2
	panelWidth = 14
	panelGap   = 2
	hudHeight  = 2
)

// Render draws the well, the falling piece, the next-piece preview and the
// session stats into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	wellW := g.board.Columns()*cellWidth + 2
	wellH := g.board.Rows() + 2
	totalW := wellW + panelGap + panelWidth

	if dst.Width() < totalW || dst.Height() < hudHeight+wellH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	wellX := (dst.Width() - totalW) / 2
	wellY := hudHeight
	panelX := wellX + wellW + panelGap

	g.renderWell(dst, wellX, wellY)
	g.renderPanel(dst, panelX, wellY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Lines: %d  Level: %d", g.score, g.lines, g.level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the well border, the locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, g.board.Columns()*cellWidth+2, g.board.Rows()+2))

	grid := g.board.Grid()
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col].Occupied {
				g.renderCell(dst, x, y, col, row, grid[row][col].Color)
			}
		}
	}

	// Spawn-buffer cells (row < 0) stay hidden until they enter the well.
	for _, c := range g.current.Cells() {
		if c.Row >= 0 {
			g.renderCell(dst, x, y, c.Col, c.Row, g.current.Kind.Color())
		}
	}
}

// renderCell fills one well cell (two runes wide) inside the border.
func (g *Game) renderCell(dst *core.Screen, wellX, wellY, col, row int, color core.Color) {
	px := wellX + 1 + col*cellWidth
	py := wellY + 1 + row
	dst.SetCell(px, py, '█', color)
	dst.SetCell(px+1, py, '█', color)
}

// renderPanel draws the next-piece preview and the session stats.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	previewH := 6
	dst.DrawBox(core.NewRect(x, y, panelWidth, previewH))
	dst.DrawText(x+2, y, "Next")

	for _, c := range g.next.Cells() {
		// Preview uses pattern offsets, not well coordinates.
		px := x + 2 + (c.Col-g.next.Col)*cellWidth
		py := y + 1 + (c.Row - g.next.Row)
		dst.SetCell(px, py, '█', g.next.Kind.Color())
		dst.SetCell(px+1, py, '█', g.next.Kind.Color())
	}

	statsY := y + previewH + 1
	dst.DrawText(x, statsY, fmt.Sprintf("Score %d", g.score))
	dst.DrawText(x, statsY+1, fmt.Sprintf("Lines %d", g.lines))
	dst.DrawText(x, statsY+2, fmt.Sprintf("Level %d", g.level))
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
