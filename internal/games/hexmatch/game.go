// Package hexmatch is the playable match-3 game on top of the engine.
// It turns cursor input into engine commands, plays engine batches back
// against the tick clock and tracks the move budget.
package hexmatch

import (
	"errors"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/engine"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
)

// Variant binds a game ID to its default level.
type Variant struct {
	ID    string
	Title string
	Level string
}

// Variants lists the registered games.
var Variants = []Variant{
	{ID: "hexmatch", Title: "Hex Match", Level: "ring"},
	{ID: "hexmatch_hexagon", Title: "Hex Match (Hexagon)", Level: "hexagon"},
	{ID: "hexmatch_rect", Title: "Hex Match (Rectangle)", Level: "hexrect"},
	{ID: "squarematch", Title: "Square Match", Level: "square"},
}

// levelRef stores the level path or builtin ID set via CLI
var levelRef string

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetLevelPath overrides the variant's level with a level file or builtin ID.
func SetLevelPath(ref string) {
	levelRef = ref
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetLogger sets the logger handed to every new game's engine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the match game.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	dt      time.Duration

	cfg        config.HexMatchConfig
	difficulty *config.DifficultyManager

	level       level.Level
	eng         *engine.Engine
	geom        board.Geometry
	fullPalette []int
	baseColors  int
	loadErr     error

	view *visualBoard
	play player

	cursor    hex.Coord
	selected  bool
	moves     int // Budget, 0 for unlimited
	movesUsed int

	shownScore float64
	scoreFrom  int
	scoreTo    int
	scoreAge   time.Duration

	tick     uint64
	paused   bool
	gameOver bool
	halted   bool
}

// New creates a game for v.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Reset loads the level and config and fills the board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.dt = time.Second / time.Duration(runtime.TickRate)

	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.halted = false
	g.selected = false
	g.movesUsed = 0
	g.shownScore, g.scoreFrom, g.scoreTo, g.scoreAge = 0, 0, 0, 0
	g.play = player{}
	g.loadErr = nil

	cfg, err := LoadConfig(configPath, difficultyPreset)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	ref := g.variant.Level
	if levelRef != "" {
		ref = levelRef
	}
	lvl, err := level.Resolve(ref)
	if err != nil {
		g.fail(err)
		return
	}
	g.level = lvl

	eng, err := NewEngine(lvl, cfg, runtime.Seed)
	if err != nil {
		g.fail(err)
		return
	}
	eng.SetLogger(logger.WithPrefix(lvl.ID))
	g.eng = eng
	g.geom = eng.Config().Geometry

	base, full := Palettes(lvl, cfg)
	g.fullPalette = full
	g.baseColors = len(base)
	g.syncPalette()

	g.moves = MoveBudget(lvl, cfg)
	g.view = newVisualBoard(eng.Grid())
	g.cursor = startCursor(eng.Grid().Positions())

	if err := eng.Populate(BlockerChance(lvl, cfg)); err != nil {
		g.fail(err)
		return
	}
	logger.Info("level loaded", "game", g.variant.ID, "level", lvl.ID, "cells", eng.Grid().Len(), "moves", g.moves)
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.eng = nil
	g.gameOver = true
	logger.Error("cannot start level", "game", g.variant.ID, "error", err)
}

// Err returns the error that prevented the level from loading.
func (g *Game) Err() error { return g.loadErr }

// startCursor picks the position closest to the board's centre.
func startCursor(positions []hex.Coord) hex.Coord {
	if len(positions) == 0 {
		return hex.Zero
	}
	var sum hex.Coord
	for _, p := range positions {
		sum = sum.Add(p)
	}
	centre := hex.C(sum.Q/len(positions), sum.R/len(positions))
	best := positions[0]
	for _, p := range positions[1:] {
		if hex.Distance(p, centre) < hex.Distance(best, centre) {
			best = p
		}
	}
	return best
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && (g.gameOver || g.paused || g.eng == nil) {
		next := g.runtime
		next.Seed++
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.advance()
	g.handleInput(in)
	g.updateScore()
	g.view.decay(g.dt)

	if g.moves > 0 && g.movesUsed >= g.moves && g.idle() {
		g.gameOver = true
		logger.Info("game over", "level", g.level.ID, "score", g.eng.Score(), "stones", g.eng.Destroyed())
	}

	return core.StepResult{State: g.State()}
}

// idle reports whether the engine and the playback are both at rest.
func (g *Game) idle() bool {
	return !g.play.active && !g.eng.Busy()
}

// advance plays the current batch for one tick and pulls the next one,
// stepping the engine whenever nothing is pending.
func (g *Game) advance() {
	if g.play.active {
		g.play.elapsed += g.dt
		g.applyDue()
		if !g.play.finished() {
			return
		}
		g.play.active = false
		g.eng.Done()
	}

	for {
		if b, ok := g.eng.Next(); ok {
			clear(g.view.moved)
			g.play.start(b)
			g.applyDue()
			return
		}
		if !g.eng.Update() {
			break
		}
	}

	if !g.eng.Busy() {
		g.onRunEnd()
	}
}

func (g *Game) applyDue() {
	for _, ev := range g.play.due() {
		g.view.apply(ev, g.cfg.Timing.Tween())
		if sc, ok := ev.(engine.ScoreChanged); ok {
			g.scoreFrom = int(g.shownScore)
			g.scoreTo = sc.New
			g.scoreAge = 0
		}
	}
}

// onRunEnd records a halted run and grows the palette with difficulty.
func (g *Game) onRunEnd() {
	halted := g.eng.State() == engine.StateHalted
	if halted && !g.halted {
		logger.Warn("board did not settle", "level", g.level.ID, "error", g.eng.LastRun().Err())
	}
	g.halted = halted
	g.syncPalette()
}

// syncPalette applies the difficulty palette size to the engine.
func (g *Game) syncPalette() {
	n := g.difficulty.Colors(g.baseColors, len(g.fullPalette), g.eng.Score(), g.movesUsed)
	if n == len(g.eng.Config().Palette) {
		return
	}
	if err := g.eng.SetPalette(g.fullPalette[:n]); err != nil {
		logger.Warn("palette not changed", "colors", n, "error", err)
		return
	}
	logger.Debug("palette changed", "colors", n)
}

// handleInput moves the cursor and issues engine commands.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionSelect) {
		g.toggleSelect()
	}

	for _, a := range directionActions {
		if !in.Has(a) {
			continue
		}
		target, ok := g.neighbor(a)
		if !ok {
			continue
		}
		if g.selected {
			g.swap(g.cursor, target)
		}
		g.cursor = target
		break
	}

	switch {
	case in.Has(core.ActionSpawn):
		g.command(func() bool { return g.eng.TrySpawnRandom(g.cursor) })
	case in.Has(core.ActionDestroy):
		g.command(func() bool { return g.eng.TryDestroy(g.cursor) })
	case in.Has(core.ActionDestroyAll):
		g.command(g.eng.TryDestroyAll)
	}
}

// directionActions are checked in this order; one move per tick.
var directionActions = []core.Action{
	core.ActionUp, core.ActionDown,
	core.ActionUpLeft, core.ActionUpRight,
	core.ActionDownLeft, core.ActionDownRight,
	core.ActionLeft, core.ActionRight,
}

// actionDirections maps an action to the directions tried in order.
// Left and Right have no hex direction of their own.
var actionDirections = map[core.Action][]hex.Direction{
	core.ActionUp:        {hex.DirUp},
	core.ActionDown:      {hex.DirDown},
	core.ActionUpLeft:    {hex.DirUpLeft},
	core.ActionUpRight:   {hex.DirUpRight},
	core.ActionDownLeft:  {hex.DirDownLeft},
	core.ActionDownRight: {hex.DirDownRight},
	core.ActionLeft:      {hex.DirUpLeft, hex.DirDownLeft},
	core.ActionRight:     {hex.DirDownRight, hex.DirUpRight},
}

// neighbor returns the board position next to the cursor for action a.
func (g *Game) neighbor(a core.Action) (hex.Coord, bool) {
	grid := g.eng.Grid()
	for _, d := range actionDirections[a] {
		if p := g.geom.Neighbor(g.cursor, d); grid.HasCell(p) {
			return p, true
		}
	}
	return g.cursor, false
}

func (g *Game) toggleSelect() {
	if g.selected {
		g.selected = false
		return
	}
	s, err := g.eng.Grid().Occupant(g.cursor)
	g.selected = err == nil && s != nil && s.CanMove
}

// swap exchanges two adjacent stones, spending a move if the engine
// accepts it.
func (g *Game) swap(a, b hex.Coord) {
	g.selected = false
	if !g.geom.Adjacent(a, b) || g.outOfMoves() {
		return
	}
	err := g.eng.Swap(a, b)
	switch {
	case err == nil:
		g.movesUsed++
	case errors.Is(err, engine.ErrBusy):
	default:
		logger.Debug("swap rejected", "from", a, "to", b, "error", err)
	}
}

// command runs a board command, spending a move when the level has a budget.
func (g *Game) command(try func() bool) {
	if g.outOfMoves() {
		return
	}
	if try() {
		g.movesUsed++
	}
}

func (g *Game) outOfMoves() bool {
	return g.moves > 0 && g.movesUsed >= g.moves
}

// updateScore moves the displayed score toward the engine score.
func (g *Game) updateScore() {
	tween := g.cfg.Timing.ScoreTween()
	g.scoreAge += g.dt
	if tween <= 0 || g.scoreAge >= tween {
		g.shownScore = float64(g.scoreTo)
		return
	}
	frac := float64(g.scoreAge) / float64(tween)
	g.shownScore = float64(g.scoreFrom) + frac*float64(g.scoreTo-g.scoreFrom)
}

// MovesLeft returns the remaining swaps, -1 when unlimited.
func (g *Game) MovesLeft() int {
	if g.moves == 0 {
		return -1
	}
	return max(0, g.moves-g.movesUsed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		MovesLeft: g.MovesLeft(),
		MovesUsed: g.movesUsed,
		Level:     g.level.ID,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
	if g.eng != nil {
		st.Score = g.eng.Score()
		st.Stones = g.eng.Destroyed()
		st.Busy = !g.idle()
	}
	return st
}

// Palette returns the colours refill currently draws from.
func (g *Game) Palette() []int {
	if g.eng == nil {
		return nil
	}
	return slices.Clone(g.eng.Config().Palette)
}
