package hexmatch

import "github.com/vovakirdan/tui-hexmatch/internal/hex"

// Snapshot captures the visible game state for tests and replays.
type Snapshot struct {
	Tick      uint64
	Level     string
	Score     int // Engine score
	Shown     int // Score on the HUD
	MovesLeft int
	Cursor    hex.Coord
	Selected  bool
	Busy      bool
	GameOver  bool
	Board     map[hex.Coord]int // Visible colour per occupied cell
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:      g.tick,
		Level:     st.Level,
		Score:     st.Score,
		Shown:     int(g.shownScore),
		MovesLeft: st.MovesLeft,
		Cursor:    g.cursor,
		Selected:  g.selected,
		Busy:      st.Busy,
		GameOver:  st.GameOver,
		Board:     make(map[hex.Coord]int),
	}
	if g.view != nil {
		for pos := range g.view.cells {
			color, _, _ := g.view.stone(pos)
			snap.Board[pos] = color
		}
	}
	return snap
}

// InSync reports whether the visible board shows the engine grid exactly.
func (g *Game) InSync() bool {
	return g.eng != nil && g.view.matches(g.eng.Grid())
}
