package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
	"github.com/vovakirdan/tui-hexmatch/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store     *storage.Store // nil disables score saving
	SessionID string
	Logger    *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       GameKeyMap
	mapper     *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the score was saved for the current game over
	savedID    int64
}

// helpHeight is the number of rows below the game screen.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SessionID == "" {
		opts.SessionID = storage.NewSessionID()
	}

	keys := DefaultGameKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		opts:       opts,
		config:     cfg,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, max(1, m.config.ScreenH-m.helpRows()))
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer. The game keeps its state and
// recomputes its layout on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-m.helpRows()))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return helpHeight
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// handleTick advances the game by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.savedID = 0
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the finished game. Saving is best effort.
func (m *Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.opts.Store.SaveScore(storage.Result{
		SessionID: m.opts.SessionID,
		GameID:    m.game.ID(),
		Level:     m.gameState.Level,
		Score:     m.gameState.Score,
		Stones:    m.gameState.Stones,
		MovesUsed: m.gameState.MovesUsed,
	})
	if err != nil {
		m.opts.Logger.Warn("score not saved", "game", m.game.ID(), "error", err)
		return
	}
	m.savedID = id
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "id", id)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".hexmatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// SavedID returns the row ID of the score saved for the current game over,
// or 0.
func (m Model) SavedID() int64 {
	return m.savedID
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
