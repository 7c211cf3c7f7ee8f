package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexmatch/internal/registry"
	"github.com/vovakirdan/tui-hexmatch/internal/storage"
)

// maxScores is the number of rows loaded per game.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevGame, k.NextGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	err        error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a scoreboard starting at gameID, or at the
// first registered game when gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Level", Width: 10},
		{Title: "Stones", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// current returns the selected game, if any.
func (m ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.gameCursor], true
}

// load reads scores and stats for the selected game.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	g, ok := m.current()
	if ok && m.store != nil {
		m.scores, m.err = m.store.TopScores(g.ID, maxScores)
		if m.err == nil {
			m.stats, m.err = m.store.GameStats(g.ID)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.Level,
			strconv.Itoa(s.Stones),
			strconv.Itoa(s.MovesUsed),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shift(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// shift moves the game selection by delta, wrapping around.
func (m *ScoreboardModel) shift(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(m.body()))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(mutedStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) body() string {
	switch {
	case m.err != nil:
		return "Cannot read scores: " + m.err.Error()
	case m.store == nil:
		return "Score storage is disabled."
	case len(m.scores) == 0:
		return mutedStyle.Italic(true).Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		return m.table.View()
	}
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  best %d  average %.0f  %d stones  last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.Stones,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
