package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
)

// MenuKeyMap defines the key bindings for the menus.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// LevelItem is a level offered by the level picker.
type LevelItem struct {
	Ref   string // Builtin ID or file path, as accepted by level.Resolve
	Name  string
	Shape string
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           string // Empty keeps the game's default level
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// MenuModel is the Bubble Tea model for the game and level picker.
type MenuModel struct {
	games       []registry.GameInfo
	levels      []LevelItem
	cursor      int
	levelCursor int
	inLevels    bool
	config      core.RuntimeConfig
	keys        MenuKeyMap
	result      MenuResult
	done        bool
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates a menu over the registered games. The first level
// entry always means "the game's default level".
func NewMenuModel(levels []LevelItem, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		games:  registry.List(),
		levels: append([]LevelItem{{Name: "Default level"}}, levels...),
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.finish(MenuResult{Quit: true})
	case key.Matches(msg, m.keys.Scores):
		return m.finish(MenuResult{WantsScoreboard: true})
	case key.Matches(msg, m.keys.Back):
		if m.inLevels {
			m.inLevels = false
			return m, nil
		}
		return m.finish(MenuResult{Quit: true})
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Select):
		if len(m.games) == 0 {
			return m, nil
		}
		if !m.inLevels {
			m.inLevels = true
			m.levelCursor = 0
			return m, nil
		}
		return m.finish(MenuResult{
			GameID: m.games[m.cursor].ID,
			Level:  m.levels[m.levelCursor].Ref,
		})
	}
	return m, nil
}

// move shifts the active cursor, clamped to its list.
func (m *MenuModel) move(delta int) {
	if m.inLevels {
		m.levelCursor = core.Clamp(m.levelCursor+delta, 0, len(m.levels)-1)
		return
	}
	m.cursor = core.Clamp(m.cursor+delta, 0, max(0, len(m.games)-1))
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	r.Config = m.config
	m.result = r
	m.done = true
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("H E X   M A T C H"), width))
	b.WriteString("\n\n")

	if m.inLevels {
		b.WriteString(centerText(m.games[m.cursor].Title+": select a level", width))
		b.WriteString("\n\n")
		for i, l := range m.levels {
			line := l.Name
			if l.Shape != "" {
				line = fmt.Sprintf("%-22s %s", l.Name, menuMutedStyle.Render(l.Shape))
			}
			b.WriteString(centerText(m.entry(line, i == m.levelCursor), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuMutedStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit"), width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a game", width))
	b.WriteString("\n\n")
	if len(m.games) == 0 {
		b.WriteString(centerText(menuMutedStyle.Render("No games available."), width))
		b.WriteString("\n")
	}
	for i, g := range m.games {
		b.WriteString(centerText(m.entry(g.Title, i == m.cursor), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuMutedStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) entry(text string, active bool) string {
	if active {
		return menuCursorStyle.Render("> " + text)
	}
	return "  " + text
}

// Result returns the menu outcome once the program has quit.
func (m MenuModel) Result() MenuResult {
	if !m.done {
		return MenuResult{Config: m.config, Quit: true}
	}
	return m.result
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the menu and returns the selection.
func RunMenu(levels []LevelItem, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(levels, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
