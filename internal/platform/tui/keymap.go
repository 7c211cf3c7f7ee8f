package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	UpLeft     key.Binding
	UpRight    key.Binding
	DownLeft   key.Binding
	DownRight  key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Spawn      key.Binding
	Destroy    key.Binding
	DestroyAll key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Select, k.Spawn, k.Destroy, k.DestroyAll},
		{k.Pause, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings. QE/AD reach the four
// diagonal hex neighbours; the arrows move straight.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		UpLeft:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "up-left")),
		UpRight:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "up-right")),
		DownLeft:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "down-left")),
		DownRight:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "down-right")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/swap")),
		Spawn:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "spawn")),
		Destroy:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "destroy")),
		DestroyAll: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "clear board")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper over keys.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.UpLeft, core.ActionUpLeft},
			{keys.UpRight, core.ActionUpRight},
			{keys.DownLeft, core.ActionDownLeft},
			{keys.DownRight, core.ActionDownRight},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Select, core.ActionSelect},
			{keys.Spawn, core.ActionSpawn},
			{keys.Destroy, core.ActionDestroy},
			{keys.DestroyAll, core.ActionDestroyAll},
			{keys.Pause, core.ActionPause},
			{keys.Restart, core.ActionRestart},
			{keys.Quit, core.ActionQuit},
		},
	}
}

// MapKey translates a key message to an action. ActionNone means the key
// is not bound to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame adds the action for msg to frame. It returns true if the
// key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
	default:
		frame.Set(action)
	}
	return false
}
