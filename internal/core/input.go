package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionUpLeft            // Q
	ActionUpRight           // E
	ActionDownLeft          // A
	ActionDownRight         // D
	ActionLeft              // Left arrow
	ActionRight             // Right arrow
	ActionSelect            // Enter - pick a stone to swap
	ActionSpawn             // N - spawn a random stone
	ActionDestroy           // X - destroy a stone
	ActionDestroyAll        // Space - clear the board
	ActionPause             // P
	ActionRestart           // R
	ActionQuit              // Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionUpLeft:
		return "UpLeft"
	case ActionUpRight:
		return "UpRight"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDownRight:
		return "DownRight"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionSpawn:
		return "Spawn"
	case ActionDestroy:
		return "Destroy"
	case ActionDestroyAll:
		return "DestroyAll"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
