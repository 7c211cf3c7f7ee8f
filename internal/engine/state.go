package engine

// State is the phase of the simulation run.
type State int

const (
	StateIdle     State = iota // no run has happened yet
	StateStepping              // a run is in progress
	StateStable                // the last run ended with a step that changed nothing
	StateHalted                // the last run hit the depth bound
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStepping:
		return "stepping"
	case StateStable:
		return "stable"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// RunResult summarizes a finished simulation run.
type RunResult struct {
	Steps    int  // Steps executed, including the final unchanged one
	Stable   bool // False when the depth bound stopped the run
	Reverted bool // A swap was undone because it produced no change
}

// Err returns ErrDepthExceeded for halted runs.
func (r RunResult) Err() error {
	if r.Steps > 0 && !r.Stable {
		return ErrDepthExceeded
	}
	return nil
}
