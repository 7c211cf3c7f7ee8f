package engine

// startRun begins a new simulation run after a command.
func (e *Engine) startRun() {
	e.state = StateStepping
	e.depth = 0
	e.run = RunResult{}
}

// enqueue adds a batch for playback. Empty batches are dropped.
func (e *Engine) enqueue(b Batch) {
	if len(b.Events) == 0 {
		return
	}
	e.pending = append(e.pending, b)
}

// Busy reports whether commands are currently rejected: a run is active,
// a batch is waiting to be taken, or a taken batch has not been acknowledged.
func (e *Engine) Busy() bool {
	return e.state == StateStepping || e.playing || len(e.pending) > 0
}

// Update advances the active run by one step. It does nothing while a batch
// is pending or playing, so each step starts only after the previous one
// has been played back. Returns whether anything happened.
func (e *Engine) Update() bool {
	if e.state != StateStepping || e.playing || len(e.pending) > 0 {
		return false
	}

	e.depth++
	changed, batch := e.Step(e.depth)
	e.enqueue(batch)

	if sw := e.swap; sw != nil {
		e.swap = nil
		if !changed {
			e.revert(sw)
			return true
		}
	}

	switch {
	case !changed:
		e.finish(true)
	case e.depth >= e.cfg.MaxDepth:
		e.finish(false)
	}
	return true
}

// revert undoes a swap that changed nothing and restarts the run. The
// revert is internal and not subject to the busy gate.
func (e *Engine) revert(sw *swapMove) {
	e.enqueue(e.swapEvents(sw.a, sw.b))
	e.depth = 0
	e.run.Reverted = true
}

func (e *Engine) finish(stable bool) {
	e.run.Steps = e.depth
	e.run.Stable = stable
	e.last = e.run

	if stable {
		e.state = StateStable
		e.logger.Debug("run finished", "steps", e.depth, "score", e.score.Total(), "reverted", e.run.Reverted)
		return
	}
	e.state = StateHalted
	e.logger.Warn("run halted", "steps", e.depth, "max_depth", e.cfg.MaxDepth, "error", ErrDepthExceeded)
}

// Next hands out the oldest pending batch. It returns false while another
// batch is still playing or nothing is pending.
func (e *Engine) Next() (Batch, bool) {
	if e.playing || len(e.pending) == 0 {
		return Batch{}, false
	}
	b := e.pending[0]
	e.pending = e.pending[1:]
	e.playing = true
	return b, true
}

// Done acknowledges playback of the batch returned by Next.
func (e *Engine) Done() {
	e.playing = false
}

// Settle drives the engine until it is idle, acknowledging every batch
// immediately. It returns the batches in order and the last run result.
func (e *Engine) Settle() ([]Batch, RunResult) {
	var out []Batch
	e.playing = false
	for {
		if b, ok := e.Next(); ok {
			out = append(out, b)
			e.Done()
			continue
		}
		if !e.Update() {
			break
		}
	}
	return out, e.last
}

// LastRun returns the result of the most recently finished run.
func (e *Engine) LastRun() RunResult {
	return e.last
}
