// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import "github.com/luxfi/rabia/types"

// reapPhases drops PhaseState for any phase more than removeOlderThanPhases
// behind the current phase, bounding memory for a long-running node. Must
// run on the executor.
func (e *Engine) reapPhases() {
	current := e.Snapshot().CurrentPhase
	threshold := e.cfg.RemoveOlderThanPhases

	removed := 0
	for phase := range e.phases {
		if !phase.Less(current) {
			continue
		}
		if uint64(current)-uint64(phase) > threshold {
			delete(e.phases, phase)
			removed++
		}
	}
	if removed > 0 {
		e.metrics.PhasesReaped(removed)
	}
}
