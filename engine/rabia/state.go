// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rabia implements the Rabia consensus engine: the serial
// dispatcher, protocol handlers, synchronization subsystem, and phase
// reaper. Everything here is owned exclusively by a single logical
// executor; concurrent producers only ever enqueue work, never mutate
// state directly.
package rabia

import "github.com/luxfi/rabia/types"

// EngineState is the process-wide engine state. It is mutated only from
// the engine's serial executor.
type EngineState struct {
	currentPhase       types.Phase
	lastCommittedPhase types.Phase
	isInPhase          bool
	active             bool
	lockedValue        *types.StateValue
}

func newEngineState() EngineState {
	return EngineState{currentPhase: types.GenesisPhase, lastCommittedPhase: types.GenesisPhase}
}

// Snapshot is a read-only, externally publishable view of EngineState, for
// metrics and health reporting: external readers must use an
// atomically-published copy rather than touching EngineState directly.
type Snapshot struct {
	CurrentPhase       types.Phase
	LastCommittedPhase types.Phase
	IsInPhase          bool
	Active             bool
}

func (s EngineState) snapshot() Snapshot {
	return Snapshot{
		CurrentPhase:       s.currentPhase,
		LastCommittedPhase: s.lastCommittedPhase,
		IsInPhase:          s.isInPhase,
		Active:             s.active,
	}
}

// consumeLockedValue returns and clears the locked value, if any.
func (s *EngineState) consumeLockedValue() (types.StateValue, bool) {
	if s.lockedValue == nil {
		return types.V0, false
	}
	v := *s.lockedValue
	s.lockedValue = nil
	return v, true
}

func (s *EngineState) setLockedValue(v types.StateValue) {
	s.lockedValue = &v
}
