// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package statemachine defines the narrow replicated-state-machine
// collaborator the Rabia engine applies decided batches to.
package statemachine

import "github.com/luxfi/rabia/types"

// StateMachine is the application-specific state machine the core applies
// decided batches to. Process must be deterministic: every replica that
// applies the same commands in the same order must observe the same
// results and reach the same internal state.
type StateMachine interface {
	// Process applies commands, in order, and returns one Result per
	// Command.
	Process(commands []types.Command) ([]types.Result, error)

	// MakeSnapshot captures the current state as an opaque byte string.
	MakeSnapshot() ([]byte, error)

	// RestoreSnapshot replaces the current state with the one captured by
	// a prior MakeSnapshot call.
	RestoreSnapshot(snapshot []byte) error

	// Reset discards all state, returning the machine to its initial
	// condition.
	Reset()
}
