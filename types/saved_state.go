// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

// SavedState is the persisted/exchanged triple captured on disconnect and
// offered to rejoining or lagging nodes during synchronization. An empty
// Snapshot (length 0) conventionally means "no prior state, activate fresh".
type SavedState struct {
	Snapshot           []byte
	LastCommittedPhase Phase
	PendingBatches     []Batch
}

// IsFresh reports whether this SavedState carries no prior progress.
func (s SavedState) IsFresh() bool { return len(s.Snapshot) == 0 }
