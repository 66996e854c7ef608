// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package persistence

import (
	"errors"

	"github.com/luxfi/database"
	"github.com/luxfi/rabia/types"
)

// savedStateKey is the sole key this adapter ever writes; the engine keeps
// exactly one SavedState per node.
var savedStateKey = []byte("rabia/saved-state")

// DBAdapter is an Adapter backed by a database.Database, the same narrow
// KV interface the rest of this codebase family's storage layers consume.
// Any concrete implementation (in-memory, disk-backed) works underneath it
// unchanged.
type DBAdapter struct {
	db database.Database
}

// NewDBAdapter returns an Adapter writing to db.
func NewDBAdapter(db database.Database) *DBAdapter {
	return &DBAdapter{db: db}
}

func (a *DBAdapter) Save(state types.SavedState) error {
	wire := toWire(state)
	data, err := marshal(currentCodecVersion, wire)
	if err != nil {
		return err
	}
	return a.db.Put(savedStateKey, data)
}

func (a *DBAdapter) Load() (types.SavedState, bool, error) {
	data, err := a.db.Get(savedStateKey)
	if errors.Is(err, database.ErrNotFound) {
		return types.SavedState{}, false, nil
	}
	if err != nil {
		return types.SavedState{}, false, err
	}

	var wire wireSavedState
	if _, err := unmarshal(data, &wire); err != nil {
		return types.SavedState{}, false, err
	}
	return fromWire(wire), true, nil
}

func toWire(s types.SavedState) wireSavedState {
	batches := make([]wireBatch, len(s.PendingBatches))
	for i, b := range s.PendingBatches {
		cmds := make([][]byte, len(b.Commands))
		for j, c := range b.Commands {
			cmds[j] = []byte(c)
		}
		batches[i] = wireBatch{
			Id:            b.Id,
			CorrelationId: b.CorrelationId,
			Timestamp:     b.Timestamp,
			Commands:      cmds,
		}
	}
	return wireSavedState{
		Version:            currentCodecVersion,
		Snapshot:           s.Snapshot,
		LastCommittedPhase: uint64(s.LastCommittedPhase),
		PendingBatches:     batches,
	}
}

func fromWire(w wireSavedState) types.SavedState {
	batches := make([]types.Batch, len(w.PendingBatches))
	for i, b := range w.PendingBatches {
		cmds := make([]types.Command, len(b.Commands))
		for j, c := range b.Commands {
			cmds[j] = types.Command(c)
		}
		batches[i] = types.Batch{
			Id:            b.Id,
			CorrelationId: b.CorrelationId,
			Timestamp:     b.Timestamp,
			Commands:      cmds,
		}
	}
	return types.SavedState{
		Snapshot:           w.Snapshot,
		LastCommittedPhase: types.Phase(w.LastCommittedPhase),
		PendingBatches:     batches,
	}
}
