// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package batch

import "github.com/luxfi/rabia/types"

// Registry is the engine's pending-batch pool and client completion
// handles, keyed by CorrelationId. It is owned exclusively by the
// engine's serial executor and carries no internal locking.
type Registry struct {
	batches map[types.CorrelationId]types.Batch
	results map[types.CorrelationId]*Handle
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		batches: make(map[types.CorrelationId]types.Batch),
		results: make(map[types.CorrelationId]*Handle),
	}
}

// Insert records batch under its CorrelationId. Idempotent: a batch
// already present keeps its original value (first-wins, mirroring
// PhaseState's proposal registration).
func (r *Registry) Insert(b types.Batch) {
	if _, ok := r.batches[b.CorrelationId]; ok {
		return
	}
	r.batches[b.CorrelationId] = b
}

// RegisterResult associates a completion handle with correlationId, for
// Apply callers awaiting a decision (not used by fire-and-forget
// SubmitCommands).
func (r *Registry) RegisterResult(correlationID types.CorrelationId, handle *Handle) {
	r.results[correlationID] = handle
}

// Smallest returns the pending batch that sorts lowest under
// types.CompareBatches, and whether any batch is pending.
func (r *Registry) Smallest() (types.Batch, bool) {
	var (
		best  types.Batch
		found bool
	)
	for _, b := range r.batches {
		if !found || types.CompareBatches(b, best) < 0 {
			best = b
			found = true
		}
	}
	return best, found
}

// IsEmpty reports whether no batches are pending.
func (r *Registry) IsEmpty() bool { return len(r.batches) == 0 }

// Has reports whether correlationId has a pending batch.
func (r *Registry) Has(correlationID types.CorrelationId) bool {
	_, ok := r.batches[correlationID]
	return ok
}

// Remove drops correlationId's pending batch, if any, without touching its
// completion handle.
func (r *Registry) Remove(correlationID types.CorrelationId) {
	delete(r.batches, correlationID)
}

// ResolveAndRemove resolves correlationId's completion handle (if any)
// with results, then removes both the batch and the handle. Called when a
// V1 decision commits a batch.
func (r *Registry) ResolveAndRemove(correlationID types.CorrelationId, results []types.Result) {
	if h, ok := r.results[correlationID]; ok {
		h.Resolve(results)
		delete(r.results, correlationID)
	}
	delete(r.batches, correlationID)
}

// FailAll fails every outstanding completion handle with err and clears
// both maps. Called on disconnect and shutdown.
func (r *Registry) FailAll(err error) {
	for _, h := range r.results {
		h.Fail(err)
	}
	r.results = make(map[types.CorrelationId]*Handle)
	r.batches = make(map[types.CorrelationId]types.Batch)
}

// Clear empties the pending-batch map, used when restoring from a
// SavedState that repopulates pendingBatches from scratch. Completion
// handles are left untouched.
func (r *Registry) Clear() {
	r.batches = make(map[types.CorrelationId]types.Batch)
}

// Len reports how many batches are pending.
func (r *Registry) Len() int { return len(r.batches) }

// Batches returns every pending batch; order is unspecified.
func (r *Registry) Batches() []types.Batch {
	out := make([]types.Batch, 0, len(r.batches))
	for _, b := range r.batches {
		out = append(out, b)
	}
	return out
}
