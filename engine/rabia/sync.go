// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"

	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/protocol/rabia"
	"github.com/luxfi/rabia/types"
)

// synchronize clears prior responses and broadcasts a SyncRequest while
// inactive. An active node returns immediately (the scheduler still calls
// in on cadence; this is the no-op guard).
func (e *Engine) synchronize() {
	if e.Snapshot().Active {
		return
	}
	e.syncResponses = make(map[types.NodeId]types.SavedState)
	e.network.Broadcast(context.Background(), network.SyncRequest(e.self))
}

// handleSyncRequest answers a SyncRequest: active responders snapshot the
// state machine, inactive responders answer with persisted state or
// SavedState{} (empty).
func (e *Engine) handleSyncRequest(msg network.ProtocolMessage) {
	snap := e.Snapshot()

	if snap.Active {
		bytes, err := e.stateMachine.MakeSnapshot()
		if err != nil {
			e.log.Error("snapshot failed answering sync request", "error", err)
			return
		}
		state := types.SavedState{
			Snapshot:           bytes,
			LastCommittedPhase: snap.LastCommittedPhase,
			PendingBatches:     e.batches.Batches(),
		}
		e.network.Send(context.Background(), msg.Sender, network.SyncResponse(e.self, state))
		return
	}

	state, found, err := e.persistence.Load()
	if err != nil {
		e.log.Error("load failed answering sync request", "error", err)
		return
	}
	if !found {
		state = types.SavedState{}
	}
	e.network.Send(context.Background(), msg.Sender, network.SyncResponse(e.self, state))
}

// handleSyncResponse collects SyncResponses while inactive. Once a quorum
// has answered it picks the response with the highest lastCommittedPhase:
// if that response's snapshot is empty it activates directly, otherwise it
// restores that snapshot and its pending batches first.
func (e *Engine) handleSyncResponse(msg network.ProtocolMessage) {
	if e.Snapshot().Active {
		return
	}

	e.syncResponses[msg.Sender] = msg.SavedState

	if len(e.syncResponses) < e.topology.ActiveQuorumSize() {
		return
	}

	var best types.SavedState
	var haveBest bool
	for _, state := range e.syncResponses {
		if !haveBest || state.LastCommittedPhase > best.LastCommittedPhase {
			best = state
			haveBest = true
		}
	}

	if best.IsFresh() {
		e.syncResponses = make(map[types.NodeId]types.SavedState)
		e.activate()
		return
	}

	if err := e.stateMachine.RestoreSnapshot(best.Snapshot); err != nil {
		e.log.Error("restore snapshot failed, remaining inactive", "error", err)
		return
	}
	e.withState(func(s *EngineState) {
		s.currentPhase = best.LastCommittedPhase
		s.lastCommittedPhase = best.LastCommittedPhase
	})
	e.batches.Clear()
	for _, b := range best.PendingBatches {
		e.batches.Insert(b)
	}
	if err := e.persistence.Save(best); err != nil {
		e.log.Error("persisting restored state failed", "error", err)
	}
	e.activate()
}

// activate marks the node active, resolves the start handle, clears
// responses, and enters the current phase.
func (e *Engine) activate() {
	e.withState(func(s *EngineState) { s.active = true })
	e.start.resolve()
	e.syncResponses = make(map[types.NodeId]types.SavedState)
	e.startPhase()
}

// handleEstablished logs topology establishment and kicks a synchronize
// cycle.
func (e *Engine) handleEstablished() {
	e.log.Info("topology established, starting synchronization")
	e.synchronize()
}

// clusterDisconnected persists state, resets the engine to inactive, and
// fails all pending batches. Always run on the executor (never invoked
// inline) to preserve the single-writer invariant.
func (e *Engine) clusterDisconnected() {
	snap := e.Snapshot()
	if !snap.Active {
		return
	}

	bytes, err := e.stateMachine.MakeSnapshot()
	if err != nil {
		e.log.Error("snapshot failed during disconnect", "error", err)
		bytes = nil
	}
	toSave := types.SavedState{
		Snapshot:           bytes,
		LastCommittedPhase: snap.LastCommittedPhase,
		PendingBatches:     e.batches.Batches(),
	}
	if err := e.persistence.Save(toSave); err != nil {
		e.log.Error("save failed during disconnect", "error", err)
	}

	e.withState(func(s *EngineState) {
		s.active = false
		s.currentPhase = types.GenesisPhase
		s.isInPhase = false
		s.lockedValue = nil
	})
	e.phases = make(map[types.Phase]*rabia.PhaseState)
	e.stateMachine.Reset()

	e.batches.FailAll(types.NewNodeInactiveError(e.self))
	e.start.rearm()
}
