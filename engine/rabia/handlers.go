// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"

	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/protocol/rabia"
	"github.com/luxfi/rabia/types"
)

// startPhase enters the current phase: selects this node's own proposal
// from the pending pool, broadcasts it, and consumes any locked value from
// the prior decision. Must run on the executor.
func (e *Engine) startPhase() {
	var alreadyInPhase bool
	e.withState(func(s *EngineState) {
		if s.isInPhase {
			alreadyInPhase = true
			return
		}
		s.isInPhase = true
	})
	if alreadyInPhase {
		return
	}

	if e.batches.IsEmpty() {
		e.withState(func(s *EngineState) { s.isInPhase = false })
		return
	}

	current := e.Snapshot().CurrentPhase
	own, ok := e.batches.Smallest()
	if !ok {
		own = types.EmptyBatch
	}

	ps := e.phaseState(current)
	ps.RegisterProposal(e.self, own)
	e.network.Broadcast(context.Background(), network.Propose(e.self, current, own))

	if v, ok := e.withStateLockedValue(); ok {
		e.network.Broadcast(context.Background(), network.VoteRound1(e.self, current, v))
		ps.RegisterRound1Vote(e.self, v)
	}
}

func (e *Engine) withStateLockedValue() (types.StateValue, bool) {
	var (
		v  types.StateValue
		ok bool
	)
	e.withState(func(s *EngineState) { v, ok = s.consumeLockedValue() })
	return v, ok
}

// handlePropose registers an incoming proposal, entering the phase and
// broadcasting this node's own proposal first if it hasn't yet, then casts
// a round-1 vote once quorum proposals are in.
func (e *Engine) handlePropose(msg network.ProtocolMessage) {
	if !e.Snapshot().Active {
		return
	}

	current := e.Snapshot().CurrentPhase
	if msg.Phase.Less(current) {
		return // stale
	}
	if uint64(msg.Phase)-uint64(current) > e.cfg.MaxPhaseAhead {
		return // too far future
	}

	ps := e.phaseState(msg.Phase)

	if msg.Phase == current {
		snap := e.Snapshot()
		if !snap.IsInPhase {
			e.withState(func(s *EngineState) { s.isInPhase = true })
			if own, ok := e.batches.Smallest(); ok {
				ps.RegisterProposal(e.self, own)
				e.network.Broadcast(context.Background(), network.Propose(e.self, current, own))
			}
			if v, ok := e.withStateLockedValue(); ok {
				e.network.Broadcast(context.Background(), network.VoteRound1(e.self, current, v))
				ps.RegisterRound1Vote(e.self, v)
			}
		}
	}

	ps.RegisterProposal(msg.Sender, msg.Batch)

	if msg.Phase == current && e.Snapshot().IsInPhase &&
		!ps.HasVotedRound1(e.self) && ps.HasQuorumProposals(e.topology.QuorumSize()) {
		v := rabia.EvaluateInitialVote(ps, e.topology.QuorumSize())
		e.network.Broadcast(context.Background(), network.VoteRound1(e.self, msg.Phase, v))
		ps.RegisterRound1Vote(e.self, v)
	}
}

// handleVoteRound1 registers an incoming round-1 vote, decides immediately
// via the super-majority fast path when possible, and otherwise casts a
// round-2 vote once quorum round-1 votes are in.
func (e *Engine) handleVoteRound1(msg network.ProtocolMessage) {
	if !e.Snapshot().Active {
		return
	}

	ps := e.phaseState(msg.Phase)
	ps.RegisterRound1Vote(msg.Sender, msg.Value)

	snap := e.Snapshot()
	if !(snap.IsInPhase && msg.Phase == snap.CurrentPhase && !ps.IsDecided() && !ps.HasVotedRound2(e.self)) {
		return
	}

	if v, ok := rabia.SuperMajorityRound1Value(ps, e.topology.SuperMajoritySize()); ok {
		decisionBatch := types.EmptyBatch
		if v == types.V1 {
			decisionBatch = rabia.FindAgreedProposal(ps, e.topology.QuorumSize())
		}
		e.metrics.FastPath()
		if v == types.V1 {
			e.metrics.DecisionV1()
		} else {
			e.metrics.DecisionV0()
		}
		decisionMsg := network.Decision(e.self, msg.Phase, v, decisionBatch)
		e.network.Broadcast(context.Background(), decisionMsg)
		e.applyDecision(decisionMsg, true)
		return
	}

	if ps.CountRound1(types.V0)+ps.CountRound1(types.V1) >= e.topology.QuorumSize() {
		r2 := rabia.EvaluateRound2Vote(ps, e.topology.QuorumSize())
		e.network.Broadcast(context.Background(), network.VoteRound2(e.self, msg.Phase, r2))
		ps.RegisterRound2Vote(e.self, r2)
	}
}

// handleVoteRound2 registers an incoming round-2 vote and resolves the
// phase's decision once quorum round-2 votes are in.
func (e *Engine) handleVoteRound2(msg network.ProtocolMessage) {
	if !e.Snapshot().Active {
		return
	}

	ps := e.phaseState(msg.Phase)
	ps.RegisterRound2Vote(msg.Sender, msg.Value)

	snap := e.Snapshot()
	if !(snap.IsInPhase && msg.Phase == snap.CurrentPhase && !ps.IsDecided()) {
		return
	}

	total := ps.CountRound2(types.V0) + ps.CountRound2(types.V1) + ps.CountRound2(types.VQuestion)
	if total < e.topology.QuorumSize() {
		return
	}

	decision := rabia.ProcessRound2Completion(ps, msg.Phase, e.topology.FPlusOne(), e.topology.QuorumSize())
	if decision.Coin {
		e.metrics.CoinFlip()
	}
	if decision.Value == types.V1 {
		e.metrics.DecisionV1()
	} else {
		e.metrics.DecisionV0()
	}
	decisionMsg := network.Decision(e.self, msg.Phase, decision.Value, decision.Batch)
	e.network.Broadcast(context.Background(), decisionMsg)
	e.applyDecision(decisionMsg, true)
}

// handleRemoteDecision applies a decision broadcast by another node.
func (e *Engine) handleRemoteDecision(msg network.ProtocolMessage) {
	if !e.Snapshot().Active {
		return
	}
	e.applyDecision(msg, false)
}

// applyDecision commits a decision: applies a V1 batch to the state
// machine, advances to the successor phase, and locks the decided value
// for the next phase entry. local is true when this node is the one that
// just computed the decision (skips the active check, already verified by
// the caller).
func (e *Engine) applyDecision(msg network.ProtocolMessage, local bool) {
	ps := e.phaseState(msg.Phase)
	if ps.TryMarkDecided() {
		return // already applied
	}

	if msg.Value == types.V1 && len(msg.Batch.Commands) > 0 {
		results, err := e.stateMachine.Process(msg.Batch.Commands)
		if err != nil {
			e.log.Error("state machine process failed", "phase", msg.Phase, "error", err)
		} else {
			e.batches.ResolveAndRemove(msg.Batch.CorrelationId, results)
		}
		e.withState(func(s *EngineState) { s.lastCommittedPhase = msg.Phase })
	}

	e.withState(func(s *EngineState) {
		s.currentPhase = msg.Phase.Successor()
		s.isInPhase = false
		s.setLockedValue(msg.Value)
	})

	if !e.batches.IsEmpty() {
		e.startPhase()
	}
}

// handleNewBatch admits a newly submitted batch into the pending pool. If
// the node is active and in phase but has not yet proposed for the current
// phase, it broadcasts its smallest pending batch as its proposal;
// otherwise it tries to start the phase.
func (e *Engine) handleNewBatch(msg network.ProtocolMessage) {
	e.batches.Insert(msg.Batch)

	snap := e.Snapshot()
	current := snap.CurrentPhase
	ps := e.phaseState(current)

	if snap.Active && snap.IsInPhase && !ps.HasProposalFrom(e.self) {
		if own, ok := e.batches.Smallest(); ok {
			ps.RegisterProposal(e.self, own)
			e.network.Broadcast(context.Background(), network.Propose(e.self, current, own))
		}
		return
	}
	e.startPhase()
}
