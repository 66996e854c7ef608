// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rabia implements the per-phase vote bookkeeping and pure
// evaluation functions at the heart of the protocol. PhaseState is owned
// exclusively by the engine's single serial executor; it carries no
// internal locking, the same way protocol/wave.Wave in this codebase
// family is single-writer.
package rabia

import "github.com/luxfi/rabia/types"

// PhaseState is the per-phase record of proposals and votes.
type PhaseState struct {
	proposals   map[types.NodeId]types.Batch
	round1Votes map[types.NodeId]types.StateValue
	round2Votes map[types.NodeId]types.StateValue
	decided     bool
}

// NewPhaseState returns an empty PhaseState, created lazily on first
// reference to a phase.
func NewPhaseState() *PhaseState {
	return &PhaseState{
		proposals:   make(map[types.NodeId]types.Batch),
		round1Votes: make(map[types.NodeId]types.StateValue),
		round2Votes: make(map[types.NodeId]types.StateValue),
	}
}

// HasProposalFrom reports whether node has already registered a proposal.
func (p *PhaseState) HasProposalFrom(node types.NodeId) bool {
	_, ok := p.proposals[node]
	return ok
}

// ProposalCount returns the number of distinct senders with a registered
// proposal.
func (p *PhaseState) ProposalCount() int { return len(p.proposals) }

// HasQuorumProposals reports whether at least q proposals are registered.
func (p *PhaseState) HasQuorumProposals(q int) bool { return len(p.proposals) >= q }

// HasVotedRound1 reports whether node has cast a round-1 vote.
func (p *PhaseState) HasVotedRound1(node types.NodeId) bool {
	_, ok := p.round1Votes[node]
	return ok
}

// HasVotedRound2 reports whether node has cast a round-2 vote.
func (p *PhaseState) HasVotedRound2(node types.NodeId) bool {
	_, ok := p.round2Votes[node]
	return ok
}

// IsDecided reports whether this phase has already decided.
func (p *PhaseState) IsDecided() bool { return p.decided }

// CountRound1 returns how many round-1 votes equal v.
func (p *PhaseState) CountRound1(v types.StateValue) int {
	return countValue(p.round1Votes, v)
}

// CountRound2 returns how many round-2 votes equal v.
func (p *PhaseState) CountRound2(v types.StateValue) int {
	return countValue(p.round2Votes, v)
}

func countValue(votes map[types.NodeId]types.StateValue, target types.StateValue) int {
	n := 0
	for _, v := range votes {
		if v == target {
			n++
		}
	}
	return n
}

// RegisterProposal records node's proposal. Idempotent: only the first
// proposal from a given sender is kept.
func (p *PhaseState) RegisterProposal(node types.NodeId, batch types.Batch) {
	if _, ok := p.proposals[node]; ok {
		return
	}
	p.proposals[node] = batch
}

// RegisterRound1Vote records node's round-1 vote. Idempotent: each node
// votes at most once per phase. v must be V0 or V1; callers are
// responsible for that restriction.
func (p *PhaseState) RegisterRound1Vote(node types.NodeId, v types.StateValue) {
	if _, ok := p.round1Votes[node]; ok {
		return
	}
	p.round1Votes[node] = v
}

// RegisterRound2Vote records node's round-2 vote. Idempotent.
func (p *PhaseState) RegisterRound2Vote(node types.NodeId, v types.StateValue) {
	if _, ok := p.round2Votes[node]; ok {
		return
	}
	p.round2Votes[node] = v
}

// TryMarkDecided atomically transitions decided false -> true, returning
// the prior value. A caller that receives true back knows the phase was
// already decided and must not apply the decision a second time.
func (p *PhaseState) TryMarkDecided() (prior bool) {
	prior = p.decided
	p.decided = true
	return prior
}

// Proposals returns the registered proposals keyed by sender. Callers must
// treat the result as read-only.
func (p *PhaseState) Proposals() map[types.NodeId]types.Batch { return p.proposals }
