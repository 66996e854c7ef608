// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"bytes"

	"github.com/luxfi/rabia/types"
)

// Decision is the outcome of ProcessRound2Completion: a state value paired
// with its batch (empty iff value == V0). Coin is true when no round-2
// majority formed and the deterministic coin flip decided the value.
type Decision struct {
	Value types.StateValue
	Batch types.Batch
	Coin  bool
}

// EvaluateInitialVote groups p's collected proposals by CorrelationId,
// ignoring empty batches. If any group reaches size >= q, the node votes
// V1; otherwise V0.
func EvaluateInitialVote(p *PhaseState, q int) types.StateValue {
	counts := groupByCorrelationID(p.proposals)
	for _, group := range counts {
		if len(group.batches) >= q {
			return types.V1
		}
	}
	return types.V0
}

// SuperMajorityRound1Value reports the round-1 value that has reached the
// super-majority threshold s = n-f, if any (the fast-path check).
func SuperMajorityRound1Value(p *PhaseState, s int) (types.StateValue, bool) {
	if p.CountRound1(types.V0) >= s {
		return types.V0, true
	}
	if p.CountRound1(types.V1) >= s {
		return types.V1, true
	}
	return types.V0, false
}

// EvaluateRound2Vote picks the round-2 vote from round-1 tallies: V0 if
// round-1 V0 reached quorum, else V1 if round-1 V1 reached quorum,
// otherwise VQuestion.
func EvaluateRound2Vote(p *PhaseState, q int) types.StateValue {
	if p.CountRound1(types.V0) >= q {
		return types.V0
	}
	if p.CountRound1(types.V1) >= q {
		return types.V1
	}
	return types.VQuestion
}

// ProcessRound2Completion resolves the decision for a phase once round-2
// votes reach a majority:
//  1. countRound2(V1) >= fPlusOne decides V1 with FindAgreedProposal.
//  2. else countRound2(V0) >= fPlusOne decides V0 with the empty batch.
//  3. else the deterministic coin flip decides, attaching FindAgreedProposal
//     only if the coin lands V1.
func ProcessRound2Completion(p *PhaseState, phase types.Phase, fPlusOne, q int) Decision {
	if p.CountRound2(types.V1) >= fPlusOne {
		return Decision{Value: types.V1, Batch: FindAgreedProposal(p, q)}
	}
	if p.CountRound2(types.V0) >= fPlusOne {
		return Decision{Value: types.V0, Batch: types.EmptyBatch}
	}
	coin := CoinFlip(phase)
	if coin == types.V1 {
		return Decision{Value: types.V1, Batch: FindAgreedProposal(p, q), Coin: true}
	}
	return Decision{Value: types.V0, Batch: types.EmptyBatch, Coin: true}
}

// correlationGroup accumulates the proposals sharing one CorrelationId,
// tracking the minimum batch under types.CompareBatches as the group's
// representative so selection never depends on Go's randomized map
// iteration order.
type correlationGroup struct {
	id      types.CorrelationId
	batches []types.Batch
	min     types.Batch
}

func groupByCorrelationID(proposals map[types.NodeId]types.Batch) map[types.CorrelationId]*correlationGroup {
	groups := make(map[types.CorrelationId]*correlationGroup)
	for _, batch := range proposals {
		if batch.IsEmpty() {
			continue
		}
		g, ok := groups[batch.CorrelationId]
		if !ok {
			g = &correlationGroup{id: batch.CorrelationId, min: batch}
			groups[batch.CorrelationId] = g
		} else if types.CompareBatches(batch, g.min) < 0 {
			g.min = batch
		}
		g.batches = append(g.batches, batch)
	}
	return groups
}

// FindAgreedProposal groups p's non-empty proposals by CorrelationId and
// returns the first batch of the largest group, tiebreaking on
// CorrelationId in total order. Returns the empty batch if no
// non-empty proposal exists.
func FindAgreedProposal(p *PhaseState, q int) types.Batch {
	groups := groupByCorrelationID(p.proposals)

	var best *correlationGroup
	bestCount := -1
	for _, g := range groups {
		switch {
		case len(g.batches) > bestCount:
			best = g
			bestCount = len(g.batches)
		case len(g.batches) == bestCount &&
			bytes.Compare(g.id[:], best.id[:]) < 0:
			best = g
		}
	}
	if best == nil {
		return types.EmptyBatch
	}
	return best.min
}

// CoinFlip is the deterministic fallback: bit 0 of the phase number. Even
// phases flip V0, odd phases flip V1. Identical on every node by
// construction.
func CoinFlip(phase types.Phase) types.StateValue {
	if phase.IsEven() {
		return types.V0
	}
	return types.V1
}
