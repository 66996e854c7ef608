// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/luxfi/rabia/types"
	"github.com/stretchr/testify/require"
)

func newBatch(correlationID types.CorrelationId) types.Batch {
	return types.Batch{
		Id:            ids.GenerateTestID(),
		CorrelationId: correlationID,
		Commands:      []types.Command{[]byte("cmd")},
	}
}

// TestEvaluateInitialVoteS1UnanimousVotesV1 exercises seed scenario S1: all three
// proposals carry the same correlation id, so every node sees a group of
// 3 >= quorum 2 and votes V1.
func TestEvaluateInitialVoteS1UnanimousVotesV1(t *testing.T) {
	require := require.New(t)

	cid := ids.GenerateTestID()
	batch := newBatch(cid)

	p := NewPhaseState()
	p.RegisterProposal(ids.GenerateTestNodeID(), batch)
	p.RegisterProposal(ids.GenerateTestNodeID(), batch)
	p.RegisterProposal(ids.GenerateTestNodeID(), batch)

	require.Equal(types.V1, EvaluateInitialVote(p, 2))
}

// TestEvaluateInitialVoteS2DisagreementVotesV0 exercises seed scenario S2: three distinct
// correlation ids, each group has size 1 < quorum 2, so the node votes V0.
func TestEvaluateInitialVoteS2DisagreementVotesV0(t *testing.T) {
	require := require.New(t)

	p := NewPhaseState()
	p.RegisterProposal(ids.GenerateTestNodeID(), newBatch(ids.GenerateTestID()))
	p.RegisterProposal(ids.GenerateTestNodeID(), newBatch(ids.GenerateTestID()))
	p.RegisterProposal(ids.GenerateTestNodeID(), newBatch(ids.GenerateTestID()))

	require.Equal(types.V0, EvaluateInitialVote(p, 2))
}

func TestEvaluateInitialVoteIgnoresEmptyBatches(t *testing.T) {
	require := require.New(t)

	p := NewPhaseState()
	p.RegisterProposal(ids.GenerateTestNodeID(), types.EmptyBatch)
	p.RegisterProposal(ids.GenerateTestNodeID(), types.EmptyBatch)

	require.Equal(types.V0, EvaluateInitialVote(p, 2))
}

func TestSuperMajorityRound1Value(t *testing.T) {
	require := require.New(t)

	p := NewPhaseState()
	p.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V1)
	p.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V1)

	_, ok := SuperMajorityRound1Value(p, 3)
	require.False(ok)

	p.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V1)
	v, ok := SuperMajorityRound1Value(p, 3)
	require.True(ok)
	require.Equal(types.V1, v)
}

func TestEvaluateRound2Vote(t *testing.T) {
	require := require.New(t)

	p := NewPhaseState()
	p.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V0)
	p.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V0)
	require.Equal(types.V0, EvaluateRound2Vote(p, 2))

	p2 := NewPhaseState()
	p2.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V1)
	p2.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V1)
	require.Equal(types.V1, EvaluateRound2Vote(p2, 2))

	p3 := NewPhaseState()
	p3.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V0)
	p3.RegisterRound1Vote(ids.GenerateTestNodeID(), types.V1)
	require.Equal(types.VQuestion, EvaluateRound2Vote(p3, 2))
}

// TestProcessRound2CompletionS4CoinFallback exercises seed scenario S4: round-2 votes
// {V1, VQuestion, VQuestion} with f+1=2 reach neither threshold, so phase 1
// (odd) falls to the coin, which flips V1.
func TestProcessRound2CompletionS4CoinFallback(t *testing.T) {
	require := require.New(t)

	cid := ids.GenerateTestID()
	batch := newBatch(cid)

	p := NewPhaseState()
	p.RegisterProposal(ids.GenerateTestNodeID(), batch)
	p.RegisterRound2Vote(ids.GenerateTestNodeID(), types.V1)
	p.RegisterRound2Vote(ids.GenerateTestNodeID(), types.VQuestion)
	p.RegisterRound2Vote(ids.GenerateTestNodeID(), types.VQuestion)

	decision := ProcessRound2Completion(p, types.Phase(1), 2, 1)
	require.Equal(types.V1, decision.Value)
	require.Equal(batch.Id, decision.Batch.Id)
}

func TestProcessRound2CompletionMajorityV0(t *testing.T) {
	require := require.New(t)

	p := NewPhaseState()
	p.RegisterRound2Vote(ids.GenerateTestNodeID(), types.V0)
	p.RegisterRound2Vote(ids.GenerateTestNodeID(), types.V0)

	decision := ProcessRound2Completion(p, types.Phase(0), 2, 1)
	require.Equal(types.V0, decision.Value)
	require.True(decision.Batch.IsEmpty())
}

func TestFindAgreedProposalReturnsEmptyWhenNoneNonEmpty(t *testing.T) {
	require := require.New(t)

	p := NewPhaseState()
	require.True(FindAgreedProposal(p, 1).IsEmpty())
}

func TestFindAgreedProposalTiebreaksOnCorrelationID(t *testing.T) {
	require := require.New(t)

	cidLow := types.CorrelationId{1}
	cidHigh := types.CorrelationId{2}
	batchLow := types.Batch{Id: ids.GenerateTestID(), CorrelationId: cidLow, Commands: []types.Command{[]byte("x")}}
	batchHigh := types.Batch{Id: ids.GenerateTestID(), CorrelationId: cidHigh, Commands: []types.Command{[]byte("y")}}

	p := NewPhaseState()
	p.RegisterProposal(ids.GenerateTestNodeID(), batchLow)
	p.RegisterProposal(ids.GenerateTestNodeID(), batchHigh)

	got := FindAgreedProposal(p, 1)
	require.Equal(cidLow, got.CorrelationId)
}

func TestCoinFlipDeterministicByParity(t *testing.T) {
	require := require.New(t)

	require.Equal(types.V0, CoinFlip(types.Phase(0)))
	require.Equal(types.V1, CoinFlip(types.Phase(1)))
	require.Equal(types.V0, CoinFlip(types.Phase(100)))
	require.Equal(types.V1, CoinFlip(types.Phase(101)))
}
