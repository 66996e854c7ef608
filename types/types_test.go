// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestPhaseSuccessorAndParity(t *testing.T) {
	require := require.New(t)

	p := GenesisPhase
	require.True(p.IsEven())
	require.Equal(Phase(1), p.Successor())
	require.False(p.Successor().IsEven())
	require.True(p.Less(p.Successor()))
}

func TestBatchIsEmpty(t *testing.T) {
	require := require.New(t)

	require.True(EmptyBatch.IsEmpty())

	nonEmpty := Batch{Id: ids.GenerateTestID(), Commands: []Command{[]byte("cmd")}}
	require.False(nonEmpty.IsEmpty())
}

func TestCompareBatchesOrdersByTimestamp(t *testing.T) {
	require := require.New(t)

	early := Batch{Id: ids.GenerateTestID(), Timestamp: 1}
	late := Batch{Id: ids.GenerateTestID(), Timestamp: 2}
	require.Negative(CompareBatches(early, late))
	require.Positive(CompareBatches(late, early))
	require.Zero(CompareBatches(early, early))
}

func TestCompareBatchesTiebreaksOnId(t *testing.T) {
	require := require.New(t)

	a := Batch{Id: ids.ID{1}, Timestamp: 5}
	b := Batch{Id: ids.ID{2}, Timestamp: 5}
	require.Negative(CompareBatches(a, b))
	require.Positive(CompareBatches(b, a))
}

func TestStateValueString(t *testing.T) {
	require := require.New(t)

	require.Equal("V0", V0.String())
	require.Equal("V1", V1.String())
	require.Equal("V?", VQuestion.String())
}

func TestNodeInactiveError(t *testing.T) {
	require := require.New(t)

	node := ids.GenerateTestNodeID()
	err := NewNodeInactiveError(node)
	require.True(IsNodeInactive(err))
	require.False(IsNodeInactive(ErrCommandBatchIsEmpty))
	require.Contains(err.Error(), node.String())
}
