// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package topology

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func threeNodeMembers(t *testing.T) (types0, types1, types2 ids.NodeID, members []Info) {
	t.Helper()
	types0 = ids.GenerateTestNodeID()
	types1 = ids.GenerateTestNodeID()
	types2 = ids.GenerateTestNodeID()
	members = []Info{
		{NodeId: types0, Addr: "node0:9000"},
		{NodeId: types1, Addr: "node1:9000"},
		{NodeId: types2, Addr: "node2:9000"},
	}
	return
}

func TestStaticThresholdsForThreeNodes(t *testing.T) {
	require := require.New(t)

	self, _, _, members := threeNodeMembers(t)
	topo, err := NewStatic(self, members)
	require.NoError(err)

	require.Equal(3, topo.ClusterSize())
	require.Equal(2, topo.QuorumSize())        // floor(3/2)+1
	require.Equal(2, topo.FPlusOne())          // f=1, f+1=2
	require.Equal(2, topo.SuperMajoritySize()) // n-f = 3-1
}

func TestStaticRejectsSelfNotInMembers(t *testing.T) {
	require := require.New(t)

	_, _, _, members := threeNodeMembers(t)
	_, err := NewStatic(ids.GenerateTestNodeID(), members)
	require.Error(err)
}

func TestStaticLookups(t *testing.T) {
	require := require.New(t)

	self, n1, _, members := threeNodeMembers(t)
	topo, err := NewStatic(self, members)
	require.NoError(err)

	info, ok := topo.Get(n1)
	require.True(ok)
	require.Equal("node1:9000", info.Addr)

	node, ok := topo.ReverseLookup("node1:9000")
	require.True(ok)
	require.Equal(n1, node)

	_, ok = topo.ReverseLookup("unknown")
	require.False(ok)
}
