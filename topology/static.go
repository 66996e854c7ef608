// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package topology

import (
	"fmt"
	"time"

	"github.com/luxfi/rabia/types"
)

// Static is a fixed-membership Topology: the peer set never changes after
// construction. It is the reference implementation used in tests and by
// deployments that configure membership out-of-band rather than through a
// live discovery mechanism.
type Static struct {
	self    types.NodeId
	members map[types.NodeId]Info
	byAddr  map[string]types.NodeId

	pingInterval time.Duration
	helloTimeout time.Duration
}

// NewStatic returns a Static topology over members, which must include
// self. n = len(members) determines every derived threshold.
func NewStatic(self types.NodeId, members []Info) (*Static, error) {
	byID := make(map[types.NodeId]Info, len(members))
	byAddr := make(map[string]types.NodeId, len(members))
	for _, m := range members {
		byID[m.NodeId] = m
		byAddr[m.Addr] = m.NodeId
	}
	if _, ok := byID[self]; !ok {
		return nil, fmt.Errorf("static topology: self %s not present in member set", self)
	}
	return &Static{
		self:         self,
		members:      byID,
		byAddr:       byAddr,
		pingInterval: 3 * time.Second,
		helloTimeout: 10 * time.Second,
	}, nil
}

func (s *Static) Self() types.NodeId { return s.self }

func (s *Static) ClusterSize() int { return len(s.members) }

// QuorumSize returns floor(n/2)+1.
func (s *Static) QuorumSize() int {
	n := s.ClusterSize()
	return n/2 + 1
}

// f is the maximum tolerated crash failures, (n-1)/2.
func (s *Static) f() int {
	return (s.ClusterSize() - 1) / 2
}

func (s *Static) FPlusOne() int { return s.f() + 1 }

func (s *Static) SuperMajoritySize() int { return s.ClusterSize() - s.f() }

// ActiveQuorumSize uses the same threshold as QuorumSize: a rejoining node
// needs a majority of the cluster to agree on the best SavedState.
func (s *Static) ActiveQuorumSize() int { return s.QuorumSize() }

func (s *Static) Get(node types.NodeId) (Info, bool) {
	info, ok := s.members[node]
	return info, ok
}

func (s *Static) ReverseLookup(addr string) (types.NodeId, bool) {
	node, ok := s.byAddr[addr]
	return node, ok
}

func (s *Static) PingInterval() time.Duration { return s.pingInterval }

func (s *Static) HelloTimeout() time.Duration { return s.helloTimeout }

func (s *Static) Start() error { return nil }

func (s *Static) Stop() error { return nil }
