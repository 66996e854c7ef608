// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package topology defines the narrow membership/addressing collaborator
// the Rabia engine consumes and the quorum-size arithmetic derived from
// cluster size.
package topology

import (
	"time"

	"github.com/luxfi/rabia/types"
)

// Info describes one cluster member's addressing information.
type Info struct {
	NodeId types.NodeId
	Addr   string
}

// Event is a topology quorum-state notification delivered to the engine.
type Event int

const (
	// Established reports that the node has connected to the cluster.
	Established Event = iota
	// Disappeared reports that the node has lost its cluster connection.
	Disappeared
)

func (e Event) String() string {
	if e == Established {
		return "ESTABLISHED"
	}
	return "DISAPPEARED"
}

// Topology is the narrow membership/addressing collaborator.
type Topology interface {
	// Self returns this node's identifier.
	Self() types.NodeId

	// ClusterSize returns n, the total replica count.
	ClusterSize() int

	// QuorumSize returns floor(n/2)+1.
	QuorumSize() int

	// FPlusOne returns f+1, the smallest guaranteed-non-faulty majority.
	FPlusOne() int

	// SuperMajoritySize returns n-f, the fast-path threshold.
	SuperMajoritySize() int

	// ActiveQuorumSize returns the number of SyncResponses required before
	// a rejoining node may select a candidate state.
	ActiveQuorumSize() int

	// Get resolves a node's addressing Info, if known.
	Get(node types.NodeId) (Info, bool)

	// ReverseLookup resolves the NodeId owning addr, if known.
	ReverseLookup(addr string) (types.NodeId, bool)

	PingInterval() time.Duration
	HelloTimeout() time.Duration

	Start() error
	Stop() error
}
