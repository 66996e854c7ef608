// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabiatest

import (
	"context"
	"fmt"

	"github.com/luxfi/ids"
	"github.com/luxfi/rabia/config"
	"github.com/luxfi/rabia/engine/rabia"
	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/statemachine"
	"github.com/luxfi/rabia/topology"
	"github.com/luxfi/rabia/types"
)

// sinkProxy forwards Deliver to an Engine assigned after construction,
// breaking the Bus/Engine construction cycle (the Bus needs a Sink before
// the Engine it will back exists).
type sinkProxy struct {
	engine *rabia.Engine
}

func (p *sinkProxy) Deliver(msg network.ProtocolMessage) { p.engine.Deliver(msg) }

// Node bundles one cluster member's wiring for test assertions.
type Node struct {
	Id           types.NodeId
	Engine       *rabia.Engine
	StateMachine *statemachine.Echo
	Persistence  *MemPersistence
}

// Cluster is a fixed-membership, in-process Rabia cluster wired through a
// shared network.Router, for driving multi-node scenario tests.
type Cluster struct {
	Router *network.Router
	Nodes  []*Node
}

// NewCluster builds an n-node cluster with DefaultProtocolConfig. Nodes
// start inactive and become active during Start. Call Start/Stop to manage
// its lifecycle.
func NewCluster(n int) (*Cluster, error) {
	if n <= 0 {
		return nil, fmt.Errorf("rabiatest: cluster size must be positive, got %d", n)
	}

	nodeIDs := make([]types.NodeId, n)
	for i := range nodeIDs {
		nodeIDs[i] = ids.GenerateTestNodeID()
	}

	members := make([]topology.Info, n)
	for i, id := range nodeIDs {
		members[i] = topology.Info{NodeId: id, Addr: fmt.Sprintf("node-%d", i)}
	}

	router := network.NewRouter()
	cluster := &Cluster{Router: router}

	for _, self := range nodeIDs {
		topo, err := topology.NewStatic(self, members)
		if err != nil {
			return nil, err
		}

		proxy := &sinkProxy{}
		bus := network.NewBus(self, router, proxy)
		sm := statemachine.NewEcho()
		persist := NewMemPersistence()

		e := rabia.New(self, config.DefaultProtocolConfig(), bus, topo, sm, persist, nil, nil)
		proxy.engine = e

		cluster.Nodes = append(cluster.Nodes, &Node{
			Id:           self,
			Engine:       e,
			StateMachine: sm,
			Persistence:  persist,
		})
	}

	return cluster, nil
}

// Start starts every node and waits for it to reach the active state.
func (c *Cluster) Start(ctx context.Context) error {
	for _, n := range c.Nodes {
		if err := n.Engine.Start(ctx); err != nil {
			return err
		}
	}
	for _, n := range c.Nodes {
		n.Engine.OnTopologyEvent(topology.Established)
	}
	for _, n := range c.Nodes {
		if err := n.Engine.WaitUntilActive(ctx); err != nil {
			return fmt.Errorf("node %s never activated: %w", n.Id, err)
		}
	}
	return nil
}

// Stop stops every node.
func (c *Cluster) Stop(ctx context.Context) error {
	for _, n := range c.Nodes {
		if err := n.Engine.Stop(ctx); err != nil {
			return err
		}
	}
	return nil
}
