// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"
	"sync"

	"github.com/luxfi/rabia/types"
)

// Router is a process-wide handle registry keyed by NodeId, breaking the
// cyclic engine<->network reference: the engine never holds a pointer back
// to another engine, it only knows the Router, and the Router knows every
// registered Sink.
type Router struct {
	mu    sync.RWMutex
	sinks map[types.NodeId]Sink
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{sinks: make(map[types.NodeId]Sink)}
}

// Register associates node with sink, replacing any prior registration.
func (r *Router) Register(node types.NodeId, sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[node] = sink
}

// Unregister removes node's registration, if any.
func (r *Router) Unregister(node types.NodeId) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sinks, node)
}

// Deliver hands msg to node's registered Sink, if one is registered.
func (r *Router) Deliver(node types.NodeId, msg ProtocolMessage) {
	r.mu.RLock()
	sink, ok := r.sinks[node]
	r.mu.RUnlock()
	if ok {
		sink.Deliver(msg)
	}
}

// Peers returns every currently registered node.
func (r *Router) Peers() []types.NodeId {
	r.mu.RLock()
	defer r.mu.RUnlock()
	peers := make([]types.NodeId, 0, len(r.sinks))
	for n := range r.sinks {
		peers = append(peers, n)
	}
	return peers
}

// Bus is a deterministic in-memory Network backed by a shared Router. It is
// the reference implementation used by tests (rabiatest) and is not
// intended as a production transport; a production Network implementation
// is supplied by the embedding process.
type Bus struct {
	self   types.NodeId
	router *Router
}

// NewBus returns a Bus for self, registering it with router under sink.
func NewBus(self types.NodeId, router *Router, sink Sink) *Bus {
	router.Register(self, sink)
	return &Bus{self: self, router: router}
}

func (b *Bus) Broadcast(_ context.Context, msg ProtocolMessage) {
	for _, peer := range b.router.Peers() {
		b.router.Deliver(peer, msg)
	}
}

func (b *Bus) Send(_ context.Context, node types.NodeId, msg ProtocolMessage) {
	b.router.Deliver(node, msg)
}

func (b *Bus) ConnectedNodeCount() int {
	count := len(b.router.Peers())
	if count > 0 {
		count-- // exclude self
	}
	return count
}

func (b *Bus) Start(context.Context) error { return nil }

func (b *Bus) Stop(context.Context) error {
	b.router.Unregister(b.self)
	return nil
}
