// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"

	"github.com/luxfi/rabia/types"
)

// Sink is the message-delivery side of the engine: the network calls Deliver
// for every ProtocolMessage addressed to this node. Implementations must
// not block; the engine enqueues the message onto its serial executor and
// returns immediately.
type Sink interface {
	Deliver(msg ProtocolMessage)
}

// Network is the narrow collaborator the engine sends through. The
// network must preserve message integrity and sender identity but need
// not preserve order or guarantee delivery.
type Network interface {
	// Broadcast delivers msg best-effort to every known peer, including
	// self where applicable. Non-blocking; silent on per-peer failure.
	Broadcast(ctx context.Context, msg ProtocolMessage)

	// Send delivers msg best-effort to a single peer. Non-blocking; silent
	// on failure.
	Send(ctx context.Context, node types.NodeId, msg ProtocolMessage)

	// ConnectedNodeCount reports how many peers are currently reachable.
	ConnectedNodeCount() int

	// Start/Stop manage the network's lifecycle.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
