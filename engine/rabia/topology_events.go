// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import "github.com/luxfi/rabia/topology"

// OnTopologyEvent enqueues a topology quorum-state notification onto the
// executor. Disappeared always runs clusterDisconnected on the executor,
// never inline, to preserve the single-writer invariant.
func (e *Engine) OnTopologyEvent(event topology.Event) {
	e.dispatcher.enqueue(func() {
		switch event {
		case topology.Established:
			e.handleEstablished()
		case topology.Disappeared:
			e.clusterDisconnected()
		}
	})
}
