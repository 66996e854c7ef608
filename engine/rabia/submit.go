// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/luxfi/ids"
	"github.com/luxfi/rabia/batch"
	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/types"
)

// Apply submits commands for consensus and returns a Handle resolving to
// the ordered state-machine results once the batch commits.
func (e *Engine) Apply(commands []types.Command) (*batch.Handle, error) {
	b, err := e.submit(commands)
	if err != nil {
		return nil, err
	}
	handle := batch.NewHandle()
	e.dispatcher.enqueue(func() {
		e.batches.Insert(b)
		e.batches.RegisterResult(b.CorrelationId, handle)
		if !e.Snapshot().IsInPhase {
			e.startPhase()
		}
	})
	e.network.Broadcast(context.Background(), network.NewBatch(e.self, b))
	return handle, nil
}

// SubmitCommands is the fire-and-forget counterpart of Apply: the batch is
// proposed into the protocol but no completion handle is created.
func (e *Engine) SubmitCommands(commands []types.Command) error {
	b, err := e.submit(commands)
	if err != nil {
		return err
	}
	e.dispatcher.enqueue(func() {
		e.batches.Insert(b)
		if !e.Snapshot().IsInPhase {
			e.startPhase()
		}
	})
	e.network.Broadcast(context.Background(), network.NewBatch(e.self, b))
	return nil
}

// submit validates the request synchronously and constructs a fresh
// Batch.
func (e *Engine) submit(commands []types.Command) (types.Batch, error) {
	if len(commands) == 0 {
		return types.Batch{}, types.ErrCommandBatchIsEmpty
	}
	if !e.Snapshot().Active {
		return types.Batch{}, types.NewNodeInactiveError(e.self)
	}
	return types.Batch{
		Id:            freshID(),
		CorrelationId: freshID(),
		Timestamp:     time.Now().UnixNano(),
		Commands:      commands,
	}, nil
}

// freshID generates a random identifier for a new Batch or CorrelationId.
func freshID() ids.ID {
	var buf [32]byte
	_, _ = rand.Read(buf[:])
	id, _ := ids.ToID(buf[:])
	return id
}
