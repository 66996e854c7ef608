// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package batch holds the pending-batch pool and client completion handles
// the engine resolves once a batch's correlation id is decided.
package batch

import (
	"context"
	"sync"

	"github.com/luxfi/rabia/types"
)

// Handle is a one-shot resolvable slot for a client Apply call: a pure
// value hand-off from the executor thread to the caller, not a callback
// chain.
type Handle struct {
	once sync.Once
	done chan struct{}

	results []types.Result
	err     error
}

// NewHandle returns an unresolved Handle.
func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Resolve completes the handle with results. Only the first call (Resolve
// or Fail) has any effect.
func (h *Handle) Resolve(results []types.Result) {
	h.resolve(results, nil)
}

// Fail completes the handle with an error. Only the first call (Resolve or
// Fail) has any effect.
func (h *Handle) Fail(err error) {
	h.resolve(nil, err)
}

func (h *Handle) resolve(results []types.Result, err error) {
	h.once.Do(func() {
		h.results = results
		h.err = err
		close(h.done)
	})
}

// Wait blocks until the handle resolves or ctx is done, whichever comes
// first.
func (h *Handle) Wait(ctx context.Context) ([]types.Result, error) {
	select {
	case <-h.done:
		return h.results, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
