// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"
	"time"
)

// scheduler owns the engine's two periodic background tasks: the phase
// reaper and the sync-retry loop. It is modeled as an owned task handle
// with explicit cancellation on stop rather than ambient global state -
// a single goroutine parented by ctx runs both timers, and every tick
// enqueues its work onto the dispatcher instead of touching engine state
// directly.
type scheduler struct {
	e      *Engine
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newScheduler(e *Engine) *scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		e:      e,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (s *scheduler) start() {
	go s.run()
}

func (s *scheduler) stop() {
	s.cancel()
	<-s.done
}

func (s *scheduler) run() {
	defer close(s.done)

	reapInterval := s.e.cfg.CleanupInterval
	reapTimer := time.NewTimer(reapInterval)
	defer reapTimer.Stop()

	syncTimer := time.NewTimer(jitter(s.e.cfg.SyncRetryInterval, 0.5))
	defer syncTimer.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-reapTimer.C:
			s.e.dispatcher.enqueue(func() { s.e.reapPhases() })
			reapTimer.Reset(reapInterval)
		case <-syncTimer.C:
			s.e.dispatcher.enqueue(func() { s.e.synchronize() })
			syncTimer.Reset(jitter(s.e.cfg.SyncRetryInterval, 0.5))
		}
	}
}
