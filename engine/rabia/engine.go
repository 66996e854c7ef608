// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"
	"math/rand"
	"sync"
	"time"

	liblog "github.com/luxfi/log"
	"github.com/luxfi/rabia/batch"
	"github.com/luxfi/rabia/config"
	rabialog "github.com/luxfi/rabia/log"
	"github.com/luxfi/rabia/metrics"
	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/persistence"
	"github.com/luxfi/rabia/protocol/rabia"
	"github.com/luxfi/rabia/statemachine"
	"github.com/luxfi/rabia/topology"
	"github.com/luxfi/rabia/types"
)

// Engine is the per-node Rabia consensus core: batch proposal management,
// the propose/round1/round2/decide state machine, value locking, the fast
// path, coin fallback, phase GC, and synchronization. Every method that
// touches protocol state enqueues onto the single serial dispatcher; only
// that goroutine ever mutates state, fields protected by mu aside
// (externally readable snapshots only).
type Engine struct {
	self types.NodeId
	cfg  config.ProtocolConfig
	log  liblog.Logger

	network      network.Network
	topology     topology.Topology
	stateMachine statemachine.StateMachine
	persistence  persistence.Adapter
	metrics      metrics.Hook

	dispatcher *dispatcher

	mu     sync.RWMutex // guards state for Snapshot/HealthCheck reads only
	state  EngineState
	phases map[types.Phase]*rabia.PhaseState

	batches *batch.Registry

	syncResponses map[types.NodeId]types.SavedState
	start         *startSignal

	scheduler *scheduler
}

// New constructs an Engine for self. log defaults to a no-op logger and
// metrics to a no-op hook when nil is passed.
func New(
	self types.NodeId,
	cfg config.ProtocolConfig,
	net network.Network,
	topo topology.Topology,
	sm statemachine.StateMachine,
	persist persistence.Adapter,
	logger liblog.Logger,
	hook metrics.Hook,
) *Engine {
	if logger == nil {
		logger = rabialog.NewNoOpLogger()
	}
	if hook == nil {
		hook = metrics.NoOpHook()
	}
	e := &Engine{
		self:          self,
		cfg:           cfg,
		log:           logger.With("component", "rabia-engine", "node", self.String()),
		network:       net,
		topology:      topo,
		stateMachine:  sm,
		persistence:   persist,
		metrics:       hook,
		dispatcher:    newDispatcher(),
		state:         newEngineState(),
		phases:        make(map[types.Phase]*rabia.PhaseState),
		batches:       batch.NewRegistry(),
		syncResponses: make(map[types.NodeId]types.SavedState),
		start:         newStartSignal(),
	}
	e.scheduler = newScheduler(e)
	return e
}

// phaseState returns the PhaseState for p, creating it lazily.
func (e *Engine) phaseState(p types.Phase) *rabia.PhaseState {
	ps, ok := e.phases[p]
	if !ok {
		ps = rabia.NewPhaseState()
		e.phases[p] = ps
	}
	return ps
}

// Snapshot returns an atomically-published, read-only view of engine
// state, safe to call from any goroutine.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.snapshot()
}

// publishMetrics updates the gauges that reflect current engine state.
// Must run on the executor, which is the only writer of e.state; the
// mutex only protects concurrent readers of the published copy.
func (e *Engine) publishMetrics() {
	e.mu.Lock()
	snap := e.state.snapshot()
	e.mu.Unlock()

	e.metrics.SetCurrentPhase(uint64(snap.CurrentPhase))
	e.metrics.SetLastCommittedPhase(uint64(snap.LastCommittedPhase))
	e.metrics.SetPendingBatches(e.batches.Len())
}

// withState runs fn with exclusive access to e.state, publishing the
// updated snapshot for external readers afterward. Must only be called
// from the executor goroutine.
func (e *Engine) withState(fn func(*EngineState)) {
	e.mu.Lock()
	fn(&e.state)
	e.mu.Unlock()
}

// Start launches the dispatcher, scheduler, network, and topology. It does
// not register the engine as a message sink; the network implementation is
// wired to the engine's Deliver when it is constructed.
func (e *Engine) Start(ctx context.Context) error {
	e.dispatcher.start()
	e.scheduler.start()
	if err := e.network.Start(ctx); err != nil {
		return err
	}
	if err := e.topology.Start(); err != nil {
		return err
	}
	e.log.Info("engine started")
	return nil
}

// Stop runs the disconnect path synchronously on the executor, then shuts
// the dispatcher and scheduler down. Pending completion handles are
// failed with NodeInactive.
func (e *Engine) Stop(ctx context.Context) error {
	e.scheduler.stop()
	e.dispatcher.runSync(func() {
		e.clusterDisconnected()
	})
	e.dispatcher.stop()
	_ = e.topology.Stop()
	return e.network.Stop(ctx)
}

// WaitUntilActive blocks until the engine has completed synchronization
// and entered the active state, or ctx is done.
func (e *Engine) WaitUntilActive(ctx context.Context) error {
	return e.start.wait(ctx)
}

// Deliver implements network.Sink: the network calls this for every
// ProtocolMessage addressed to self. Each message is enqueued onto the
// serial dispatcher and dispatched to its handler; Deliver itself never
// blocks or touches protocol state.
func (e *Engine) Deliver(msg network.ProtocolMessage) {
	e.dispatcher.enqueue(func() { e.handle(msg) })
}

func (e *Engine) handle(msg network.ProtocolMessage) {
	switch msg.Kind {
	case network.KindPropose:
		e.handlePropose(msg)
	case network.KindVoteRound1:
		e.handleVoteRound1(msg)
	case network.KindVoteRound2:
		e.handleVoteRound2(msg)
	case network.KindDecision:
		e.handleRemoteDecision(msg)
	case network.KindNewBatch:
		e.handleNewBatch(msg)
	case network.KindSyncRequest:
		e.handleSyncRequest(msg)
	case network.KindSyncResponse:
		e.handleSyncResponse(msg)
	}
	e.publishMetrics()
}

// startSignal is the one-shot, re-armable handle resolved by activate()
// and consumed by disconnect.
type startSignal struct {
	mu sync.Mutex
	ch chan struct{}
}

func newStartSignal() *startSignal {
	return &startSignal{ch: make(chan struct{})}
}

func (s *startSignal) resolve() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.ch:
	default:
		close(s.ch)
	}
}

func (s *startSignal) rearm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch = make(chan struct{})
}

func (s *startSignal) wait(ctx context.Context) error {
	s.mu.Lock()
	ch := s.ch
	s.mu.Unlock()
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// jitter returns d randomized by +/- fraction.
func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 {
		return d
	}
	span := float64(d) * fraction * 2
	offset := time.Duration(rand.Float64() * span)
	return d - time.Duration(float64(d)*fraction) + offset
}
