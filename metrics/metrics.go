// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics provides the metrics hook the Rabia engine calls through:
// counters for decisions, the fast path, and coin flips, and gauges
// tracking phase progress. A no-op implementation is always usable so the
// engine never depends on a live registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Hook is the metrics capability the engine consumes.
type Hook interface {
	// DecisionV0 / DecisionV1 count decisions by their outcome.
	DecisionV0()
	DecisionV1()

	// FastPath counts phases decided via the round-1 super-majority fast
	// path, skipping round 2.
	FastPath()

	// CoinFlip counts phases resolved by the deterministic coin fallback.
	CoinFlip()

	// SetCurrentPhase / SetLastCommittedPhase publish the engine's phase
	// cursors for external observation.
	SetCurrentPhase(phase uint64)
	SetLastCommittedPhase(phase uint64)

	// SetPendingBatches publishes the size of the pending-batch pool.
	SetPendingBatches(count int)

	// PhasesReaped counts phase records removed by the reaper.
	PhasesReaped(n int)
}

// hook is the prometheus-backed (or bare in-memory, if reg is nil)
// implementation of Hook.
type hook struct {
	decisionV0         Counter
	decisionV1         Counter
	fastPath           Counter
	coinFlip           Counter
	currentPhase       Gauge
	lastCommittedPhase Gauge
	pendingBatches     Gauge
	phasesReaped       Counter
}

// NewHook returns a Hook. Pass a non-nil reg to additionally publish the
// metrics to prometheus; pass nil for an in-process-only hook.
func NewHook(reg prometheus.Registerer) Hook {
	return &hook{
		decisionV0:         NewCounter("rabia_decisions_v0_total", "decisions with no agreed batch", reg),
		decisionV1:         NewCounter("rabia_decisions_v1_total", "decisions with an agreed batch", reg),
		fastPath:           NewCounter("rabia_fast_path_total", "phases decided via the round-1 super-majority fast path", reg),
		coinFlip:           NewCounter("rabia_coin_flip_total", "phases decided via the deterministic coin fallback", reg),
		currentPhase:       NewGauge("rabia_current_phase", "phase the engine is currently working on", reg),
		lastCommittedPhase: NewGauge("rabia_last_committed_phase", "highest phase applied to the state machine", reg),
		pendingBatches:     NewGauge("rabia_pending_batches", "batches awaiting proposal or decision", reg),
		phasesReaped:       NewCounter("rabia_phases_reaped_total", "phase records removed by the reaper", reg),
	}
}

func (h *hook) DecisionV0()                         { h.decisionV0.Inc() }
func (h *hook) DecisionV1()                         { h.decisionV1.Inc() }
func (h *hook) FastPath()                           { h.fastPath.Inc() }
func (h *hook) CoinFlip()                           { h.coinFlip.Inc() }
func (h *hook) SetCurrentPhase(phase uint64)        { h.currentPhase.Set(float64(phase)) }
func (h *hook) SetLastCommittedPhase(phase uint64)  { h.lastCommittedPhase.Set(float64(phase)) }
func (h *hook) SetPendingBatches(count int)         { h.pendingBatches.Set(float64(count)) }
func (h *hook) PhasesReaped(n int)                  { h.phasesReaped.Add(int64(n)) }

// NoOpHook returns a Hook that discards every observation.
func NoOpHook() Hook { return noopHook{} }

type noopHook struct{}

func (noopHook) DecisionV0()                {}
func (noopHook) DecisionV1()                {}
func (noopHook) FastPath()                  {}
func (noopHook) CoinFlip()                  {}
func (noopHook) SetCurrentPhase(uint64)     {}
func (noopHook) SetLastCommittedPhase(uint64) {}
func (noopHook) SetPendingBatches(int)      {}
func (noopHook) PhasesReaped(int)           {}
