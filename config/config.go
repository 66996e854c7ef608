// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the tunables of the Rabia protocol core: reaper
// cadence, sync retry cadence, the reaper window, and the far-future
// proposal rejection bound.
package config

import "time"

// ProtocolConfig enumerates the protocol core's runtime tunables.
type ProtocolConfig struct {
	// CleanupInterval is the phase reaper's cadence.
	CleanupInterval time.Duration `json:"cleanupInterval"`

	// SyncRetryInterval is the synchronize() retry cadence while inactive.
	// The engine jitters it by ±50% on each cycle.
	SyncRetryInterval time.Duration `json:"syncRetryInterval"`

	// RemoveOlderThanPhases bounds the reaper window: a PhaseState is
	// removed once currentPhase - phase exceeds this value.
	RemoveOlderThanPhases uint64 `json:"removeOlderThanPhases"`

	// MaxPhaseAhead rejects Propose messages further ahead of
	// currentPhase than this, guarding against runaway future phases.
	MaxPhaseAhead uint64 `json:"maxPhaseAhead"`
}

// DefaultProtocolConfig returns sensible defaults for a production cluster.
func DefaultProtocolConfig() ProtocolConfig {
	return ProtocolConfig{
		CleanupInterval:       30 * time.Second,
		SyncRetryInterval:     5 * time.Second,
		RemoveOlderThanPhases: 1000,
		MaxPhaseAhead:         100,
	}
}
