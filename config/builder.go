// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"time"
)

// Builder provides a fluent, validating interface for constructing a
// ProtocolConfig, mirroring the error-carrying builder style used
// throughout this codebase family.
type Builder struct {
	config ProtocolConfig
	err    error
}

// NewBuilder starts from DefaultProtocolConfig.
func NewBuilder() *Builder {
	return &Builder{config: DefaultProtocolConfig()}
}

// WithCleanupInterval sets the reaper cadence.
func (b *Builder) WithCleanupInterval(d time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if d <= 0 {
		b.err = fmt.Errorf("cleanupInterval must be positive, got %s", d)
		return b
	}
	b.config.CleanupInterval = d
	return b
}

// WithSyncRetryInterval sets the synchronize() retry cadence.
func (b *Builder) WithSyncRetryInterval(d time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if d <= 0 {
		b.err = fmt.Errorf("syncRetryInterval must be positive, got %s", d)
		return b
	}
	b.config.SyncRetryInterval = d
	return b
}

// WithRemoveOlderThanPhases sets the reaper window.
func (b *Builder) WithRemoveOlderThanPhases(phases uint64) *Builder {
	if b.err != nil {
		return b
	}
	if phases == 0 {
		b.err = fmt.Errorf("removeOlderThanPhases must be positive, got %d", phases)
		return b
	}
	b.config.RemoveOlderThanPhases = phases
	return b
}

// WithMaxPhaseAhead sets the far-future proposal rejection bound.
func (b *Builder) WithMaxPhaseAhead(phases uint64) *Builder {
	if b.err != nil {
		return b
	}
	if phases == 0 {
		b.err = fmt.Errorf("maxPhaseAhead must be positive, got %d", phases)
		return b
	}
	b.config.MaxPhaseAhead = phases
	return b
}

// Build returns the assembled ProtocolConfig, or the first validation error
// encountered.
func (b *Builder) Build() (ProtocolConfig, error) {
	if b.err != nil {
		return ProtocolConfig{}, b.err
	}
	return b.config, nil
}
