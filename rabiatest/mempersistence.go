// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rabiatest provides a deterministic in-process cluster harness for
// exercising the Rabia engine across multiple nodes, grounded on the
// teacher's consensustest conventions.
package rabiatest

import (
	"sync"

	"github.com/luxfi/rabia/types"
)

// MemPersistence is an in-memory persistence.Adapter, never touching disk.
type MemPersistence struct {
	mu    sync.Mutex
	state types.SavedState
	found bool
}

// NewMemPersistence returns an empty MemPersistence.
func NewMemPersistence() *MemPersistence {
	return &MemPersistence{}
}

func (m *MemPersistence) Save(state types.SavedState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.found = true
	return nil
}

func (m *MemPersistence) Load() (types.SavedState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.found {
		return types.SavedState{}, false, nil
	}
	return m.state, true, nil
}
