// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package persistence defines the narrow interface the engine uses to
// capture (snapshot, last committed phase, pending batches) on disconnect
// and load it back on reconnect.
package persistence

import "github.com/luxfi/rabia/types"

// Adapter is the narrow persistence collaborator. Save failures are logged
// by the caller and do not block the disconnect transition; Load returning
// (zero value, false, nil) means "no prior state, activate fresh".
type Adapter interface {
	Save(state types.SavedState) error
	Load() (types.SavedState, bool, error)
}
