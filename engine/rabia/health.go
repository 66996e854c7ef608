// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"

	"github.com/luxfi/rabia/api/health"
)

var _ health.Checker = (*Engine)(nil)

// HealthCheck implements health.Checker, reporting a snapshot of liveness
// suitable for an operator dashboard or readiness probe.
func (e *Engine) HealthCheck(_ context.Context) (interface{}, error) {
	snap := e.Snapshot()
	return map[string]interface{}{
		"active":             snap.Active,
		"currentPhase":       snap.CurrentPhase.String(),
		"lastCommittedPhase": snap.LastCommittedPhase.String(),
		"pendingBatches":     e.batches.Len(),
	}, nil
}
