// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultProtocolConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultProtocolConfig()
	require.Positive(cfg.CleanupInterval)
	require.Positive(cfg.SyncRetryInterval)
	require.Equal(uint64(100), cfg.MaxPhaseAhead)
}

func TestBuilderOverridesDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().
		WithCleanupInterval(time.Minute).
		WithSyncRetryInterval(2 * time.Second).
		WithRemoveOlderThanPhases(50).
		WithMaxPhaseAhead(10).
		Build()
	require.NoError(err)
	require.Equal(time.Minute, cfg.CleanupInterval)
	require.Equal(2*time.Second, cfg.SyncRetryInterval)
	require.Equal(uint64(50), cfg.RemoveOlderThanPhases)
	require.Equal(uint64(10), cfg.MaxPhaseAhead)
}

func TestBuilderRejectsInvalidValues(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithCleanupInterval(0).Build()
	require.Error(err)

	_, err = NewBuilder().WithMaxPhaseAhead(0).Build()
	require.Error(err)

	// the first error short-circuits subsequent calls
	_, err = NewBuilder().WithCleanupInterval(-1).WithMaxPhaseAhead(5).Build()
	require.Error(err)
}
