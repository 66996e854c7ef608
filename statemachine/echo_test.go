// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statemachine

import (
	"testing"

	"github.com/luxfi/rabia/types"
	"github.com/stretchr/testify/require"
)

func TestEchoProcessAppendsAndEchoes(t *testing.T) {
	require := require.New(t)

	sm := NewEcho()
	results, err := sm.Process([]types.Command{[]byte("a"), []byte("b")})
	require.NoError(err)
	require.Equal([]types.Result{types.Result("a"), types.Result("b")}, results)
	require.Equal([]types.Command{[]byte("a"), []byte("b")}, sm.Log())
}

func TestEchoSnapshotRoundTrip(t *testing.T) {
	require := require.New(t)

	sm := NewEcho()
	_, err := sm.Process([]types.Command{[]byte("x")})
	require.NoError(err)

	snap, err := sm.MakeSnapshot()
	require.NoError(err)

	other := NewEcho()
	require.NoError(other.RestoreSnapshot(snap))
	require.Equal(sm.Log(), other.Log())
}

func TestEchoResetClears(t *testing.T) {
	require := require.New(t)

	sm := NewEcho()
	_, err := sm.Process([]types.Command{[]byte("x")})
	require.NoError(err)
	sm.Reset()
	require.Empty(sm.Log())
}
