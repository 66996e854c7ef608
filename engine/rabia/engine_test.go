// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/rabia/config"
	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/statemachine"
	"github.com/luxfi/rabia/topology"
	"github.com/luxfi/rabia/types"
)

type memPersistence struct {
	mu    sync.Mutex
	state types.SavedState
	found bool
}

func (m *memPersistence) Save(state types.SavedState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state, m.found = state, true
	return nil
}

func (m *memPersistence) Load() (types.SavedState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.found {
		return types.SavedState{}, false, nil
	}
	return m.state, true, nil
}

type sinkProxy struct{ e *Engine }

func (p *sinkProxy) Deliver(msg network.ProtocolMessage) { p.e.Deliver(msg) }

func newSingleNodeEngine(t *testing.T) (*Engine, types.NodeId) {
	t.Helper()
	self := ids.GenerateTestNodeID()
	topo, err := topology.NewStatic(self, []topology.Info{{NodeId: self, Addr: "n0"}})
	require.NoError(t, err)

	router := network.NewRouter()
	proxy := &sinkProxy{}
	bus := network.NewBus(self, router, proxy)

	e := New(self, config.DefaultProtocolConfig(), bus, topo, statemachine.NewEcho(), &memPersistence{}, nil, nil)
	proxy.e = e
	return e, self
}

func TestEngineLifecycleAndApply(t *testing.T) {
	e, _ := newSingleNodeEngine(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, e.Start(ctx))
	e.OnTopologyEvent(topology.Established)
	require.NoError(t, e.WaitUntilActive(ctx))

	handle, err := e.Apply([]types.Command{[]byte("hello")})
	require.NoError(t, err)

	results, err := handle.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, []types.Result{types.Result("hello")}, results)

	require.NoError(t, e.Stop(context.Background()))
}

func TestApplyRejectsEmptyBatch(t *testing.T) {
	e, _ := newSingleNodeEngine(t)
	_, err := e.Apply(nil)
	require.ErrorIs(t, err, types.ErrCommandBatchIsEmpty)
}

func TestApplyRejectsWhileInactive(t *testing.T) {
	e, _ := newSingleNodeEngine(t)
	_, err := e.Apply([]types.Command{[]byte("x")})
	require.True(t, types.IsNodeInactive(err))
}

func TestStopDeactivatesEngine(t *testing.T) {
	e, _ := newSingleNodeEngine(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, e.Start(ctx))
	e.OnTopologyEvent(topology.Established)
	require.NoError(t, e.WaitUntilActive(ctx))
	require.NoError(t, e.Stop(context.Background()))

	snap := e.Snapshot()
	require.False(t, snap.Active)
}

func TestHealthCheckReportsSnapshot(t *testing.T) {
	e, _ := newSingleNodeEngine(t)
	report, err := e.HealthCheck(context.Background())
	require.NoError(t, err)
	m, ok := report.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, false, m["active"])
}
