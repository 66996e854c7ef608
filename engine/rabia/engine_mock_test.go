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
	"go.uber.org/mock/gomock"

	"github.com/luxfi/rabia/config"
	"github.com/luxfi/rabia/network"
	"github.com/luxfi/rabia/network/networkmock"
	"github.com/luxfi/rabia/statemachine"
	"github.com/luxfi/rabia/topology"
	"github.com/luxfi/rabia/types"
)

// TestStartPhaseBroadcastsProposeViaMockNetwork drives a single-node engine
// through a MockNetwork instead of the real Bus, asserting that Apply's
// NewBatch broadcast and startPhase's Propose broadcast both reach the
// network.
func TestStartPhaseBroadcastsProposeViaMockNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockNet := networkmock.NewMockNetwork(ctrl)

	self := ids.GenerateTestNodeID()
	topo, err := topology.NewStatic(self, []topology.Info{{NodeId: self, Addr: "n0"}})
	require.NoError(t, err)

	var (
		mu       sync.Mutex
		captured []network.ProtocolMessage
	)

	e := New(self, config.DefaultProtocolConfig(), mockNet, topo, statemachine.NewEcho(), &memPersistence{}, nil, nil)

	loopback := func(_ context.Context, msg network.ProtocolMessage) {
		mu.Lock()
		captured = append(captured, msg)
		mu.Unlock()
		e.Deliver(msg) // loopback, mirroring Bus delivering to self
	}
	mockNet.EXPECT().Broadcast(gomock.Any(), gomock.Any()).DoAndReturn(loopback).AnyTimes()
	mockNet.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ types.NodeId, msg network.ProtocolMessage) { loopback(ctx, msg) },
	).AnyTimes()
	mockNet.EXPECT().Start(gomock.Any()).Return(nil)
	mockNet.EXPECT().Stop(gomock.Any()).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, e.Start(ctx))
	e.OnTopologyEvent(topology.Established)
	require.NoError(t, e.WaitUntilActive(ctx))

	handle, err := e.Apply([]types.Command{[]byte("ping")})
	require.NoError(t, err)
	_, err = handle.Wait(ctx)
	require.NoError(t, err)

	require.NoError(t, e.Stop(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	var sawPropose, sawNewBatch bool
	for _, msg := range captured {
		switch msg.Kind {
		case network.KindPropose:
			sawPropose = true
		case network.KindNewBatch:
			sawNewBatch = true
		}
	}
	require.True(t, sawNewBatch, "expected a NewBatch broadcast")
	require.True(t, sawPropose, "expected a Propose broadcast")
}
