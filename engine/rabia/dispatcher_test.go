// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rabia

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDispatcherRunsTasksInOrder(t *testing.T) {
	require := require.New(t)

	d := newDispatcher()
	d.start()
	defer d.stop()

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		d.enqueue(func() {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tasks did not complete in time")
	}
	require.Equal([]int{0, 1, 2, 3, 4}, order)
}

func TestDispatcherDropsTasksAfterStop(t *testing.T) {
	require := require.New(t)

	d := newDispatcher()
	d.start()
	d.stop()

	var ran atomic.Bool
	d.enqueue(func() { ran.Store(true) })
	time.Sleep(10 * time.Millisecond)
	require.False(ran.Load())
}

func TestDispatcherRunSyncBlocksUntilComplete(t *testing.T) {
	require := require.New(t)

	d := newDispatcher()
	d.start()
	defer d.stop()

	var ran bool
	d.runSync(func() { ran = true })
	require.True(ran)
}
