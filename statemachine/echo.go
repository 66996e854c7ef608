// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statemachine

import (
	"encoding/json"
	"sync"

	"github.com/luxfi/rabia/types"
)

// Echo is an in-memory StateMachine used by tests and the cluster harness:
// it appends every applied command to a log and echoes each command back
// as its own result, so tests can assert on exactly what was committed and
// in what order.
type Echo struct {
	mu  sync.Mutex
	log []types.Command
}

// NewEcho returns an empty Echo state machine.
func NewEcho() *Echo { return &Echo{} }

func (e *Echo) Process(commands []types.Command) ([]types.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]types.Result, len(commands))
	for i, cmd := range commands {
		e.log = append(e.log, cmd)
		results[i] = types.Result(cmd)
	}
	return results, nil
}

// Log returns a copy of every command applied so far, in application order.
func (e *Echo) Log() []types.Command {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := make([]types.Command, len(e.log))
	copy(log, e.log)
	return log
}

func (e *Echo) MakeSnapshot() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return json.Marshal(e.log)
}

func (e *Echo) RestoreSnapshot(snapshot []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(snapshot) == 0 {
		e.log = nil
		return nil
	}
	var log []types.Command
	if err := json.Unmarshal(snapshot, &log); err != nil {
		return err
	}
	e.log = log
	return nil
}

func (e *Echo) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = nil
}
