// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package persistence

import (
	"encoding/json"
	"fmt"
)

// codecVersion lets the persisted layout evolve without changing callers.
type codecVersion uint16

const currentCodecVersion codecVersion = 0

// wireSavedState is the on-disk layout; Phase is carried as uint64 since
// types.Phase has no custom JSON marshaling of its own.
type wireSavedState struct {
	Version            codecVersion `json:"version"`
	Snapshot           []byte       `json:"snapshot"`
	LastCommittedPhase uint64       `json:"lastCommittedPhase"`
	PendingBatches     []wireBatch  `json:"pendingBatches"`
}

type wireBatch struct {
	Id            [32]byte `json:"id"`
	CorrelationId [32]byte `json:"correlationId"`
	Timestamp     int64    `json:"timestamp"`
	Commands      [][]byte `json:"commands"`
}

func marshal(version codecVersion, v interface{}) ([]byte, error) {
	if version != currentCodecVersion {
		return nil, fmt.Errorf("persistence: unsupported codec version %d", version)
	}
	return json.Marshal(v)
}

func unmarshal(data []byte, v interface{}) (codecVersion, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return 0, err
	}
	return currentCodecVersion, nil
}
