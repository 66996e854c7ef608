// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"time"
)

// Command is an opaque client-submitted operation, applied to the state
// machine in the order it appears within its decided Batch.
type Command []byte

// Result is the opaque outcome of applying a single Command.
type Result []byte

// Batch is an ordered, immutable group of client commands with a unique
// identity and a correlation id shared across replicas proposing it.
//
// Batches are totally ordered by (Timestamp, Id, CorrelationId); ties are
// broken lexicographically on the byte representation so every node's
// comparison agrees regardless of arrival order.
type Batch struct {
	Id            BatchId
	CorrelationId CorrelationId
	Timestamp     int64 // monotonic nanoseconds
	Commands      []Command
}

// EmptyBatch is the distinguished batch carrying no commands, used for V0
// decisions and as the zero value of pendingBatches lookups.
var EmptyBatch = Batch{Id: EmptyCorrelationId, CorrelationId: EmptyCorrelationId}

// IsEmpty reports whether b is the empty batch.
func (b Batch) IsEmpty() bool {
	return b.Id == EmptyCorrelationId && len(b.Commands) == 0
}

// Equal compares batches by Id.
func (b Batch) Equal(other Batch) bool { return b.Id == other.Id }

// CompareBatches implements the total order (timestamp, id, correlationId)
// used to select a node's own proposal (the minimum pending batch) and to
// break ties deterministically when grouping proposals. Returns a negative
// number, zero, or a positive number as a < b, a == b, a > b.
func CompareBatches(a, b Batch) int {
	if a.Timestamp != b.Timestamp {
		if a.Timestamp < b.Timestamp {
			return -1
		}
		return 1
	}
	if c := bytes.Compare(a.Id[:], b.Id[:]); c != 0 {
		return c
	}
	return bytes.Compare(a.CorrelationId[:], b.CorrelationId[:])
}
