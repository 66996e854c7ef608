// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package types holds the wire-level data model shared by every Rabia
// collaborator: identifiers, phases, state values, batches, and the saved
// snapshot layout.
package types

import "github.com/luxfi/ids"

// NodeId identifies a replica in the cluster.
type NodeId = ids.NodeID

// BatchId identifies a client command batch.
type BatchId = ids.ID

// CorrelationId groups proposals across replicas that claim to carry the
// same batch, so EvaluateInitialVote and FindAgreedProposal can recognize
// them as one candidate regardless of which replica proposed it.
type CorrelationId = ids.ID

// EmptyCorrelationId is the zero value, used by proposals that carry no
// batch (an empty round-1 vote).
var EmptyCorrelationId = ids.Empty
