// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package network defines the narrow collaborator the Rabia engine sends
// and receives protocol messages through, plus a closed tagged union for
// the messages themselves.
package network

import "github.com/luxfi/rabia/types"

// Kind tags a ProtocolMessage's concrete payload.
type Kind int

const (
	KindPropose Kind = iota
	KindVoteRound1
	KindVoteRound2
	KindDecision
	KindSyncRequest
	KindSyncResponse
	KindNewBatch
)

func (k Kind) String() string {
	switch k {
	case KindPropose:
		return "Propose"
	case KindVoteRound1:
		return "VoteRound1"
	case KindVoteRound2:
		return "VoteRound2"
	case KindDecision:
		return "Decision"
	case KindSyncRequest:
		return "SyncRequest"
	case KindSyncResponse:
		return "SyncResponse"
	case KindNewBatch:
		return "NewBatch"
	default:
		return "unknown"
	}
}

// ProtocolMessage is the closed set of messages exchanged by the engine.
// Which payload fields are meaningful depends on Kind: only those set by
// the Kind's constructor below.
type ProtocolMessage struct {
	Kind   Kind
	Sender types.NodeId

	Phase types.Phase
	Batch types.Batch
	Value types.StateValue

	SavedState types.SavedState
}

// Propose constructs a Propose(sender, phase, batch) message.
func Propose(sender types.NodeId, phase types.Phase, batch types.Batch) ProtocolMessage {
	return ProtocolMessage{Kind: KindPropose, Sender: sender, Phase: phase, Batch: batch}
}

// VoteRound1 constructs a VoteRound1(sender, phase, value) message. value
// must be V0 or V1.
func VoteRound1(sender types.NodeId, phase types.Phase, value types.StateValue) ProtocolMessage {
	return ProtocolMessage{Kind: KindVoteRound1, Sender: sender, Phase: phase, Value: value}
}

// VoteRound2 constructs a VoteRound2(sender, phase, value) message. value
// may be V0, V1, or VQuestion.
func VoteRound2(sender types.NodeId, phase types.Phase, value types.StateValue) ProtocolMessage {
	return ProtocolMessage{Kind: KindVoteRound2, Sender: sender, Phase: phase, Value: value}
}

// Decision constructs a Decision(sender, phase, value, batch) message.
// batch is the empty batch iff value == V0.
func Decision(sender types.NodeId, phase types.Phase, value types.StateValue, batch types.Batch) ProtocolMessage {
	return ProtocolMessage{Kind: KindDecision, Sender: sender, Phase: phase, Value: value, Batch: batch}
}

// SyncRequest constructs a SyncRequest(sender) message.
func SyncRequest(sender types.NodeId) ProtocolMessage {
	return ProtocolMessage{Kind: KindSyncRequest, Sender: sender}
}

// SyncResponse constructs a SyncResponse(sender, savedState) message.
func SyncResponse(sender types.NodeId, state types.SavedState) ProtocolMessage {
	return ProtocolMessage{Kind: KindSyncResponse, Sender: sender, SavedState: state}
}

// NewBatch constructs a NewBatch(sender, batch) message.
func NewBatch(sender types.NodeId, batch types.Batch) ProtocolMessage {
	return ProtocolMessage{Kind: KindNewBatch, Sender: sender, Batch: batch}
}
