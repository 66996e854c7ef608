// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"errors"
	"fmt"
)

// ErrCommandBatchIsEmpty is returned by apply/submit when the caller
// supplies no commands.
var ErrCommandBatchIsEmpty = errors.New("command batch is empty")

// NodeInactiveError is returned by apply/submit while a node is not yet
// active, and used to fail pending completion handles on disconnect.
type NodeInactiveError struct {
	Node NodeId
}

func (e *NodeInactiveError) Error() string {
	return fmt.Sprintf("node %s is inactive", e.Node)
}

// NewNodeInactiveError constructs a NodeInactiveError for node.
func NewNodeInactiveError(node NodeId) error {
	return &NodeInactiveError{Node: node}
}

// IsNodeInactive reports whether err (or any error it wraps) is a
// NodeInactiveError.
func IsNodeInactive(err error) bool {
	var target *NodeInactiveError
	return errors.As(err, &target)
}
