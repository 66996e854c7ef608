// Copyright (C) 2020-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import "context"

// Checker is the interface for health checking
type Checker interface {
	// HealthCheck returns information about the health of the service
	HealthCheck(context.Context) (interface{}, error)
}
