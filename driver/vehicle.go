// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"time"

	"github.com/ava-labs/tunnel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Vehicle is a single trip through the tunnel. Its delays are drawn when it
// is created so that a simulation is reproducible from its seed.
type Vehicle struct {
	ID        uuid.UUID
	Seq       int
	Direction tunnel.Direction
	// Approach is how long the vehicle drives before asking to enter.
	Approach time.Duration
	// Transit is how long the vehicle stays inside.
	Transit time.Duration
}

func (v Vehicle) fields() []zap.Field {
	return []zap.Field{
		zap.Int("seq", v.Seq),
		zap.Stringer("vehicle", v.ID),
		zap.Stringer("direction", v.Direction),
	}
}
