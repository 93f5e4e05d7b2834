// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel_test

import (
	"testing"

	"github.com/ava-labs/tunnel"
	"github.com/ava-labs/tunnel/testutil"

	"github.com/stretchr/testify/require"
)

func TestCheatingTracksSouthboundWaiters(t *testing.T) {
	m := tunnel.NewCheatingMonitor(testutil.MakeLogger(t))

	m.Enter(tunnel.North)

	south := []<-chan struct{}{enterAsync(m, tunnel.South), enterAsync(m, tunnel.South)}
	require.Eventually(t, func() bool {
		return m.Occupancy().Waiting[tunnel.South] == 2
	}, waitFor, tick)

	// Northbound vehicles are never counted as waiting.
	north := enterAsync(m, tunnel.North)
	requireReleased(t, north)
	require.Zero(t, m.Occupancy().Waiting[tunnel.North])

	m.Exit(tunnel.North)
	m.Exit(tunnel.North)
	for _, ch := range south {
		requireReleased(t, ch)
	}

	occ := m.Occupancy()
	require.Equal(t, 2, occ.Inside[tunnel.South])
	require.Zero(t, occ.Waiting[tunnel.South])
}

func TestCheatingSouthLeavesFreelyWithoutWaiters(t *testing.T) {
	m := tunnel.NewCheatingMonitor(testutil.MakeLogger(t))

	m.Enter(tunnel.South)
	left := exitAsync(m, tunnel.South)
	requireReleased(t, left, "lone southbound vehicle held with nobody waiting")
	requireOccupancy(t, m, 0, 0)

	north := enterAsync(m, tunnel.North)
	requireReleased(t, north)
	m.Exit(tunnel.North)
	requireOccupancy(t, m, 0, 0)
}
