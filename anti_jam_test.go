// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel_test

import (
	"testing"

	"github.com/ava-labs/tunnel"
	"github.com/ava-labs/tunnel/testutil"

	"github.com/stretchr/testify/require"
)

func TestAntiJamStreakBound(t *testing.T) {
	m := tunnel.NewAntiJamMonitor(testutil.MakeLogger(t), 5)

	for i := 0; i < 5; i++ {
		m.Enter(tunnel.North)
		m.Exit(tunnel.North)
	}
	require.Equal(t, 5, m.Occupancy().Streak[tunnel.North])

	// The tunnel is empty, yet the sixth northbound vehicle must wait for a
	// southbound admission.
	sixth := enterAsync(m, tunnel.North)
	requireBlocked(t, sixth, "sixth consecutive northbound vehicle admitted")
	requireOccupancy(t, m, 0, 0)

	m.Enter(tunnel.South)
	occ := m.Occupancy()
	require.Zero(t, occ.Streak[tunnel.North])
	require.Equal(t, 1, occ.Streak[tunnel.South])

	// Its streak is reset but southbound traffic is still inside.
	requireBlocked(t, sixth, "northbound vehicle admitted while southbound traffic inside")

	m.Exit(tunnel.South)
	requireReleased(t, sixth)

	occ = m.Occupancy()
	require.Equal(t, 1, occ.Inside[tunnel.North])
	require.Equal(t, 1, occ.Streak[tunnel.North])
	require.Zero(t, occ.Streak[tunnel.South])

	m.Exit(tunnel.North)
	requireOccupancy(t, m, 0, 0)
}

func TestAntiJamVacancyDoesNotResetStreak(t *testing.T) {
	m := tunnel.NewAntiJamMonitor(testutil.MakeLogger(t), 2)

	m.Enter(tunnel.South)
	m.Enter(tunnel.South)
	third := enterAsync(m, tunnel.South)
	requireBlocked(t, third)

	m.Exit(tunnel.South)
	m.Exit(tunnel.South)
	requireBlocked(t, third, "emptying the tunnel released a capped vehicle")

	m.Enter(tunnel.North)
	m.Exit(tunnel.North)
	requireReleased(t, third)

	m.Exit(tunnel.South)
	requireOccupancy(t, m, 0, 0)
}

func TestAntiJamAlternatesUnderContention(t *testing.T) {
	m := tunnel.NewAntiJamMonitor(testutil.MakeLogger(t), 1)

	m.Enter(tunnel.North)

	north := enterAsync(m, tunnel.North)
	south := enterAsync(m, tunnel.South)
	requireBlocked(t, north)
	requireBlocked(t, south)

	m.Exit(tunnel.North)
	requireReleased(t, south)
	requireBlocked(t, north)

	m.Exit(tunnel.South)
	requireReleased(t, north)

	m.Exit(tunnel.North)
	requireOccupancy(t, m, 0, 0)
}

func TestAntiJamResetsOppositeStreakEagerly(t *testing.T) {
	m := tunnel.NewAntiJamMonitor(testutil.MakeLogger(t), 5)

	m.Enter(tunnel.South)
	m.Exit(tunnel.South)
	require.Equal(t, 1, m.Occupancy().Streak[tunnel.South])

	m.Enter(tunnel.North)
	occ := m.Occupancy()
	require.Zero(t, occ.Streak[tunnel.South])
	require.Equal(t, 1, occ.Streak[tunnel.North])
	m.Exit(tunnel.North)
}
