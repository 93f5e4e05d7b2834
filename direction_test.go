// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel_test

import (
	"testing"

	"github.com/ava-labs/tunnel"

	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, tunnel.South, tunnel.North.Opposite())
	require.Equal(t, tunnel.North, tunnel.South.Opposite())
	for _, d := range tunnel.Directions {
		require.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "north", tunnel.North.String())
	require.Equal(t, "south", tunnel.South.String())
	require.Equal(t, "Direction(7)", tunnel.Direction(7).String())
}

func TestInvalidDirectionPanics(t *testing.T) {
	for _, kind := range tunnel.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			m := makeMonitor(t, kind, tunnel.DefaultMaxStreak)
			require.False(t, tunnel.Direction(7).Valid())
			require.Panics(t, func() { m.Enter(tunnel.Direction(7)) })
			require.Panics(t, func() { m.Exit(tunnel.Direction(7)) })
		})
	}
}
