// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel_test

import (
	"testing"
	"time"

	"github.com/ava-labs/tunnel"
	"github.com/ava-labs/tunnel/testutil"

	"github.com/stretchr/testify/require"
)

const (
	blockedFor = 200 * time.Millisecond
	waitFor    = 5 * time.Second
	tick       = 5 * time.Millisecond
)

func makeMonitor(t *testing.T, kind tunnel.Kind, maxStreak int) tunnel.Monitor {
	config := tunnel.DefaultConfig(testutil.MakeLogger(t))
	config.Kind = kind
	config.MaxStreak = maxStreak
	m, err := tunnel.New(config)
	require.NoError(t, err)
	return m
}

// async runs f on its own goroutine and returns a channel closed once f returns.
func async(f func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	return done
}

func enterAsync(m tunnel.Monitor, dir tunnel.Direction) <-chan struct{} {
	return async(func() { m.Enter(dir) })
}

func exitAsync(m tunnel.Monitor, dir tunnel.Direction) <-chan struct{} {
	return async(func() { m.Exit(dir) })
}

func closed(ch <-chan struct{}) func() bool {
	return func() bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}
}

func requireBlocked(t *testing.T, ch <-chan struct{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Never(t, closed(ch), blockedFor, tick, msgAndArgs...)
}

func requireReleased(t *testing.T, ch <-chan struct{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Eventually(t, closed(ch), waitFor, tick, msgAndArgs...)
}

func requireOccupancy(t *testing.T, m tunnel.Monitor, north, south int) {
	t.Helper()
	occ := m.Occupancy()
	require.Equal(t, north, occ.Inside[tunnel.North], occ.String())
	require.Equal(t, south, occ.Inside[tunnel.South], occ.String())
}
