// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"fmt"

	"go.uber.org/zap"
)

// Occupancy is a point in time view of a monitor's counters, indexed by
// Direction. Monitors that do not track waiters or streaks leave those zero.
type Occupancy struct {
	// Inside counts the vehicles currently in the tunnel.
	Inside [numDirections]int
	// Waiting counts the vehicles blocked in Enter.
	Waiting [numDirections]int
	// Streak counts the consecutive admissions in a direction since the
	// opposite direction was last admitted.
	Streak [numDirections]int
}

// Empty reports whether no vehicle is inside the tunnel.
func (o Occupancy) Empty() bool {
	return o.Inside[North] == 0 && o.Inside[South] == 0
}

// Exclusive reports whether the tunnel is occupied in at most one direction.
func (o Occupancy) Exclusive() bool {
	return o.Inside[North] == 0 || o.Inside[South] == 0
}

func (o Occupancy) String() string {
	return fmt.Sprintf("inside(n=%d s=%d) waiting(n=%d s=%d) streak(n=%d s=%d)",
		o.Inside[North], o.Inside[South],
		o.Waiting[North], o.Waiting[South],
		o.Streak[North], o.Streak[South])
}

// counters is the state shared by all monitors. It must only be accessed
// while holding the owning monitor's lock.
type counters Occupancy

func (c *counters) admit(dir Direction) {
	c.Inside[dir]++
	if c.Inside[dir.Opposite()] > 0 {
		panic(fmt.Sprintf("vehicles inside heading both ways: %s", Occupancy(*c)))
	}
}

func (c *counters) release(dir Direction) {
	c.Inside[dir]--
	if c.Inside[dir] < 0 {
		panic(fmt.Sprintf("negative %s occupancy", dir))
	}
}

func (c *counters) fields(dir Direction) []zap.Field {
	return []zap.Field{
		zap.Stringer("direction", dir),
		zap.Int("inside", c.Inside[dir]),
		zap.Int("opposite inside", c.Inside[dir.Opposite()]),
		zap.Int("waiting", c.Waiting[dir]),
		zap.Int("streak", c.Streak[dir]),
	}
}
