// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"fmt"
	"sync"

	"github.com/ava-labs/tunnel"
)

// Tally counts vehicles by state and heading.
type Tally [numStates][len(tunnel.Directions)]int

func (t Tally) Count(s State, dir tunnel.Direction) int {
	return t[s][dir]
}

// InState counts vehicles in the given state regardless of heading.
func (t Tally) InState(s State) int {
	var n int
	for _, dir := range tunnel.Directions {
		n += t[s][dir]
	}
	return n
}

// Pending counts vehicles that have not finished their trip.
func (t Tally) Pending() int {
	var n int
	for _, s := range States[:Done] {
		n += t.InState(s)
	}
	return n
}

// Census keeps track of where every vehicle of a simulation is.
type Census struct {
	lock   sync.Mutex
	signal sync.Cond
	tally  Tally
}

func NewCensus() *Census {
	var c Census
	c.signal.L = &c.lock
	return &c
}

func (c *Census) add(dir tunnel.Direction) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.tally[Created][dir]++
	c.signal.Broadcast()
}

func (c *Census) move(dir tunnel.Direction, from, to State) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.tally[from][dir]--
	if c.tally[from][dir] < 0 {
		panic(fmt.Sprintf("negative %s count for %s vehicles", from, dir))
	}
	c.tally[to][dir]++
	c.signal.Broadcast()
}

func (c *Census) Tally() Tally {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.tally
}

// WaitIdle blocks until every vehicle added so far is done.
func (c *Census) WaitIdle() {
	c.lock.Lock()
	defer c.lock.Unlock()

	for c.tally.Pending() > 0 {
		c.signal.Wait()
	}
}
