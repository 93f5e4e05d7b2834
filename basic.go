// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"sync"

	"go.uber.org/zap"
)

// BasicMonitor admits a vehicle whenever no vehicle heading the opposite way
// is inside. Continuous traffic in one direction may starve the other.
type BasicMonitor struct {
	logger Logger

	lock  sync.Mutex
	state counters
	// vacated[d] is broadcast whenever a vehicle heading d leaves.
	vacated [numDirections]sync.Cond
}

func NewBasicMonitor(logger Logger) *BasicMonitor {
	m := &BasicMonitor{logger: logger}
	for i := range m.vacated {
		m.vacated[i].L = &m.lock
	}
	return m
}

func (m *BasicMonitor) Enter(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	opposite := dir.Opposite()
	for m.state.Inside[opposite] > 0 {
		m.logger.Verbo("Waiting for opposite traffic to clear", m.state.fields(dir)...)
		m.vacated[opposite].Wait()
	}

	m.state.admit(dir)
	m.logger.Trace("Vehicle admitted", m.state.fields(dir)...)
}

func (m *BasicMonitor) Exit(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	m.state.release(dir)
	m.vacated[dir].Broadcast()
	m.logger.Debug("Vehicle left", zap.Stringer("direction", dir), zap.Int("inside", m.state.Inside[dir]))
}

func (m *BasicMonitor) Occupancy() Occupancy {
	m.lock.Lock()
	defer m.lock.Unlock()

	return Occupancy(m.state)
}
