// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"sync"

	"go.uber.org/zap"
)

// CheatingMonitor admits vehicles like BasicMonitor, but southbound vehicles
// hold the tunnel for their direction: a southbound vehicle may only leave if
// another southbound vehicle remains inside, or if no southbound vehicle is
// waiting to get in. This is the only monitor whose Exit may block.
type CheatingMonitor struct {
	logger Logger

	lock  sync.Mutex
	state counters
	// vacated[d] is broadcast whenever a vehicle heading d leaves.
	vacated [numDirections]sync.Cond
	// southAdmitted is broadcast whenever a southbound vehicle is admitted.
	southAdmitted sync.Cond
}

func NewCheatingMonitor(logger Logger) *CheatingMonitor {
	m := &CheatingMonitor{logger: logger}
	for i := range m.vacated {
		m.vacated[i].L = &m.lock
	}
	m.southAdmitted.L = &m.lock
	return m
}

func (m *CheatingMonitor) Enter(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	if dir == South {
		m.state.Waiting[South]++
	}

	opposite := dir.Opposite()
	for m.state.Inside[opposite] > 0 {
		m.logger.Verbo("Waiting for opposite traffic to clear", m.state.fields(dir)...)
		m.vacated[opposite].Wait()
	}

	m.state.admit(dir)
	if dir == South {
		m.state.Waiting[South]--
		m.southAdmitted.Broadcast()
	}
	m.logger.Trace("Vehicle admitted", m.state.fields(dir)...)
}

// mayLeaveSouth reports whether a southbound vehicle is allowed to leave.
func (m *CheatingMonitor) mayLeaveSouth() bool {
	return m.state.Inside[South] > 1 || m.state.Waiting[South] == 0
}

func (m *CheatingMonitor) Exit(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	if dir == South {
		if m.state.Inside[South] < 1 {
			panic("southbound exit without a southbound vehicle inside")
		}
		for !m.mayLeaveSouth() {
			m.logger.Verbo("Holding the tunnel for waiting southbound traffic", m.state.fields(dir)...)
			m.southAdmitted.Wait()
		}
	}

	m.state.release(dir)
	m.vacated[dir].Broadcast()
	m.logger.Debug("Vehicle left", zap.Stringer("direction", dir), zap.Int("inside", m.state.Inside[dir]))
}

func (m *CheatingMonitor) Occupancy() Occupancy {
	m.lock.Lock()
	defer m.lock.Unlock()

	return Occupancy(m.state)
}
