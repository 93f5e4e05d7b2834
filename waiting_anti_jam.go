// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// WaitingAntiJamMonitor is an AntiJamMonitor that only enforces the streak
// bound while some vehicle heading the opposite way is actually waiting.
// Without contention a direction may run for as long as it has traffic.
type WaitingAntiJamMonitor struct {
	logger    Logger
	maxStreak int

	lock  sync.Mutex
	state counters
	// vacated[d] is broadcast whenever a vehicle heading d leaves.
	vacated [numDirections]sync.Cond
	// uncapped[d] is broadcast on every admission, since each admission
	// changes either streak[d] or waiting[opposite(d)].
	uncapped [numDirections]sync.Cond
}

func NewWaitingAntiJamMonitor(logger Logger, maxStreak int) *WaitingAntiJamMonitor {
	if maxStreak < 1 {
		panic(fmt.Sprintf("max streak must be positive, got %d", maxStreak))
	}
	m := &WaitingAntiJamMonitor{logger: logger, maxStreak: maxStreak}
	for i := range m.vacated {
		m.vacated[i].L = &m.lock
		m.uncapped[i].L = &m.lock
	}
	return m
}

// capped reports whether dir has used up its streak while opposite traffic
// is waiting for its turn.
func (m *WaitingAntiJamMonitor) capped(dir Direction) bool {
	return m.state.Streak[dir] >= m.maxStreak && m.state.Waiting[dir.Opposite()] > 0
}

func (m *WaitingAntiJamMonitor) Enter(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	opposite := dir.Opposite()
	m.state.Waiting[dir]++
	for {
		if m.capped(dir) {
			m.logger.Verbo("Streak exhausted with opposite traffic waiting", m.state.fields(dir)...)
			m.uncapped[dir].Wait()
			continue
		}
		if m.state.Inside[opposite] > 0 {
			m.logger.Verbo("Waiting for opposite traffic to clear", m.state.fields(dir)...)
			m.vacated[opposite].Wait()
			continue
		}
		break
	}
	m.state.Waiting[dir]--

	m.state.admit(dir)
	m.state.Streak[dir]++
	m.state.Streak[opposite] = 0
	m.uncapped[dir].Broadcast()
	m.uncapped[opposite].Broadcast()
	m.logger.Trace("Vehicle admitted", m.state.fields(dir)...)
}

func (m *WaitingAntiJamMonitor) Exit(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	m.state.release(dir)
	m.vacated[dir].Broadcast()
	m.logger.Debug("Vehicle left", zap.Stringer("direction", dir), zap.Int("inside", m.state.Inside[dir]))
}

func (m *WaitingAntiJamMonitor) Occupancy() Occupancy {
	m.lock.Lock()
	defer m.lock.Unlock()

	return Occupancy(m.state)
}
