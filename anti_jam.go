// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const DefaultMaxStreak = 5

// AntiJamMonitor bounds the number of consecutive admissions in one direction.
// Once maxStreak vehicles heading the same way have been admitted in a row,
// further vehicles heading that way wait until a vehicle heading the opposite
// way is admitted. Vacancy alone does not reset the streak.
type AntiJamMonitor struct {
	logger    Logger
	maxStreak int

	lock  sync.Mutex
	state counters
	// vacated[d] is broadcast whenever a vehicle heading d leaves.
	vacated [numDirections]sync.Cond
	// uncapped[d] is broadcast whenever streak[d] is reset.
	uncapped [numDirections]sync.Cond
}

func NewAntiJamMonitor(logger Logger, maxStreak int) *AntiJamMonitor {
	if maxStreak < 1 {
		panic(fmt.Sprintf("max streak must be positive, got %d", maxStreak))
	}
	m := &AntiJamMonitor{logger: logger, maxStreak: maxStreak}
	for i := range m.vacated {
		m.vacated[i].L = &m.lock
		m.uncapped[i].L = &m.lock
	}
	return m
}

func (m *AntiJamMonitor) Enter(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	opposite := dir.Opposite()
	for {
		if m.state.Streak[dir] >= m.maxStreak {
			m.logger.Verbo("Streak exhausted, waiting for opposite admission", m.state.fields(dir)...)
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

	m.state.admit(dir)
	m.state.Streak[dir]++
	m.state.Streak[opposite] = 0
	m.uncapped[opposite].Broadcast()
	m.logger.Trace("Vehicle admitted", m.state.fields(dir)...)
}

func (m *AntiJamMonitor) Exit(dir Direction) {
	mustBeValid(dir)

	m.lock.Lock()
	defer m.lock.Unlock()

	m.state.release(dir)
	m.vacated[dir].Broadcast()
	m.logger.Debug("Vehicle left", zap.Stringer("direction", dir), zap.Int("inside", m.state.Inside[dir]))
}

func (m *AntiJamMonitor) Occupancy() Occupancy {
	m.lock.Lock()
	defer m.lock.Unlock()

	return Occupancy(m.state)
}
