// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ava-labs/tunnel"
	"github.com/google/uuid"
	"github.com/juju/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Stats summarizes a simulation run, indexed by direction.
type Stats struct {
	Launched  [len(tunnel.Directions)]int
	Completed [len(tunnel.Directions)]int
	// TurnedBack counts vehicles that gave up before asking to enter
	// because the run was cancelled.
	TurnedBack [len(tunnel.Directions)]int
}

func (s Stats) TotalLaunched() int {
	return s.Launched[tunnel.North] + s.Launched[tunnel.South]
}

func (s Stats) TotalCompleted() int {
	return s.Completed[tunnel.North] + s.Completed[tunnel.South]
}

// Simulation launches vehicles against a single monitor.
type Simulation struct {
	config  Config
	monitor tunnel.Monitor
	logger  tunnel.Logger
	census  *Census
	rand    *rand.Rand

	lock  sync.Mutex
	stats Stats
}

func New(config *Config, monitor tunnel.Monitor, logger tunnel.Logger) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Annotate(err, "creating simulation")
	}
	if monitor == nil {
		return nil, errors.NotValidf("nil monitor")
	}
	if logger == nil {
		return nil, errors.NotValidf("nil logger")
	}
	if _, ok := monitor.(*tunnel.AntiJamMonitor); ok && config.MaxConcurrent > 0 {
		// A streak-capped vehicle keeps its slot until an opposite vehicle is
		// admitted, which may never get a slot to start in.
		return nil, errors.NotValidf("max concurrent %d with the %s monitor", config.MaxConcurrent, tunnel.AntiJam)
	}

	return &Simulation{
		config:  *config,
		monitor: monitor,
		logger:  logger,
		census:  NewCensus(),
		rand:    rand.New(rand.NewSource(config.RandomSeed)),
	}, nil
}

func (s *Simulation) Census() *Census {
	return s.census
}

// Run launches the configured number of vehicles and waits for all of them to
// finish. Cancelling ctx stops further launches, including one waiting for a
// free slot under MaxConcurrent, and cuts delays short. A vehicle already
// blocked in the monitor stays blocked until admitted, and a vehicle inside
// the tunnel always exits.
func (s *Simulation) Run(ctx context.Context) (Stats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var slots *semaphore.Weighted
	if s.config.MaxConcurrent > 0 {
		slots = semaphore.NewWeighted(int64(s.config.MaxConcurrent))
	}

	s.logger.Info("Starting simulation",
		zap.Int("vehicles", s.config.Vehicles),
		zap.Int64("seed", s.config.RandomSeed))

	var launchErr error
	for seq := 1; seq <= s.config.Vehicles; seq++ {
		if slots != nil {
			if launchErr = slots.Acquire(ctx, 1); launchErr != nil {
				s.logger.Info("Simulation cancelled while waiting for a free slot", zap.Int("launched", seq-1))
				break
			}
		}

		v := s.nextVehicle(seq)
		s.census.add(v.Direction)
		s.recordLaunch(v.Direction)
		g.Go(func() error {
			if slots != nil {
				defer slots.Release(1)
			}
			return s.drive(ctx, v)
		})

		if seq == s.config.Vehicles {
			break
		}
		if launchErr = s.sleep(ctx, s.nextArrival()); launchErr != nil {
			s.logger.Info("Simulation cancelled, no more vehicles will be launched", zap.Int("launched", seq))
			break
		}
	}

	err := g.Wait()
	if err == nil {
		err = launchErr
	}
	s.census.WaitIdle()

	stats := s.Stats()
	s.logger.Info("Simulation finished",
		zap.Int("launched", stats.TotalLaunched()),
		zap.Int("completed", stats.TotalCompleted()),
		zap.Error(err))
	return stats, err
}

func (s *Simulation) Stats() Stats {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.stats
}

func (s *Simulation) drive(ctx context.Context, v Vehicle) error {
	fields := v.fields()
	s.logger.Info("Vehicle created", fields...)

	if err := s.sleep(ctx, v.Approach); err != nil {
		s.census.move(v.Direction, Created, Done)
		s.record(&s.stats.TurnedBack, v.Direction)
		s.logger.Debug("Vehicle turned back", append(fields, zap.Error(err))...)
		return err
	}

	s.census.move(v.Direction, Created, WantsEnter)
	s.logger.Info("Vehicle wants to enter", fields...)
	s.monitor.Enter(v.Direction)

	s.census.move(v.Direction, WantsEnter, InTunnel)
	s.logger.Info("Vehicle enters the tunnel", fields...)
	err := s.sleep(ctx, v.Transit)

	s.census.move(v.Direction, InTunnel, WantsExit)
	s.logger.Info("Vehicle leaving the tunnel", fields...)
	s.monitor.Exit(v.Direction)

	s.census.move(v.Direction, WantsExit, Done)
	s.record(&s.stats.Completed, v.Direction)
	s.logger.Info("Vehicle out of the tunnel", fields...)
	return err
}

func (s *Simulation) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-s.config.Clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulation) nextVehicle(seq int) Vehicle {
	dir := tunnel.South
	if s.rand.Float64() < s.config.NorthRatio {
		dir = tunnel.North
	}

	id, err := uuid.NewRandomFromReader(s.rand)
	if err != nil {
		id = uuid.New()
	}

	return Vehicle{
		ID:        id,
		Seq:       seq,
		Direction: dir,
		Approach:  s.uniform(s.config.MaxApproach),
		Transit:   s.uniform(s.config.MaxTransit),
	}
}

func (s *Simulation) nextArrival() time.Duration {
	return time.Duration(s.rand.ExpFloat64() * float64(s.config.MeanArrival))
}

func (s *Simulation) uniform(max time.Duration) time.Duration {
	return time.Duration(s.rand.Float64() * float64(max))
}

func (s *Simulation) recordLaunch(dir tunnel.Direction) {
	s.record(&s.stats.Launched, dir)
}

func (s *Simulation) record(counter *[len(tunnel.Directions)]int, dir tunnel.Direction) {
	s.lock.Lock()
	defer s.lock.Unlock()

	counter[dir]++
}
