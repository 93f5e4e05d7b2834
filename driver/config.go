// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
)

type Config struct {
	// Number of vehicles to launch. Default is 100.
	Vehicles int

	// Mean of the exponentially distributed spacing between two launches. Default is 500ms.
	MeanArrival time.Duration

	// Upper bound of the uniform delay before a vehicle asks to enter. Default is 6s.
	MaxApproach time.Duration

	// Upper bound of the uniform time a vehicle spends inside. Default is 3s.
	MaxTransit time.Duration

	// Chance that a vehicle heads north. Default is .5 (50%).
	NorthRatio float64

	// Maximum number of vehicles on the road at once. Zero means unlimited.
	// Not supported with the anti-jam monitor, whose capped vehicles would
	// hold every slot while waiting for opposite traffic that cannot start.
	MaxConcurrent int

	RandomSeed int64

	// Clock used for every delay. Default is the wall clock.
	Clock clock.Clock
}

func DefaultConfig() *Config {
	return &Config{
		Vehicles:    100,
		MeanArrival: 500 * time.Millisecond,
		MaxApproach: 6 * time.Second,
		MaxTransit:  3 * time.Second,
		NorthRatio:  0.5,
		RandomSeed:  time.Now().UnixMilli(),
		Clock:       clock.WallClock,
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Vehicles < 0:
		return errors.NotValidf("vehicle count %d", c.Vehicles)
	case c.MeanArrival < 0:
		return errors.NotValidf("mean arrival %v", c.MeanArrival)
	case c.MaxApproach < 0:
		return errors.NotValidf("max approach %v", c.MaxApproach)
	case c.MaxTransit < 0:
		return errors.NotValidf("max transit %v", c.MaxTransit)
	case c.NorthRatio < 0 || c.NorthRatio > 1:
		return errors.NotValidf("north ratio %v", c.NorthRatio)
	case c.MaxConcurrent < 0:
		return errors.NotValidf("max concurrent %d", c.MaxConcurrent)
	case c.Clock == nil:
		return errors.NotValidf("nil clock")
	}
	return nil
}
