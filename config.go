// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
)

// Kind selects an admission policy.
type Kind uint8

const (
	Basic Kind = iota
	AntiJam
	WaitingAntiJam
	Cheating
)

var Kinds = []Kind{Basic, AntiJam, WaitingAntiJam, Cheating}

func (k Kind) String() string {
	switch k {
	case Basic:
		return "basic"
	case AntiJam:
		return "anti-jam"
	case WaitingAntiJam:
		return "waiting-anti-jam"
	case Cheating:
		return "cheating"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errors.NotValidf("monitor kind %q", s)
}

type Config struct {
	Kind Kind
	// MaxStreak is the number of consecutive same-direction admissions
	// allowed before the opposite direction gets a turn. Only used by the
	// anti-jam policies. Default is 5.
	MaxStreak int
	Logger    Logger
}

func DefaultConfig(logger Logger) Config {
	return Config{
		Kind:      Basic,
		MaxStreak: DefaultMaxStreak,
		Logger:    logger,
	}
}

func (c Config) Validate() error {
	if c.Logger == nil {
		return errors.NotValidf("nil logger")
	}
	switch c.Kind {
	case Basic, Cheating:
	case AntiJam, WaitingAntiJam:
		if c.MaxStreak < 1 {
			return errors.NotValidf("max streak %d for %s monitor", c.MaxStreak, c.Kind)
		}
	default:
		return errors.NotValidf("monitor kind %d", uint8(c.Kind))
	}
	return nil
}

// New creates the monitor selected by the config.
func New(c Config) (Monitor, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Annotate(err, "creating monitor")
	}

	switch c.Kind {
	case AntiJam:
		return NewAntiJamMonitor(c.Logger, c.MaxStreak), nil
	case WaitingAntiJam:
		return NewWaitingAntiJamMonitor(c.Logger, c.MaxStreak), nil
	case Cheating:
		return NewCheatingMonitor(c.Logger), nil
	default:
		return NewBasicMonitor(c.Logger), nil
	}
}
