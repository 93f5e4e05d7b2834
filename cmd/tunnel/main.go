// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command tunnel simulates vehicles crossing a single-lane tunnel under one of
// the admission policies of the tunnel package.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/tunnel"
	"github.com/ava-labs/tunnel/driver"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	monitor   tunnel.Kind
	maxStreak int
	driver    *driver.Config
	logLevel  zapcore.Level
}

func parseFlags(args []string) (*options, error) {
	opts := &options{driver: driver.DefaultConfig()}

	var (
		monitor  string
		logLevel string
	)

	fs := gnuflag.NewFlagSet("tunnel", gnuflag.ContinueOnError)
	fs.StringVar(&monitor, "monitor", tunnel.Basic.String(), "admission policy: basic, anti-jam, waiting-anti-jam or cheating")
	fs.IntVar(&opts.maxStreak, "max-streak", tunnel.DefaultMaxStreak, "consecutive same-direction admissions allowed by the anti-jam policies")
	fs.IntVar(&opts.driver.Vehicles, "vehicles", opts.driver.Vehicles, "number of vehicles to launch")
	fs.DurationVar(&opts.driver.MeanArrival, "mean-arrival", opts.driver.MeanArrival, "mean time between two launches")
	fs.DurationVar(&opts.driver.MaxApproach, "max-approach", opts.driver.MaxApproach, "maximum time a vehicle drives before asking to enter")
	fs.DurationVar(&opts.driver.MaxTransit, "max-transit", opts.driver.MaxTransit, "maximum time a vehicle spends inside")
	fs.Float64Var(&opts.driver.NorthRatio, "north-ratio", opts.driver.NorthRatio, "chance that a vehicle heads north")
	fs.IntVar(&opts.driver.MaxConcurrent, "max-concurrent", opts.driver.MaxConcurrent, "maximum vehicles on the road at once, 0 for unlimited")
	fs.Int64Var(&opts.driver.RandomSeed, "seed", opts.driver.RandomSeed, "random seed")
	fs.StringVar(&logLevel, "log-level", zapcore.InfoLevel.String(), "debug, info, warn or error")

	if err := fs.Parse(true, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments %q", fs.Args())
	}

	kind, err := tunnel.ParseKind(monitor)
	if err != nil {
		return nil, errors.Trace(err)
	}
	opts.monitor = kind

	opts.logLevel, err = zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.NotValidf("log level %q", logLevel)
	}

	return opts, nil
}

// zapLogger adds the trace and verbose levels, both logged at debug.
type zapLogger struct {
	*zap.Logger
}

func (l zapLogger) Trace(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

func (l zapLogger) Verbo(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

func newLogger(level zapcore.Level) (tunnel.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]")
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Annotate(err, "building logger")
	}
	return zapLogger{Logger: logger}, nil
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}

	config := tunnel.DefaultConfig(logger)
	config.Kind = opts.monitor
	config.MaxStreak = opts.maxStreak
	monitor, err := tunnel.New(config)
	if err != nil {
		return err
	}

	sim, err := driver.New(opts.driver, monitor, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := sim.Run(ctx)
	logger.Info("Tunnel closed",
		zap.Stringer("monitor", opts.monitor),
		zap.Int("northbound", stats.Completed[tunnel.North]),
		zap.Int("southbound", stats.Completed[tunnel.South]),
		zap.Int("turned back", stats.TurnedBack[tunnel.North]+stats.TurnedBack[tunnel.South]),
		zap.Duration("elapsed", time.Since(start)))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
