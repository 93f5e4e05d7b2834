// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutil

import (
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestLogger satisfies the tunnel Logger interface on top of zap.
type TestLogger struct {
	*zap.Logger
	traceVerboseLogger *zap.Logger
	level              zap.AtomicLevel
}

// Intercept calls hook for every entry written at or above the logger's level.
func (t *TestLogger) Intercept(hook func(entry zapcore.Entry) error) {
	t.Logger = t.Logger.WithOptions(zap.Hooks(hook))
	t.traceVerboseLogger = t.traceVerboseLogger.WithOptions(zap.Hooks(hook))
}

func (t *TestLogger) Silence() {
	t.level.SetLevel(zapcore.FatalLevel)
}

// SetLevel changes the level of the logger and of every logger derived from it.
func (t *TestLogger) SetLevel(level zapcore.Level) {
	t.level.SetLevel(level)
}

func (tl *TestLogger) Trace(msg string, fields ...zap.Field) {
	tl.traceVerboseLogger.Log(zapcore.DebugLevel, msg, fields...)
}

func (tl *TestLogger) Verbo(msg string, fields ...zap.Field) {
	tl.traceVerboseLogger.Log(zapcore.DebugLevel, msg, fields...)
}

// level reads LOG_LEVEL, defaulting to info so saturation tests stay readable.
func level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func MakeLogger(t *testing.T) *TestLogger {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	config.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(strings.ToUpper(l.String()))
	}
	config.EncodeTime = zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]")
	config.ConsoleSeparator = " "
	encoder := zapcore.NewConsoleEncoder(config)

	atomicLevel := zap.NewAtomicLevelAt(level())
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), atomicLevel)

	logger := zap.New(core, zap.AddCaller()).With(zap.String("test", t.Name()))
	traceVerboseLogger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(zap.String("test", t.Name()))

	return &TestLogger{Logger: logger, traceVerboseLogger: traceVerboseLogger, level: atomicLevel}
}
