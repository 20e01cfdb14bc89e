// Package logging builds the zap loggers used across featurecompare.
//
// Loggers are injected and usually named, e.g. logger.Named("legacy").
// Tests should use [Test] or [TestObserved]; [New] is reserved for the CLI.
package logging

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Supported values for [Config.Format].
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes logger construction parameters.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	// Empty means info.
	Level string

	// Format is "console" or "json". Empty means console.
	Format string
}

// New returns a logger writing to stderr for cfg.
func New(cfg Config) (*zap.Logger, error) {
	return NewWith(cfg, func(*zap.Config) {})
}

// NewWith returns a logger for cfg after applying cfgFn to the underlying
// [zap.Config]. Use it to redirect output paths.
func NewWith(cfg Config, cfgFn func(*zap.Config)) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = FormatConsole
	}

	zc := zap.NewProductionConfig()
	switch format {
	case FormatJSON:
	case FormatConsole:
		zc.Encoding = FormatConsole
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.Sampling = nil
	cfgFn(&zc)

	return zc.Build()
}

// ParseLevel converts a level name into a zapcore level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// Test returns a logger that writes through tb at debug level.
func Test(tb testing.TB) *zap.Logger {
	tb.Helper()
	return zaptest.NewLogger(tb, zaptest.Level(zapcore.DebugLevel))
}

// TestObserved returns a test logger for tb that also records every entry
// at or above lvl.
func TestObserved(tb testing.TB, lvl zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())), logs
}
