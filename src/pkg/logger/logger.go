// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package logger implements a log/slog based logger for repogen.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
)

var defaultLogger atomic.Pointer[slog.Logger]

// init sets a logger with default config when the package is initialized.
func init() {
	l, _ := New(ConfigDefault()) //nolint:errcheck
	SetDefault(l)
}

// Level declares each supported log level. These are 1:1 what log/slog supports by default. Info is the default level.
type Level int

// Store names for Levels
var (
	Debug = Level(slog.LevelDebug) // -4
	Info  = Level(slog.LevelInfo)  // 0
	Warn  = Level(slog.LevelWarn)  // 4
	Error = Level(slog.LevelError) // 8
)

// String returns the string representation of the Level.
func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// validLevels is a set that provides an ergonomic way to check if a level is a member of the set.
var validLevels = map[Level]bool{
	Debug: true,
	Info:  true,
	Warn:  true,
	Error: true,
}

// strLevels maps a string to its Level.
var strLevels = map[string]Level{
	"debug": Debug,
	"info":  Info,
	"warn":  Warn,
	"error": Error,
}

// ParseLevel takes a string representation of a Level, ensures it exists, and then converts it into a Level.
func ParseLevel(s string) (Level, error) {
	k := strings.ToLower(s)
	l, ok := strLevels[k]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s", k)
	}
	return l, nil
}

// Format declares the kind of logging handler to use.
type Format string

// ToLower takes a Format string and converts it to lowercase for case-agnostic validation.
func (f Format) ToLower() Format {
	return Format(strings.ToLower(string(f)))
}

var (
	// FormatJSON uses the standard slog JSONHandler
	FormatJSON Format = "json"
	// FormatConsole uses console-slog to provide prettier colorful messages
	FormatConsole Format = "console"
	// FormatDev uses a verbose and pretty printing devslog handler
	FormatDev Format = "dev"
	// FormatNone discards log writes
	FormatNone Format = "none"
)

// ParseFormat takes a string representation of a Format and validates it.
func ParseFormat(s string) (Format, error) {
	f := Format(s).ToLower()
	switch f {
	case FormatJSON, FormatConsole, FormatDev, FormatNone:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format: %s", s)
	}
}

// Destination declares an io.Writer to send logs to.
type Destination io.Writer

var (
	// DestinationDefault points to Stderr
	DestinationDefault Destination = os.Stderr
	// DestinationNone discards logs as they are received
	DestinationNone Destination = io.Discard
)

// Color is a type that represents whether or not to use color in the logger.
type Color bool

// Config is configuration for a logger.
type Config struct {
	// Level sets the log level. An empty value corresponds to Info aka 0.
	Level
	Format
	Destination
	Color
}

// ConfigDefault returns a Config with console formatting at Info level writing to Stderr.
func ConfigDefault() Config {
	return Config{
		Level:       Info,
		Format:      FormatConsole,
		Destination: DestinationDefault,
		Color:       true,
	}
}

// New takes a Config and returns a validated logger.
func New(cfg Config) (*slog.Logger, error) {
	if cfg.Destination == nil {
		cfg.Destination = DestinationDefault
	}

	if !validLevels[cfg.Level] {
		return nil, fmt.Errorf("unsupported log level: %d", cfg.Level)
	}

	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format.ToLower() {
	case FormatConsole:
		handler = console.NewHandler(cfg.Destination, &console.HandlerOptions{
			Level:   slog.Level(cfg.Level),
			NoColor: !bool(cfg.Color),
		})
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Destination, &opts)
	case FormatDev:
		opts.AddSource = true
		handler = devslog.NewHandler(cfg.Destination, &devslog.Options{
			HandlerOptions:  &opts,
			NewLineAfterLog: true,
			NoColor:         !bool(cfg.Color),
		})
	case "", FormatNone:
		handler = slog.NewTextHandler(DestinationNone, &slog.HandlerOptions{})
	default:
		return nil, fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	return slog.New(handler), nil
}

// ctxKey provides a location to store a logger in a context.
type ctxKey struct{}

// defaultCtxKey provides a key instance to get a logger from context
var defaultCtxKey = ctxKey{}

// WithContext takes a context.Context and a *slog.Logger, storing it on the key
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, defaultCtxKey, logger)
}

// From takes a context and reads out a *slog.Logger. If From does not find a value it will return a discarding logger.
func From(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return newDiscard()
	}
	log := ctx.Value(defaultCtxKey)
	if log == nil {
		return newDiscard()
	}
	switch l := log.(type) {
	case *slog.Logger:
		return l
	default:
		return newDiscard()
	}
}

// newDiscard returns a logger without any settings that goes to io.Discard.
func newDiscard() *slog.Logger {
	h := slog.NewTextHandler(DestinationNone, &slog.HandlerOptions{})
	return slog.New(h)
}

// Default retrieves a logger from the package default. This is intended for use when a context cannot be provided.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault takes a logger and sets it as the package default.
func SetDefault(l *slog.Logger) {
	defaultLogger.Store(l)
}
