// Package logger builds the process-wide zap logger.
package logger

import (
	"os"
	"strings"

	"sparkcalc/internal/errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names so every component logs the same keys.
const (
	FieldComponent = "component"
	FieldLabel     = "label"
	FieldDisplay   = "display"
	FieldOperator  = "operator"
	FieldOperand   = "operand"
	FieldAwaiting  = "awaiting"
	FieldResult    = "send_result"
	FieldKind      = "kind"
	FieldTask      = "task"
	FieldTick      = "tick"
	FieldX         = "x"
	FieldY         = "y"
)

// ErrUnknownLevel is returned for level names zap does not recognise.
var ErrUnknownLevel = errors.New("unknown log level")

// Options selects the encoder, level and sink.
type Options struct {
	Level string
	JSON  bool

	// Output defaults to stderr so stdout stays free for headless results.
	Output zapcore.WriteSyncer
}

// ParseLevel maps debug|info|warn|error to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, errors.WithHint(
		errors.Wrapf(ErrUnknownLevel, "%q", s),
		"use one of debug, info, warn, error",
	)
}

// New returns a console or JSON logger.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(lvl))), nil
}

// Component returns a named child logger tagged with the component field.
func Component(l *zap.Logger, name string) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return l.Named(name).With(zap.String(FieldComponent, name))
}
