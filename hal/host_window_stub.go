//go:build !cgo

package hal

import (
	"sparkcalc/internal/errors"

	"go.uber.org/zap"
)

// WindowOptions configures the desktop window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int
	Logger *zap.Logger
}

func RunWindow(_ WindowOptions, _ func(h HAL) func() error) error {
	return errors.WithHint(ErrNotImplemented, "window mode requires cgo (build/run with CGO_ENABLED=1)")
}
