package hal

import (
	"sparkcalc/internal/errors"

	"go.uber.org/zap"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// PointerEvent is a primary-button (or touch) edge in framebuffer pixels.
type PointerEvent struct {
	X     int
	Y     int
	Press bool
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// Time provides the base tick counter.
//
// The tick duration is platform-defined (1ms on host); it only moves forward.
type Time interface {
	Now() uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() *zap.Logger
	Display() Display
	Input() Input
	Time() Time
}
