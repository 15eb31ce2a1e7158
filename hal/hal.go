package hal

import (
	"errors"

	"wirecube/wire3d"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrBadSize        = errors.New("hal: framebuffer size must be positive")
)

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

// Surface is the display capability the renderer consumes: clear, draw lines,
// present, and report when the user wants to close.
//
// A Surface is owned by one goroutine; none of its methods are safe for
// concurrent use except PollClose.
type Surface interface {
	Framebuffer() Framebuffer
	PollClose() bool
	Clear(c wire3d.Color)
	DrawLine(p0, p1 wire3d.Point2, c wire3d.Color)

	// Present makes the frame visible. It may block until the next refresh.
	Present() error
}

// Host provides the only contact point between the renderer and the outside
// world.
type Host interface {
	Logger() Logger
	Surface() Surface
}
