// Package display provides the surfaces finished frames are presented
// on, and a registry of the installed display drivers.
package display

import "errors"

// ErrClosed is returned when drawing to a surface that is not open.
var ErrClosed = errors.New("display: surface closed")

// Surface is a platform rendering target. Frames handed to Draw are
// width * height * 3 bytes of 8-bit RGB, row-major.
type Surface interface {
	// Open prepares the surface for frames of the given size.
	Open(width, height int) error
	// Draw presents a finished frame.
	Draw(pixels []byte) error
	// PollEvents drains pending events without blocking. A quit event
	// closes the surface.
	PollEvents()
	// IsOpen reports whether the surface is still accepting frames.
	IsOpen() bool
	// Close releases the surface.
	Close() error
}

// FrameSize returns the size in bytes of an RGB frame.
func FrameSize(width, height int) int {
	return width * height * 3
}
