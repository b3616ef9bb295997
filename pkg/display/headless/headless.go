// Package headless provides a display surface that keeps frames in
// memory instead of presenting them. It is used for batch runs and
// tests.
package headless

import (
	"fmt"

	"github.com/thelolagemann/gblite/pkg/display"
)

// Surface records the frames drawn to it. It closes itself after
// MaxFrames frames when MaxFrames is positive.
type Surface struct {
	MaxFrames int

	width, height int
	open          bool
	frames        int
	last          []byte
}

// New returns a Surface that closes after maxFrames frames, or never when
// maxFrames is 0.
func New(maxFrames int) *Surface {
	return &Surface{MaxFrames: maxFrames}
}

var surface = &Surface{}

func init() {
	display.Install("headless", 0, surface, []display.DriverOption{
		{
			Name:        "frames",
			Default:     0,
			Value:       &surface.MaxFrames,
			Description: "Close the display after this many frames (0 = never)",
			Type:        "int",
		},
	})
}

func (s *Surface) Open(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("headless: invalid size %dx%d", width, height)
	}
	s.width, s.height = width, height
	s.frames = 0
	s.last = make([]byte, display.FrameSize(width, height))
	s.open = true
	return nil
}

func (s *Surface) Draw(pixels []byte) error {
	if !s.open {
		return display.ErrClosed
	}
	if len(pixels) != len(s.last) {
		return fmt.Errorf("headless: expected %d bytes, got %d", len(s.last), len(pixels))
	}
	copy(s.last, pixels)
	s.frames++
	return nil
}

func (s *Surface) PollEvents() {
	if s.MaxFrames > 0 && s.frames >= s.MaxFrames {
		s.open = false
	}
}

func (s *Surface) IsOpen() bool {
	return s.open
}

func (s *Surface) Close() error {
	s.open = false
	return nil
}

// Frames returns the number of frames drawn since the surface was opened.
func (s *Surface) Frames() int {
	return s.frames
}

// Last returns the most recently drawn frame.
func (s *Surface) Last() []byte {
	return s.last
}

// Size returns the size the surface was opened with.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}
