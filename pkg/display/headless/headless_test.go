package headless

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gblite/pkg/display"
)

func TestSurface(t *testing.T) {
	s := New(2)
	if err := s.Draw([]byte{0}); !errors.Is(err, display.ErrClosed) {
		t.Errorf("expected ErrClosed before Open, got %v", err)
	}
	if err := s.Open(0, 144); err == nil {
		t.Errorf("expected an error for an invalid size")
	}
	if err := s.Open(2, 1); err != nil {
		t.Fatal(err)
	}

	frame := []byte{1, 2, 3, 4, 5, 6}
	for i := 0; i < 2; i++ {
		s.PollEvents()
		if !s.IsOpen() {
			t.Fatalf("expected surface to be open after %d frames", i)
		}
		if err := s.Draw(frame); err != nil {
			t.Fatal(err)
		}
	}
	if s.Frames() != 2 || s.Last()[5] != 6 {
		t.Errorf("expected 2 recorded frames, got %d", s.Frames())
	}
	if err := s.Draw(frame[:3]); err == nil {
		t.Errorf("expected an error for a short frame")
	}

	s.PollEvents()
	if s.IsOpen() {
		t.Errorf("expected surface to close after 2 frames")
	}
}

func TestInstalled(t *testing.T) {
	if display.GetDriver("headless") == nil {
		t.Errorf("expected headless driver to be installed")
	}
}
