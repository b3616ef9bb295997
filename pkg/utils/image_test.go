package utils

import (
	"image/color"
	"testing"
)

func TestFrameImage(t *testing.T) {
	pixels := []byte{
		0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00,
		0x00, 0x00, 0xFF, 0x10, 0x20, 0x30,
	}
	img, err := FrameImage(pixels, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	expected := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}
	if c := img.RGBAAt(1, 1); c != expected {
		t.Errorf("expected %v, got %v", expected, c)
	}
	if c := img.RGBAAt(1, 0); c.G != 0xFF {
		t.Errorf("expected green at (1, 0), got %v", c)
	}

	if _, err := FrameImage(pixels[:6], 2, 2); err == nil {
		t.Errorf("expected an error for a short frame")
	}
}

func TestScaleImage(t *testing.T) {
	img, _ := FrameImage([]byte{0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00}, 2, 1)

	scaled := ScaleImage(img, 3)
	if b := scaled.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("expected 6x3, got %dx%d", b.Dx(), b.Dy())
	}
	if c := scaled.RGBAAt(2, 2); c.R != 0xFF {
		t.Errorf("expected white at (2, 2), got %v", c)
	}
	if c := scaled.RGBAAt(3, 0); c.R != 0x00 {
		t.Errorf("expected black at (3, 0), got %v", c)
	}

	// factors below 1 are clamped
	if b := ScaleImage(img, 0).Bounds(); b.Dx() != 2 {
		t.Errorf("expected unscaled width 2, got %d", b.Dx())
	}
}
