package utils

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// FrameImage wraps an RGB frame (3 bytes per pixel, row-major) in an
// image.RGBA.
func FrameImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*3 {
		return nil, fmt.Errorf("frame of %d bytes does not match %dx%d", len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		copy(img.Pix[i*4:i*4+3], pixels[i*3:i*3+3])
		img.Pix[i*4+3] = 0xFF
	}
	return img, nil
}

// ScaleImage scales img by factor using nearest neighbour sampling, which
// keeps pixel edges sharp.
func ScaleImage(img image.Image, factor int) *image.RGBA {
	factor = Clamp(1, factor, 16)
	bounds := img.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return scaled
}
