//go:build !test

// Package sdl presents frames in an SDL2 window.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/thelolagemann/gblite/pkg/display"
	"github.com/thelolagemann/gblite/pkg/log"
	"github.com/thelolagemann/gblite/pkg/utils"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL: window and renderer calls must happen on the main thread
	runtime.LockOSThread()

	display.Install("sdl", 2, driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     4,
			Value:       &driver.scale,
			Type:        "int",
			Description: "Scale the window by this factor",
		},
	})
}

var driver = &sdlDriver{Log: log.New()}

// sdlDriver implements display.Surface with an SDL2 window and a
// streaming RGB24 texture.
type sdlDriver struct {
	Log   log.Logger
	scale int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width, height int
	last          []byte
	open          bool
}

func (s *sdlDriver) Open(width, height int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}

	scale := utils.Clamp(1, s.scale, 16)
	window, err := sdl.CreateWindow("gblite", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width*scale), int32(height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl: creating window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("sdl: creating renderer: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return fmt.Errorf("sdl: creating texture: %w", err)
	}

	s.window, s.renderer, s.texture = window, renderer, texture
	s.width, s.height = width, height
	s.last = make([]byte, display.FrameSize(width, height))
	s.open = true
	return nil
}

func (s *sdlDriver) Draw(pixels []byte) error {
	if !s.open {
		return display.ErrClosed
	}

	dst, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return err
	}
	// the texture pitch may be padded past width*3
	row := s.width * 3
	for y := 0; y < s.height; y++ {
		copy(dst[y*pitch:y*pitch+row], pixels[y*row:(y+1)*row])
	}
	s.texture.Unlock()
	copy(s.last, pixels)

	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return err
	}
	s.renderer.Present()
	return nil
}

func (s *sdlDriver) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.open = false
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				s.open = false
			case sdl.K_F12:
				s.screenshot()
			}
		}
	}
}

// screenshot copies the last frame to the clipboard.
func (s *sdlDriver) screenshot() {
	img, err := utils.FrameImage(s.last, s.width, s.height)
	if err != nil {
		s.Log.Errorf("screenshot: %v", err)
		return
	}
	if err := utils.CopyImage(utils.ScaleImage(img, s.scale)); err != nil {
		s.Log.Errorf("copying screenshot to clipboard: %v", err)
		return
	}
	s.Log.Infof("copied screenshot to clipboard")
}

func (s *sdlDriver) IsOpen() bool {
	return s.open
}

func (s *sdlDriver) Close() error {
	s.open = false
	if s.texture != nil {
		if err := s.texture.Destroy(); err != nil {
			return err
		}
		s.texture = nil
	}
	if s.renderer != nil {
		if err := s.renderer.Destroy(); err != nil {
			return err
		}
		s.renderer = nil
	}
	if s.window != nil {
		if err := s.window.Destroy(); err != nil {
			return err
		}
		s.window = nil
	}
	sdl.Quit()
	return nil
}
