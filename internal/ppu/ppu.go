// Package ppu implements the video timing state machine. One Tick
// advances the PPU by one dot, a dot being one machine cycle.
package ppu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/mmu"
	"github.com/thelolagemann/gblite/internal/ppu/lcd"
	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/display"
	"github.com/thelolagemann/gblite/pkg/log"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// Scanline and dot boundaries of the timing state machine.
const (
	oamSearchEnd   = 19
	drawEnd        = 62
	lineEnd        = 113
	lastVisibleLY  = ScreenHeight - 1
	lastScanlineLY = 153
)

// Mode is the state of the PPU.
type Mode uint8

const (
	// Off suspends the PPU, Tick has no effect.
	Off Mode = iota
	// HBlank is the horizontal blanking period at the end of a visible line.
	HBlank
	// VBlank is the vertical blanking period, scanlines 144 - 153.
	VBlank
	// OAMSearch is the sprite search at the start of a frame.
	OAMSearch
	// Draw is the pixel transfer period.
	Draw
)

var modeNames = [...]string{"Off", "HBlank", "VBlank", "OAMSearch", "Draw"}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// STAT returns the mode as reported in the lower bits of the STAT
// register. Off reports as HBlank.
func (m Mode) STAT() lcd.Mode {
	switch m {
	case VBlank:
		return lcd.VBlank
	case OAMSearch:
		return lcd.OAM
	case Draw:
		return lcd.VRAM
	}
	return lcd.HBlank
}

// Bus is the memory access used by the PPU.
type Bus interface {
	Get(address uint16, client mmu.Client) uint8
	Set(address uint16, value uint8, client mmu.Client)
}

// PPU is the video timing state machine. It produces a frame when it is
// started and each time it enters VBlank, and hands it to the surface.
type PPU struct {
	Log log.Logger

	bus     Bus
	surface display.Surface

	mode Mode
	ly   uint8 // current scanline (0-153)
	dot  uint8 // current dot within the state (0-113)

	lcd    *lcd.Controller
	status lcd.Status

	frame  []byte
	frames uint64
}

// New returns a PPU reading from bus and presenting frames on surface.
// The PPU starts in the Off mode.
func New(bus Bus, surface display.Surface) *PPU {
	return &PPU{
		Log:     log.NewNullLogger(),
		bus:     bus,
		surface: surface,
		lcd:     lcd.NewController(),
		frame:   make([]byte, display.FrameSize(ScreenWidth, ScreenHeight)),
	}
}

// Tick advances the PPU by a single dot.
func (p *PPU) Tick() {
	switch p.mode {
	case Off:
		return
	case OAMSearch:
		if p.dot == oamSearchEnd {
			p.enter(Draw)
			return
		}
	case Draw:
		if p.dot == drawEnd {
			p.enter(HBlank)
			return
		}
	case HBlank:
		if p.dot == lineEnd {
			p.ly++
			if p.ly > lastVisibleLY {
				p.enter(VBlank)
				p.render()
			} else {
				p.enter(Draw)
			}
			return
		}
	case VBlank:
		if p.dot == lineEnd {
			if p.ly == lastScanlineLY {
				p.ly = 0
				p.readControl()
				p.enter(OAMSearch)
			} else {
				p.ly++
				p.dot = 0
				p.publish()
			}
			return
		}
	}
	p.dot++
}

// Step advances the PPU by the given number of dots.
func (p *PPU) Step(dots int) {
	for i := 0; i < dots && p.mode != Off; i++ {
		p.Tick()
	}
}

// Start resets the PPU to the first dot of a frame and produces a frame.
func (p *PPU) Start() {
	p.mode = OAMSearch
	p.dot = 0
	p.ly = 0
	p.readControl()
	p.publish()
	p.render()
}

// Stop suspends the PPU.
func (p *PPU) Stop() {
	p.mode = Off
	p.publish()
}

// IsRunning reports whether the PPU has been started and not stopped.
func (p *PPU) IsRunning() bool {
	return p.mode != Off
}

// Mode returns the current mode.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Dot returns the dot counter within the current state.
func (p *PPU) Dot() uint8 {
	return p.dot
}

// Frames returns the number of frames handed to the surface.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Frame returns the most recently rendered frame.
func (p *PPU) Frame() []byte {
	return p.frame
}

// BackgroundMap returns the start address of the background tile map.
func (p *PPU) BackgroundMap() uint16 {
	return p.lcd.BackgroundTileMapAddress
}

// WindowMap returns the start address of the window tile map.
func (p *PPU) WindowMap() uint16 {
	return p.lcd.WindowTileMapAddress
}

// TileData returns the start address of the background and window tile
// data.
func (p *PPU) TileData() uint16 {
	return p.lcd.TileDataAddress
}

func (p *PPU) enter(mode Mode) {
	p.mode = mode
	p.dot = 0
	p.publish()
}

// readControl decodes LCDC into the region offsets. It is read at the
// start of each frame.
func (p *PPU) readControl() {
	p.lcd.Write(p.bus.Get(types.LCDC, mmu.ClientPPU))
}

// publish writes LY and the STAT mode and coincidence bits to the bus.
func (p *PPU) publish() {
	p.status.Write(p.bus.Get(types.STAT, mmu.ClientPPU))
	p.status.Mode = p.mode.STAT()
	p.status.Coincidence = p.ly == p.bus.Get(types.LYC, mmu.ClientPPU)

	p.bus.Set(types.LY, p.ly, mmu.ClientPPU)
	p.bus.Set(types.STAT, p.status.Read(), mmu.ClientPPU)
}
