// Package lcd decodes the LCD control and status registers.
package lcd

import (
	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/utils"
)

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit.
	Enabled bool
	// WindowTileMapAddress is the start address of the window tile map,
	// selected by bit 6.
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// TileDataAddress is the start address of the BG & Window tile data,
	// selected by bit 4. Tiles at 0x8800 are addressed with signed indices.
	TileDataAddress uint16
	// BackgroundTileMapAddress is the start address of the background tile
	// map, selected by bit 3.
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite, 8 or 16 pixels.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit.
	BackgroundEnabled bool
}

// NewController returns a new LCD controller decoded from a zero LCDC.
func NewController() *Controller {
	c := &Controller{}
	c.Write(0)
	return c
}

// Write decodes value into the LCD controller.
func (c *Controller) Write(value uint8) {
	c.Enabled = utils.TestBit(value, 7)
	c.WindowTileMapAddress = types.TileMap0
	if utils.TestBit(value, 6) {
		c.WindowTileMapAddress = types.TileMap1
	}
	c.WindowEnabled = utils.TestBit(value, 5)
	c.TileDataAddress = types.TileData0
	if utils.TestBit(value, 4) {
		c.TileDataAddress = types.TileData1
	}
	c.BackgroundTileMapAddress = types.TileMap0
	if utils.TestBit(value, 3) {
		c.BackgroundTileMapAddress = types.TileMap1
	}
	c.SpriteSize = 8
	if utils.TestBit(value, 2) {
		c.SpriteSize = 16
	}
	c.SpriteEnabled = utils.TestBit(value, 1)
	c.BackgroundEnabled = utils.TestBit(value, 0)
}

// Read encodes the LCD controller.
func (c *Controller) Read() uint8 {
	var value uint8
	if c.Enabled {
		value |= types.Bit7
	}
	if c.WindowTileMapAddress == types.TileMap1 {
		value |= types.Bit6
	}
	if c.WindowEnabled {
		value |= types.Bit5
	}
	if c.TileDataAddress == types.TileData1 {
		value |= types.Bit4
	}
	if c.BackgroundTileMapAddress == types.TileMap1 {
		value |= types.Bit3
	}
	if c.SpriteSize == 16 {
		value |= types.Bit2
	}
	if c.SpriteEnabled {
		value |= types.Bit1
	}
	if c.BackgroundEnabled {
		value |= types.Bit0
	}
	return value
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == types.TileData0
}
