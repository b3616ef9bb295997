package types

// HardwareAddress represents the address of a hardware
// register. The hardware IO are mapped to memory addresses
// 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// IOPage is the base of the I/O page addressed by the fast
	// LDH instructions (0xFF00 + an 8-bit offset).
	IOPage HardwareAddress = 0xFF00

	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register is used to configure the LCD.
	//
	//  Bit 7: LCD Display Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. The lower
	// two bits report the current PPU mode.
	//
	//  Bit 1-0: Mode Flag (0: HBlank, 1: VBlank, 2: OAM Search, 3: Draw)
	STAT HardwareAddress = 0xFF41
	// LY is the address of the LY hardware register. LY indicates
	// the scanline currently being processed (0-153).
	LY HardwareAddress = 0xFF44
	// LYC is the address of the LYC hardware register. The coincidence
	// flag of STAT is set while LY == LYC.
	LYC HardwareAddress = 0xFF45
	// IE is the address of the IE hardware register.
	IE HardwareAddress = 0xFFFF
)

// Memory regions of the 16-bit address space. End addresses are
// inclusive.
const (
	ROMStart  uint16 = 0x0000
	ROMEnd    uint16 = 0x7FFF
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	ERAMStart uint16 = 0xA000
	WRAMStart uint16 = 0xC000
	OAMStart  uint16 = 0xFE00
	OAMEnd    uint16 = 0xFE9F
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
)

// Tile map and tile data bases selected by LCDC.
const (
	TileMap0   uint16 = 0x9800
	TileMap1   uint16 = 0x9C00
	TileData0  uint16 = 0x8800
	TileData1  uint16 = 0x8000
	TileMapLen        = 0x400
)

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)
