package lcd

import (
	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/utils"
)

// Status represents the LCD status register (0xFF41):
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3)            (Read Only)
//
// Only the enable bits are written by software, the PPU owns the rest.
type Status struct {
	CoincidenceInterrupt bool
	OAMInterrupt         bool
	VBlankInterrupt      bool
	HBlankInterrupt      bool
	Coincidence          bool
	Mode                 Mode
}

// Write decodes the writable bits of value into the status.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = utils.TestBit(value, 6)
	s.OAMInterrupt = utils.TestBit(value, 5)
	s.VBlankInterrupt = utils.TestBit(value, 4)
	s.HBlankInterrupt = utils.TestBit(value, 3)
}

// Read encodes the status. Bit 7 always reads as set.
func (s *Status) Read() uint8 {
	value := types.Bit7 | s.Mode&0b11
	if s.CoincidenceInterrupt {
		value |= types.Bit6
	}
	if s.OAMInterrupt {
		value |= types.Bit5
	}
	if s.VBlankInterrupt {
		value |= types.Bit4
	}
	if s.HBlankInterrupt {
		value |= types.Bit3
	}
	if s.Coincidence {
		value |= types.Bit2
	}
	return value
}
