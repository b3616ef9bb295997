package cpu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/utils"
)

// loadRegisterToHardware loads the value of the A Register into the I/O
// page at the given offset.
//
//	LD (0xFF00 + n), A
//	n = C, 8 bit immediate value
func (c *CPU) loadRegisterToHardware(offset uint8) {
	c.writeByte(types.IOPage+uint16(offset), c.A)
}

// loadHardwareToRegister loads the value in the I/O page at the given
// offset into the A Register.
//
//	LD A, (0xFF00 + n)
//	n = C, 8 bit immediate value
func (c *CPU) loadHardwareToRegister(offset uint8) {
	c.A = c.readByte(types.IOPage + uint16(offset))
}

// loadHLIncDec stores or loads A through HL, then steps HL by delta.
//
//	LD (HL+), A
//	LD (HL-), A
//	LD A, (HL+)
//	LD A, (HL-)
func (c *CPU) loadHLIncDec(store bool, delta uint16) {
	if store {
		c.writeByte(c.HL.Uint16(), c.A)
	} else {
		c.A = c.readByte(c.HL.Uint16())
	}
	c.HL.SetUint16(c.HL.Uint16() + delta)
}

func init() {
	generateLoadRegisterInstructions()

	for i, reg := range []types.Reg16{types.PairBC, types.PairDE, types.PairHL, types.RegSP} {
		reg := reg
		// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
		DefineInstruction(0x01+uint8(i)*0x10, fmt.Sprintf("LD %s, d16", reg), func(c *CPU, operands []byte) {
			c.Set16(reg, utils.JoinUint16(operands[0], operands[1]))
		}, Length(3), Cycles(3))
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, _ []byte) { c.writeByte(c.BC.Uint16(), c.A) }, Cycles(2))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, _ []byte) { c.writeByte(c.DE.Uint16(), c.A) }, Cycles(2))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, _ []byte) { c.A = c.readByte(c.BC.Uint16()) }, Cycles(2))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, _ []byte) { c.A = c.readByte(c.DE.Uint16()) }, Cycles(2))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, _ []byte) { c.loadHLIncDec(true, 1) }, Cycles(2))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, _ []byte) { c.loadHLIncDec(true, 0xFFFF) }, Cycles(2))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, _ []byte) { c.loadHLIncDec(false, 1) }, Cycles(2))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, _ []byte) { c.loadHLIncDec(false, 0xFFFF) }, Cycles(2))

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []byte) {
		address := utils.JoinUint16(operands[0], operands[1])
		low, high := utils.SplitUint16(c.SP)
		c.writeByte(address, low)
		c.writeByte(address+1, high)
	}, Length(3), Cycles(5))

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []byte) {
		c.loadRegisterToHardware(operands[0])
	}, Length(2), Cycles(3))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []byte) {
		c.loadHardwareToRegister(operands[0])
	}, Length(2), Cycles(3))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []byte) { c.loadRegisterToHardware(c.C) }, Cycles(2))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []byte) { c.loadHardwareToRegister(c.C) }, Cycles(2))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []byte) {
		c.writeByte(utils.JoinUint16(operands[0], operands[1]), c.A)
	}, Length(3), Cycles(4))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []byte) {
		c.A = c.readByte(utils.JoinUint16(operands[0], operands[1]))
	}, Length(3), Cycles(4))

	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, operands []byte) {
		c.HL.SetUint16(c.addSPSigned(operands[0]))
	}, Length(2), Cycles(3))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []byte) { c.SP = c.HL.Uint16() }, Cycles(2))
}

// generateLoadRegisterInstructions generates the 8-bit register loads
// LD r, r' (0x40 - 0x7F, except 0x76 HALT) and LD r, d8.
func generateLoadRegisterInstructions() {
	for dst := types.Reg8(0); dst < 8; dst++ {
		dst := dst

		// 0x06, 0x0E, ..., 0x3E - LD r, d8
		immediateCycles := uint8(2)
		if dst == regHL {
			immediateCycles = 3
		}
		DefineInstruction(0x06+uint8(dst)*8, fmt.Sprintf("LD %s, d8", dst), func(c *CPU, operands []byte) {
			c.set8(dst, operands[0])
		}, Length(2), Cycles(immediateCycles))

		for src := types.Reg8(0); src < 8; src++ {
			if dst == regHL && src == regHL {
				continue // HALT
			}
			src := src

			cycles := uint8(1)
			if dst == regHL || src == regHL {
				cycles = 2
			}
			DefineInstruction(0x40+uint8(dst)*8+uint8(src), fmt.Sprintf("LD %s, %s", dst, src), func(c *CPU, _ []byte) {
				c.set8(dst, c.get8(src))
			}, Cycles(cycles))
		}
	}
}
