package cpu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/types"
)

// aluOperations are the accumulator operations in the order of their
// encoding, 0x80 - 0xBF for register operands and 0xC6 - 0xFE for
// immediate operands.
var aluOperations = [8]struct {
	name string
	fn   func(*CPU, uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func init() {
	generateALUInstructions()
	generateIncDecInstructions()

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, operands []byte) {
		c.SP = c.addSPSigned(operands[0])
	}, Length(2), Cycles(4))

	DefineInstruction(0x07, "RLCA", func(c *CPU, _ []byte) {
		c.A = c.rotateLeftCarry(c.A)
		c.F &^= 1 << FlagZero
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU, _ []byte) {
		c.A = c.rotateRightCarry(c.A)
		c.F &^= 1 << FlagZero
	})
	DefineInstruction(0x17, "RLA", func(c *CPU, _ []byte) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.F &^= 1 << FlagZero
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU, _ []byte) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.F &^= 1 << FlagZero
	})
}

// generateALUInstructions generates the accumulator operations for each
// register operand, (HL) and the immediate operand.
func generateALUInstructions() {
	for op := uint8(0); op < 8; op++ {
		operation := aluOperations[op]

		for src := types.Reg8(0); src < 8; src++ {
			src := src
			cycles := uint8(1)
			if src == regHL {
				cycles = 2
			}
			DefineInstruction(0x80+op*8+uint8(src), fmt.Sprintf("%s %s", operation.name, src), func(c *CPU, _ []byte) {
				operation.fn(c, c.get8(src))
			}, Cycles(cycles))
		}

		DefineInstruction(0xC6+op*8, operation.name+" d8", func(c *CPU, operands []byte) {
			operation.fn(c, operands[0])
		}, Length(2), Cycles(2))
	}
}

// generateIncDecInstructions generates the 8-bit and 16-bit increment and
// decrement instructions, and ADD HL, rr.
func generateIncDecInstructions() {
	for reg := types.Reg8(0); reg < 8; reg++ {
		reg := reg
		cycles := uint8(1)
		if reg == regHL {
			cycles = 3
		}
		// 0x04, 0x0C, ..., 0x3C - INC r
		DefineInstruction(0x04+uint8(reg)*8, fmt.Sprintf("INC %s", reg), func(c *CPU, _ []byte) {
			c.set8(reg, c.increment(c.get8(reg)))
		}, Cycles(cycles))
		// 0x05, 0x0D, ..., 0x3D - DEC r
		DefineInstruction(0x05+uint8(reg)*8, fmt.Sprintf("DEC %s", reg), func(c *CPU, _ []byte) {
			c.set8(reg, c.decrement(c.get8(reg)))
		}, Cycles(cycles))
	}

	for i, reg := range []types.Reg16{types.PairBC, types.PairDE, types.PairHL, types.RegSP} {
		reg := reg
		base := uint8(i) * 0x10
		DefineInstruction(0x03+base, fmt.Sprintf("INC %s", reg), func(c *CPU, _ []byte) {
			c.Add16(reg, 1)
		}, Cycles(2))
		DefineInstruction(0x0B+base, fmt.Sprintf("DEC %s", reg), func(c *CPU, _ []byte) {
			c.Sub16(reg, 1)
		}, Cycles(2))
		DefineInstruction(0x09+base, fmt.Sprintf("ADD HL, %s", reg), func(c *CPU, _ []byte) {
			c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.Get16(reg)))
		}, Cycles(2))
	}
}
