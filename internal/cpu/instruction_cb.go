package cpu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/types"
)

// cbOperations are the rotate, shift and swap operations of the
// CB-prefixed instruction set, in the order of their encoding.
var cbOperations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for reg := types.Reg8(0); reg < 8; reg++ {
		reg := reg

		// (HL) operands take longer as they read (and write) memory
		cycles, bitCycles := uint8(2), uint8(2)
		if reg == regHL {
			cycles, bitCycles = 4, 3
		}

		// 0x00 - 0x3F - rotates, shifts and swap
		for op := uint8(0); op < 8; op++ {
			operation := cbOperations[op]
			DefineInstructionCB(op*8+uint8(reg), fmt.Sprintf("%s %s", operation.name, reg), func(c *CPU) {
				c.set8(reg, operation.fn(c, c.get8(reg)))
			}, Cycles(cycles))
		}

		for b := uint8(0); b < 8; b++ {
			b := b

			// 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40+b*8+uint8(reg), fmt.Sprintf("BIT %d, %s", b, reg), func(c *CPU) {
				c.testBit(c.get8(reg), b)
			}, Cycles(bitCycles))

			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80+b*8+uint8(reg), fmt.Sprintf("RES %d, %s", b, reg), func(c *CPU) {
				c.set8(reg, c.get8(reg)&^(1<<b))
			}, Cycles(cycles))

			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0+b*8+uint8(reg), fmt.Sprintf("SET %d, %s", b, reg), func(c *CPU) {
				c.set8(reg, c.get8(reg)|1<<b)
			}, Cycles(cycles))
		}
	}
}
