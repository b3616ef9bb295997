package cpu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/utils"
)

// pushStack pushes a 16 bit value onto the stack. SP is decremented by 2
// and the value is written little-endian at the new SP.
func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	low, high := utils.SplitUint16(value)
	c.writeByte(c.SP, low)
	c.writeByte(c.SP+1, high)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	value := utils.JoinUint16(c.readByte(c.SP), c.readByte(c.SP+1))
	c.SP += 2
	return value
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retInterrupt pops the top two bytes off the stack and jumps to that address.
// It also enables interrupts.
//
//	RETI
func (c *CPU) retInterrupt() {
	c.ret()
	c.IME = true
}

// jumpRelative jumps to the address relative to the current PC. A target
// outside of the address space faults the CPU and leaves PC untouched.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	address := int32(c.PC) + int32(int8(offset))
	if address < 0 || address > 0xFFFF {
		c.fault(fmt.Errorf("%w: 0x%04X%+d resolves to 0x%X", ErrJumpOutOfBounds, c.PC, int8(offset), address))
		return
	}
	c.PC = uint16(address)
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
}

// conditional runs fn if cond holds and records the taken branch.
func (c *CPU) conditional(cond Condition, fn func()) {
	if c.holds(cond) {
		c.branched = true
		fn()
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []byte) { c.jumpRelative(operands[0]) }, Length(2), Cycles(3))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []byte) {
		c.jumpAbsolute(utils.JoinUint16(operands[0], operands[1]))
	}, Length(3), Cycles(4))
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU, _ []byte) { c.jumpAbsolute(c.HL.Uint16()) })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []byte) {
		c.call(utils.JoinUint16(operands[0], operands[1]))
	}, Length(3), Cycles(6))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []byte) { c.ret() }, Cycles(4))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []byte) { c.retInterrupt() }, Cycles(4))

	generateConditionalInstructions()
	generateRSTInstructions()
	generateStackInstructions()
}

// generateConditionalInstructions generates the conditional jump, call and
// return instructions for the conditions NZ, Z, NC and C.
func generateConditionalInstructions() {
	for i := uint8(0); i < 4; i++ {
		cond := Condition(i)

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20+i*8, fmt.Sprintf("JR %s, r8", cond), func(c *CPU, operands []byte) {
			c.conditional(cond, func() { c.jumpRelative(operands[0]) })
		}, Length(2), Cycles(2), Branch(3))

		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2+i*8, fmt.Sprintf("JP %s, a16", cond), func(c *CPU, operands []byte) {
			c.conditional(cond, func() { c.jumpAbsolute(utils.JoinUint16(operands[0], operands[1])) })
		}, Length(3), Cycles(3), Branch(4))

		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4+i*8, fmt.Sprintf("CALL %s, a16", cond), func(c *CPU, operands []byte) {
			c.conditional(cond, func() { c.call(utils.JoinUint16(operands[0], operands[1])) })
		}, Length(3), Cycles(3), Branch(6))

		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0+i*8, fmt.Sprintf("RET %s", cond), func(c *CPU, _ []byte) {
			c.conditional(cond, c.ret)
		}, Cycles(2), Branch(5))
	}
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		address := uint16(i * 8)
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", address), func(c *CPU, _ []byte) {
			c.call(address)
		}, Cycles(4))
	}
}

// generateStackInstructions generates PUSH and POP for BC, DE, HL and AF.
// Popping into AF clears the lower nibble of F.
func generateStackInstructions() {
	for i, pair := range []types.Reg16{types.PairBC, types.PairDE, types.PairHL, types.PairAF} {
		pair := pair
		DefineInstruction(0xC5+uint8(i)*0x10, "PUSH "+pair.String(), func(c *CPU, _ []byte) {
			c.pushStack(c.Get16(pair))
		}, Cycles(4))
		DefineInstruction(0xC1+uint8(i)*0x10, "POP "+pair.String(), func(c *CPU, _ []byte) {
			c.Set16(pair, c.popStack())
		}, Cycles(3))
	}
}
