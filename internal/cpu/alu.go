package cpu

import "github.com/thelolagemann/gblite/internal/types"

// add is a helper function for adding n to the A Register and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	carry := withCarry && c.isFlagSet(FlagCarry)
	sum := uint16(c.A) + uint16(n)
	sumHalf := c.A&0xF + n&0xF
	if carry {
		sum++
		sumHalf++
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub is a helper function for subtracting n from the A Register and
// setting the flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	c.A = c.subtract(n, withCarry)
}

// subtract computes A - n (and the carry), setting the flags but leaving
// the A Register untouched.
func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	carry := withCarry && c.isFlagSet(FlagCarry)
	diff := int16(c.A) - int16(n)
	diffHalf := int16(c.A&0xF) - int16(n&0xF)
	if carry {
		diff--
		diffHalf--
	}
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// compare compares n to the A Register, the flags are set as for SUB but
// the result is discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, false, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// complement replaces the A Register with its one's complement. Unlike
// AND, OR and XOR it keeps the zero and carry flags as they were.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
}

// decimalAdjust adjusts the A Register to a binary coded decimal after
// an addition or subtraction.
//
//	DAA
func (c *CPU) decimalAdjust() {
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if carry {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// addUint16 adds two uint16 values together and sets the flags
// accordingly.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned returns SP plus the signed offset. The carries are computed
// on the low byte as an unsigned addition.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(offset)))
	carries := c.SP ^ uint16(int8(offset)) ^ result
	c.setFlags(false, false, carries&0x10 == 0x10, carries&0x100 == 0x100)
	return result
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	computed := n<<1 | n>>7
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	computed := n>>1 | n<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit0
	}
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied
// to the most significant bit, and the least significant bit is copied to
// the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit7
	}
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftLeftArithmetic shifts n left by one bit, and sets the carry flag to the
// most significant bit of n.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// shiftRightArithmetic shifts n right by one bit and sets the carry flag to
// the least significant bit of n. The most significant bit does not change.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftRightLogical shifts n right one bit and sets the carry flag to the
// least significant bit of n.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// swap the upper and lower nibbles of a byte.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// testBit tests bit b of n.
//
//	BIT b, n
//	b = 0-7
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, b uint8) {
	c.setFlags(n&(1<<b) == 0, false, true, c.isFlagSet(FlagCarry))
}
