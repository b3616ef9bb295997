package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlags sets all four flags at once. The lower nibble of F is always
// cleared.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= 1 << FlagZero
	}
	if subtract {
		f |= 1 << FlagSubtract
	}
	if halfCarry {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	c.F = f
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// Condition is a predicate over the flags register, used by the
// conditional jump, call and return instructions.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
)

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// String returns the assembler name of the condition.
func (cond Condition) String() string {
	return conditionNames[cond&3]
}

// holds evaluates the condition against the current flags.
func (c *CPU) holds(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
