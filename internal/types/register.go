package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags, and only its upper
// nibble is ever non-zero.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. A pair has no
// storage of its own, it always reflects the current value of its halves.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value. The
// high byte is written to the first register of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Reg8 identifies one of the seven general purpose 8-bit registers. The
// values match the 3-bit register encoding used by the instruction set,
// where index 6 selects (HL) rather than a register.
type Reg8 uint8

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	_ // (HL)
	RegA
)

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// String returns the assembler name of the register.
func (r Reg8) String() string {
	return reg8Names[r&7]
}

// Reg16 identifies a 16-bit register, either a pair of 8-bit registers or
// one of the two true 16-bit registers (SP and PC).
type Reg16 uint8

const (
	PairBC Reg16 = iota
	PairDE
	PairHL
	PairAF
	RegSP
	RegPC
)

var reg16Names = [6]string{"BC", "DE", "HL", "AF", "SP", "PC"}

// String returns the assembler name of the register.
func (r Reg16) String() string {
	if int(r) >= len(reg16Names) {
		return "??"
	}
	return reg16Names[r]
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// Reset zeroes every register and wires the register pairs to their
// halves. It must be called before the Registers are used, and again
// after the struct has been copied.
func (r *Registers) Reset() {
	*r = Registers{}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F}
}

func (r *Registers) reg8(reg Reg8) *Register {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic("types: invalid 8-bit register " + reg.String())
}

func (r *Registers) pair(reg Reg16) *RegisterPair {
	switch reg {
	case PairBC:
		return r.BC
	case PairDE:
		return r.DE
	case PairHL:
		return r.HL
	case PairAF:
		return r.AF
	}
	return nil
}

// Get8 returns the value of the given 8-bit register.
func (r *Registers) Get8(reg Reg8) uint8 {
	return *r.reg8(reg)
}

// Set8 sets the given 8-bit register.
func (r *Registers) Set8(reg Reg8, value uint8) {
	*r.reg8(reg) = value
}

// Copy8 copies the value of src into dst.
func (r *Registers) Copy8(dst, src Reg8) {
	r.Set8(dst, r.Get8(src))
}

// Add8 adds delta to the given register, wrapping on overflow.
func (r *Registers) Add8(reg Reg8, delta uint8) {
	*r.reg8(reg) += delta
}

// Sub8 subtracts delta from the given register, wrapping on underflow.
func (r *Registers) Sub8(reg Reg8, delta uint8) {
	*r.reg8(reg) -= delta
}

// Get16 returns the value of the given 16-bit register.
func (r *Registers) Get16(reg Reg16) uint16 {
	switch reg {
	case RegSP:
		return r.SP
	case RegPC:
		return r.PC
	}
	return r.pair(reg).Uint16()
}

// Set16 sets the given 16-bit register. Writing AF discards the lower
// nibble of the flags, which always reads as zero.
func (r *Registers) Set16(reg Reg16, value uint16) {
	switch reg {
	case RegSP:
		r.SP = value
	case RegPC:
		r.PC = value
	case PairAF:
		r.AF.SetUint16(value & 0xFFF0)
	default:
		r.pair(reg).SetUint16(value)
	}
}

// Copy16 copies the value of src into dst.
func (r *Registers) Copy16(dst, src Reg16) {
	r.Set16(dst, r.Get16(src))
}

// Add16 adds delta to the given register, wrapping on overflow.
func (r *Registers) Add16(reg Reg16, delta uint16) {
	r.Set16(reg, r.Get16(reg)+delta)
}

// Sub16 subtracts delta from the given register, wrapping on underflow.
func (r *Registers) Sub16(reg Reg16, delta uint16) {
	r.Set16(reg, r.Get16(reg)-delta)
}
