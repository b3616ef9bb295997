package cpu

// Instruction is the implementation of an opcode together with its
// built-in descriptor metadata.
type Instruction struct {
	name   string
	fn     func(*CPU, []byte)
	length uint8
	cycles uint8
	branch uint8
	cb     bool
}

// Name returns the assembler mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the encoded length of the instruction in bytes.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the base cost of the instruction in machine cycles.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// BranchCycles returns the cost of a taken conditional branch, or 0.
func (i Instruction) BranchCycles() uint8 {
	return i.branch
}

// Defined reports whether the instruction has an implementation.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// operands returns the number of immediate bytes read by the
// implementation.
func (i Instruction) operands() int {
	n := int(i.length) - 1
	if i.cb {
		n--
	}
	if n < 0 {
		return 0
	}
	return n
}

// InstructionOpt configures an Instruction when it is defined.
type InstructionOpt func(*Instruction)

// Length sets the encoded length of the instruction, defaults to 1.
func Length(length uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = length
	}
}

// Cycles sets the base cost of the instruction, defaults to 1.
func Cycles(cycles uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = cycles
	}
}

// Branch sets the cost of the instruction when its condition holds.
func Branch(cycles uint8) InstructionOpt {
	return func(i *Instruction) {
		i.branch = cycles
	}
}

var (
	// InstructionSet holds the base instruction set, indexed by opcode.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the CB-prefixed instruction set, indexed by
	// the byte following the prefix.
	InstructionSetCB [256]Instruction
)

// DefineInstruction defines the instruction in the InstructionSet, with the
// provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, []byte), opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		fn:     fn,
		length: 1,
		cycles: 1,
	}
	for _, opt := range opts {
		opt(&instruction)
	}

	InstructionSet[opcode] = instruction
}

// DefineInstructionCB defines the instruction in the InstructionSetCB. CB
// instructions are 2 bytes long (prefix included) and take 2 cycles unless
// configured otherwise.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		fn:     func(c *CPU, _ []byte) { fn(c) },
		length: 2,
		cycles: 2,
		cb:     true,
	}
	for _, opt := range opts {
		opt(&instruction)
	}

	InstructionSetCB[opcode] = instruction
}

// unassignedOpcodes have no instruction on the hardware.
var unassignedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []byte) { c.halt(ErrStopped) }, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []byte) { c.halt(ErrHalted) })
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []byte) { c.IME = false })
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []byte) { c.IME = true })

	DefineInstruction(0x27, "DAA", func(c *CPU, _ []byte) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []byte) { c.complement() })
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []byte) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []byte) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
	})
}
