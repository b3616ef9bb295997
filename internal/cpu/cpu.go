// Package cpu implements the instruction interpreter of the processor.
package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thelolagemann/gblite/internal/mmu"
	"github.com/thelolagemann/gblite/internal/opcodes"
	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/log"
)

// State is the execution state of the CPU.
type State uint8

const (
	// Running is the initial state, the instruction stream advances.
	Running State = iota
	// Halted is reached through HALT or STOP and is terminal.
	Halted
	// Faulted is reached through an undefined opcode or an out of
	// bounds jump and is terminal.
	Faulted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Faulted:
		return "Faulted"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

var (
	// ErrHalted is reported after a HALT instruction.
	ErrHalted = errors.New("cpu halted")
	// ErrStopped is reported after a STOP instruction.
	ErrStopped = errors.New("cpu stopped")
	// ErrUndefinedOpcode is reported when an opcode has no descriptor or
	// no implementation.
	ErrUndefinedOpcode = errors.New("undefined opcode")
	// ErrJumpOutOfBounds is reported when a relative jump resolves
	// outside the 16-bit address space.
	ErrJumpOutOfBounds = errors.New("jump out of bounds")
	// ErrNotRunning is returned by Err while the CPU is still running.
	ErrNotRunning = errors.New("cpu not running")
)

// CPU represents the processor. It fetches, decodes and executes
// instructions from the bus it was created with.
type CPU struct {
	// Registers contains the 8-bit registers, the register pairs, and
	// the SP and PC registers.
	types.Registers

	// IME is the interrupt master enable latch.
	IME bool

	// Log receives halt and fault diagnostics, and the instruction trace
	// when Trace is enabled.
	Log   log.Logger
	Trace bool

	bus   mmu.IOBus
	table *opcodes.Table

	state    State
	err      error
	tableErr error // set when the descriptor table disagrees with the instructions
	cycles   uint8
	total    uint64

	// branched is set by a conditional instruction that took its branch.
	branched bool
}

// NewCPU creates a new CPU executing from bus. The table provides the
// descriptor metadata used for decoding, if it is nil the descriptors of
// the built-in instruction set are used. A table rejected by
// CheckDescriptors leaves the CPU Faulted with that error.
func NewCPU(bus mmu.IOBus, table *opcodes.Table) *CPU {
	if table == nil {
		table = Descriptors()
	}
	c := &CPU{
		Log:      log.NewNullLogger(),
		bus:      bus,
		table:    table,
		tableErr: CheckDescriptors(table),
	}
	c.Reset(0x0000, 0x0000)
	return c
}

// Reset clears the registers, sets PC and SP and returns the CPU to the
// Running state, or to Faulted when its descriptor table was rejected.
func (c *CPU) Reset(pc, sp uint16) {
	c.Registers.Reset()
	c.PC = pc
	c.SP = sp
	c.IME = false
	c.state = Running
	c.err = nil
	c.cycles = 0
	c.total = 0
	if c.tableErr != nil {
		c.state = Faulted
		c.err = c.tableErr
	}
}

// State returns the current execution state.
func (c *CPU) State() State {
	return c.state
}

// Err returns the reason the CPU stopped, or ErrNotRunning while it is
// still running.
func (c *CPU) Err() error {
	if c.state == Running {
		return ErrNotRunning
	}
	return c.err
}

// Cycles returns the machine cycles consumed by the last instruction.
func (c *CPU) Cycles() uint8 {
	return c.cycles
}

// TotalCycles returns the machine cycles consumed since the last Reset.
func (c *CPU) TotalCycles() uint64 {
	return c.total
}

// decode reads the opcode at PC, following the CB prefix into the
// extended namespace.
func (c *CPU) decode() (opcodes.Opcode, *Instruction) {
	code := c.bus.Read(c.PC)
	if code == opcodes.PrefixCB {
		code = c.bus.Read(c.PC + 1)
		return opcodes.Extended(code), &InstructionSetCB[code]
	}
	return opcodes.Opcode(code), &InstructionSet[code]
}

// Process executes a single instruction and reports whether the CPU may
// continue. Once the CPU has halted or faulted every call returns false
// without side effects.
func (c *CPU) Process() bool {
	if c.state != Running {
		return false
	}
	c.cycles = 0

	address := c.PC
	op, instruction := c.decode()
	desc, ok := c.table.Lookup(op)
	if !ok || instruction.fn == nil {
		c.fault(fmt.Errorf("%w %s at 0x%04X", ErrUndefinedOpcode, op, address))
		return false
	}

	// operands follow the opcode (and the prefix for CB instructions)
	operands := make([]byte, instruction.operands())
	offset := uint16(1)
	if op.IsCB() {
		offset = 2
	}
	for i := range operands {
		operands[i] = c.bus.Read(address + offset + uint16(i))
	}

	if c.Trace {
		c.trace(address, desc, operands)
	}

	c.PC += uint16(desc.Length)
	c.branched = false
	instruction.fn(c, operands)

	c.cycles = desc.Cycles
	if c.branched && desc.Branch != 0 {
		c.cycles = desc.Branch
	}
	c.total += uint64(c.cycles)

	return c.state == Running
}

func (c *CPU) trace(address uint16, desc opcodes.Descriptor, operands []byte) {
	raw := make([]string, len(operands))
	for i, b := range operands {
		raw[i] = fmt.Sprintf("0x%02x", b)
	}
	c.Log.Debugf("0x%04x: %s - %d cycles - operands: %s", address, desc.Name, desc.Cycles, strings.Join(raw, " "))
}

// halt moves the CPU into the Halted state.
func (c *CPU) halt(reason error) {
	c.state = Halted
	c.err = reason
	c.Log.Infof("%v at 0x%04X", reason, c.PC)
}

// fault moves the CPU into the Faulted state.
func (c *CPU) fault(err error) {
	c.state = Faulted
	c.err = err
	c.Log.Errorf("cpu fault: %v", err)
}

// readByte reads the byte at the given address.
func (c *CPU) readByte(address uint16) uint8 {
	return c.bus.Read(address)
}

// writeByte writes value to the given address.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.bus.Write(address, value)
}

// get8 returns the operand selected by a 3-bit register index, where
// index 6 selects the byte addressed by HL.
func (c *CPU) get8(reg types.Reg8) uint8 {
	if reg == regHL {
		return c.readByte(c.HL.Uint16())
	}
	return c.Get8(reg)
}

// set8 writes the operand selected by a 3-bit register index.
func (c *CPU) set8(reg types.Reg8, value uint8) {
	if reg == regHL {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	c.Set8(reg, value)
}

// regHL is the register index selecting (HL).
const regHL types.Reg8 = 6
