package cpu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/opcodes"
)

// Descriptors returns a table describing the built-in instruction sets.
func Descriptors() *opcodes.Table {
	for _, code := range unassignedOpcodes {
		if InstructionSet[code].Defined() {
			panic(fmt.Sprintf("cpu: unassigned opcode 0x%02X has an instruction", code))
		}
	}

	table := opcodes.NewTable()
	for _, set := range []struct {
		instructions *[256]Instruction
		cb           bool
	}{
		{&InstructionSet, false},
		{&InstructionSetCB, true},
	} {
		for code, instruction := range set.instructions {
			if !instruction.Defined() {
				continue
			}
			if err := table.Add(opcodes.Descriptor{
				Code:     uint8(code),
				Name:     instruction.name,
				Length:   instruction.length,
				Cycles:   instruction.cycles,
				Branch:   instruction.branch,
				PrefixCB: set.cb,
			}); err != nil {
				panic(fmt.Sprintf("cpu: invalid built-in instruction: %v", err))
			}
		}
	}
	return table
}

// CheckDescriptors verifies that every descriptor of table agrees with the
// instruction it describes. Descriptors of opcodes without an instruction
// are accepted, they decode as undefined opcodes.
func CheckDescriptors(table *opcodes.Table) error {
	for _, d := range table.Descriptors() {
		if !d.PrefixCB && d.Code == opcodes.PrefixCB {
			return fmt.Errorf("%w: %s is the CB prefix", opcodes.ErrMalformedTable, d.Opcode())
		}

		instruction := InstructionSet[d.Code]
		if d.PrefixCB {
			instruction = InstructionSetCB[d.Code]
		}
		if !instruction.Defined() {
			continue
		}
		if d.Length != instruction.length {
			return fmt.Errorf("%w: %s (%s) has length %d, the instruction is %d bytes",
				opcodes.ErrMalformedTable, d.Opcode(), d.Name, d.Length, instruction.length)
		}
	}
	return nil
}
