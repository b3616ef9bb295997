package opcodes

import (
	"fmt"
	"strings"
)

// Line is a single disassembled instruction.
type Line struct {
	Address  uint16
	Operands []byte
	Descriptor

	// Known is false for bytes without a descriptor, which are listed as
	// data one byte at a time.
	Known bool
}

// String formats the line as "0x0150: LD A, d8 0x3e".
func (l Line) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "0x%04X: %s", l.Address, l.Name)
	for _, o := range l.Operands {
		fmt.Fprintf(&b, " 0x%02x", o)
	}
	return b.String()
}

// Disassemble decodes up to count instructions of image, starting at
// start and following each instruction's length. A count of 0 decodes to
// the end of the image. Instructions truncated by the end of the image
// keep the operands that are present.
func (t *Table) Disassemble(image []byte, start uint16, count int) []Line {
	var lines []Line
	for pc := int(start); pc < len(image) && (count == 0 || len(lines) < count); {
		op, offset := Opcode(image[pc]), 1
		if image[pc] == PrefixCB && pc+1 < len(image) {
			op, offset = Extended(image[pc+1]), 2
		}

		d, ok := t.Lookup(op)
		if !ok {
			lines = append(lines, Line{
				Address:    uint16(pc),
				Descriptor: Descriptor{Code: image[pc], Name: fmt.Sprintf("DB 0x%02X", image[pc]), Length: 1},
			})
			pc++
			continue
		}

		end := pc + int(d.Length)
		if end > len(image) {
			end = len(image)
		}
		lines = append(lines, Line{
			Address:    uint16(pc),
			Operands:   image[pc+offset : end],
			Descriptor: d,
			Known:      true,
		})
		pc += int(d.Length)
	}
	return lines
}
