// Package opcodes describes the encoding and timing of instructions. A
// Table maps every opcode, including the CB-prefixed namespace, to an
// immutable Descriptor.
package opcodes

import (
	"errors"
	"fmt"
	"sort"
)

// PrefixCB is the escape byte selecting the extended instruction namespace.
const PrefixCB = 0xCB

// Opcode identifies an instruction. Base opcodes occupy 0x00-0xFF, while
// CB-prefixed opcodes are combined with the prefix as 0xCB00-0xCBFF.
type Opcode uint16

// Extended returns the Opcode of the CB-prefixed instruction b.
func Extended(b uint8) Opcode {
	return Opcode(PrefixCB)<<8 | Opcode(b)
}

// IsCB reports whether o belongs to the CB-prefixed namespace.
func (o Opcode) IsCB() bool {
	return o > 0xFF
}

// Byte returns the opcode byte within its namespace.
func (o Opcode) Byte() uint8 {
	return uint8(o)
}

// String implements fmt.Stringer.
func (o Opcode) String() string {
	if o.IsCB() {
		return fmt.Sprintf("0xCB%02X", o.Byte())
	}
	return fmt.Sprintf("0x%02X", o.Byte())
}

var (
	// ErrMalformedTable is returned when a table record is invalid.
	ErrMalformedTable = errors.New("malformed opcode table")
	// ErrDuplicateOpcode is returned when a table defines an opcode twice.
	ErrDuplicateOpcode = errors.New("duplicate opcode")
)

// Descriptor describes an instruction.
type Descriptor struct {
	// Code is the opcode byte within its namespace.
	Code uint8
	// Name is the assembler mnemonic, used for diagnostics.
	Name string
	// Length is the encoded length in bytes, including the CB prefix.
	Length uint8
	// Cycles is the base cost in machine cycles.
	Cycles uint8
	// Branch is the cost in machine cycles when a conditional branch is
	// taken, or 0 when the instruction never branches conditionally.
	Branch uint8
	// PrefixCB is true for instructions in the CB-prefixed namespace.
	PrefixCB bool
}

// Opcode returns the Opcode of the instruction described by d.
func (d Descriptor) Opcode() Opcode {
	if d.PrefixCB {
		return Extended(d.Code)
	}
	return Opcode(d.Code)
}

// Validate checks the descriptor for structural errors.
func (d Descriptor) Validate() error {
	minLength, maxLength := uint8(1), uint8(3)
	if d.PrefixCB {
		minLength, maxLength = 2, 2
	}
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: %s has no name", ErrMalformedTable, d.Opcode())
	case d.Length < minLength || d.Length > maxLength:
		return fmt.Errorf("%w: %s has length %d", ErrMalformedTable, d.Opcode(), d.Length)
	case d.Cycles == 0:
		return fmt.Errorf("%w: %s has no cycle cost", ErrMalformedTable, d.Opcode())
	case d.Branch != 0 && d.Branch < d.Cycles:
		return fmt.Errorf("%w: %s branch cost %d below base cost %d", ErrMalformedTable, d.Opcode(), d.Branch, d.Cycles)
	}
	return nil
}

// Table maps opcodes to their Descriptor. A Table is built once before
// emulation starts and is never mutated afterwards.
type Table struct {
	base [256]*Descriptor
	cb   [256]*Descriptor
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Add validates d and adds it to the table.
func (t *Table) Add(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	slot := &t.base[d.Code]
	if d.PrefixCB {
		slot = &t.cb[d.Code]
	}
	if *slot != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateOpcode, d.Opcode())
	}
	*slot = &d
	return nil
}

// Lookup returns the Descriptor for o.
func (t *Table) Lookup(o Opcode) (Descriptor, bool) {
	d := t.base[o.Byte()]
	if o.IsCB() {
		d = t.cb[o.Byte()]
	}
	if d == nil {
		return Descriptor{}, false
	}
	return *d, true
}

// Len returns the number of descriptors in the table.
func (t *Table) Len() int {
	n := 0
	for i := range t.base {
		if t.base[i] != nil {
			n++
		}
		if t.cb[i] != nil {
			n++
		}
	}
	return n
}

// Descriptors returns every descriptor, base opcodes first, each
// namespace in ascending order.
func (t *Table) Descriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, t.Len())
	for _, set := range [][256]*Descriptor{t.base, t.cb} {
		for _, d := range set {
			if d != nil {
				descriptors = append(descriptors, *d)
			}
		}
	}
	sort.SliceStable(descriptors, func(i, j int) bool {
		return descriptors[i].Opcode() < descriptors[j].Opcode()
	})
	return descriptors
}
