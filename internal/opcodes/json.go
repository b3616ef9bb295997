package opcodes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ClocksPerCycle is the number of clock ticks in a machine cycle.
const ClocksPerCycle = 4

// record is the on-disk form of a Descriptor. Costs are expressed in
// clock ticks.
type record struct {
	Code         uint8  `json:"code"`
	Name         string `json:"name"`
	Bytes        uint8  `json:"bytes"`
	Clocks       int    `json:"clocks"`
	BranchClocks int    `json:"clocks_branch,omitempty"`
	PrefixCB     bool   `json:"prefix_cb,omitempty"`
}

func toCycles(op Opcode, clocks int) (uint8, error) {
	if clocks < 0 || clocks%ClocksPerCycle != 0 || clocks/ClocksPerCycle > 0xFF {
		return 0, fmt.Errorf("%w: %s has %d clocks", ErrMalformedTable, op, clocks)
	}
	return uint8(clocks / ClocksPerCycle), nil
}

func (r record) descriptor() (Descriptor, error) {
	d := Descriptor{
		Code:     r.Code,
		Name:     r.Name,
		Length:   r.Bytes,
		PrefixCB: r.PrefixCB,
	}

	var err error
	if d.Cycles, err = toCycles(d.Opcode(), r.Clocks); err != nil {
		return Descriptor{}, err
	}
	if d.Branch, err = toCycles(d.Opcode(), r.BranchClocks); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Load reads a JSON array of opcode records from r.
func Load(r io.Reader) (*Table, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no opcodes defined", ErrMalformedTable)
	}

	t := NewTable()
	for _, rec := range records {
		d, err := rec.descriptor()
		if err != nil {
			return nil, err
		}
		if err := t.Add(d); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadFile reads a JSON opcode table from the named file.
func LoadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening opcode table: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return t, nil
}

// WriteJSON writes the table to w in the format read by Load.
func (t *Table) WriteJSON(w io.Writer) error {
	descriptors := t.Descriptors()
	records := make([]record, len(descriptors))
	for i, d := range descriptors {
		records[i] = record{
			Code:         d.Code,
			Name:         d.Name,
			Bytes:        d.Length,
			Clocks:       int(d.Cycles) * ClocksPerCycle,
			BranchClocks: int(d.Branch) * ClocksPerCycle,
			PrefixCB:     d.PrefixCB,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
