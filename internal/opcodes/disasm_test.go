package opcodes

import (
	"strings"
	"testing"
)

func TestTable_Disassemble(t *testing.T) {
	table, err := Load(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}

	image := []byte{
		0x00,             // NOP
		0xC3, 0x50, 0x01, // JP 0x0150
		0xCB, 0x37, // SRL A
		0xD3,       // undefined
		0x18, 0xFE, // JR -2
		0xC3, 0x00, // truncated JP
	}

	want := []string{
		"0x0000: NOP",
		"0x0001: JP a16 0x50 0x01",
		"0x0004: SRL A",
		"0x0006: DB 0xD3",
		"0x0007: JR r8 0xfe",
		"0x0009: JP a16 0x00",
	}

	lines := table.Disassemble(image, 0, 0)
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, l := range lines {
		if l.String() != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], l.String())
		}
	}
	if lines[3].Known || !lines[2].Known {
		t.Errorf("expected only the undefined byte to be unknown")
	}

	t.Run("start and count", func(t *testing.T) {
		lines := table.Disassemble(image, 4, 2)
		if len(lines) != 2 || lines[0].Address != 4 || lines[1].Address != 6 {
			t.Errorf("unexpected lines %v", lines)
		}
	})

	t.Run("start beyond image", func(t *testing.T) {
		if lines := table.Disassemble(image, 0x100, 0); len(lines) != 0 {
			t.Errorf("expected no lines, got %v", lines)
		}
	})
}
