package cpu

import "testing"

func TestInstructionCB(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		value  uint8
		f      uint8
		want   uint8
		wantF  uint8
	}{
		{"RLC B", 0x00, 0x80, 0x00, 0x01, flags(false, false, false, true)},
		{"RRC B", 0x08, 0x00, 0x10, 0x00, flags(true, false, false, false)},
		{"RL B", 0x10, 0x80, 0x00, 0x00, flags(true, false, false, true)},
		{"RR B", 0x18, 0x01, 0x10, 0x80, flags(false, false, false, true)},
		{"SLA B", 0x20, 0xFF, 0x00, 0xFE, flags(false, false, false, true)},
		{"SRA B", 0x28, 0x81, 0x00, 0xC0, flags(false, false, false, true)},
		{"SWAP B", 0x30, 0xF1, 0x10, 0x1F, flags(false, false, false, false)},
		{"SRL B", 0x38, 0x01, 0x00, 0x00, flags(true, false, false, true)},
		{"BIT 7, B set", 0x78, 0x80, 0x10, 0x80, flags(false, false, true, true)},
		{"BIT 0, B clear", 0x40, 0xFE, 0x00, 0xFE, flags(true, false, true, false)},
		{"RES 3, B", 0x98, 0xFF, 0xF0, 0xF7, 0xF0},
		{"SET 6, B", 0xF0, 0x00, 0x00, 0x40, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(0xCB, tt.opcode)
			c.B, c.F = tt.value, tt.f

			run(t, c, 1)
			if c.B != tt.want {
				t.Errorf("expected B to be 0x%02X, got 0x%02X", tt.want, c.B)
			}
			if c.F != tt.wantF {
				t.Errorf("expected F to be %08b, got %08b", tt.wantF, c.F)
			}
			if c.PC != 0x0002 {
				t.Errorf("expected PC to be 0x0002, got 0x%04X", c.PC)
			}
		})
	}
}

func TestInstructionCB_Memory(t *testing.T) {
	c, bus := newTestCPU(
		0xCB, 0xC6, // SET 0, (HL)
		0xCB, 0x26, // SLA (HL)
		0xCB, 0x4E, // BIT 1, (HL)
	)
	c.HL.SetUint16(0xC010)
	bus.Write(0xC010, 0x40)

	run(t, c, 1)
	if bus.Read(0xC010) != 0x41 || c.Cycles() != 4 {
		t.Errorf("SET 0, (HL): expected 0x41 in 4 cycles, got 0x%02X in %d", bus.Read(0xC010), c.Cycles())
	}
	run(t, c, 1)
	if bus.Read(0xC010) != 0x82 {
		t.Errorf("SLA (HL): expected 0x82, got 0x%02X", bus.Read(0xC010))
	}
	run(t, c, 1)
	if c.isFlagSet(FlagZero) || c.Cycles() != 3 {
		t.Errorf("BIT 1, (HL): expected bit set in 3 cycles, got %08b in %d", c.F, c.Cycles())
	}
}
