package cpu

import (
	"errors"
	"testing"
)

func TestCPU_CallReturn(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x0050, 0xCD) // CALL 0x0100
	bus.Write(0x0051, 0x00)
	bus.Write(0x0052, 0x01)
	bus.Write(0x0100, 0xC9) // RET
	c.PC = 0x0050
	sp := c.SP

	run(t, c, 1)
	if c.PC != 0x0100 {
		t.Errorf("expected PC to be 0x0100, got 0x%04X", c.PC)
	}
	if c.SP != sp-2 {
		t.Errorf("expected SP to be 0x%04X, got 0x%04X", sp-2, c.SP)
	}
	if ret := bus.Read16(c.SP); ret != 0x0053 {
		t.Errorf("expected return address 0x0053, got 0x%04X", ret)
	}
	if c.Cycles() != 6 {
		t.Errorf("expected CALL to take 6 cycles, got %d", c.Cycles())
	}

	run(t, c, 1)
	if c.PC != 0x0053 {
		t.Errorf("expected PC to be 0x0053, got 0x%04X", c.PC)
	}
	if c.SP != sp {
		t.Errorf("expected SP to be 0x%04X, got 0x%04X", sp, c.SP)
	}
}

func TestCPU_PushPop(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x1234, 0xFFFF, 0x8001} {
		c, bus := newTestCPU()
		sp := c.SP

		c.pushStack(v)
		if c.SP != sp-2 {
			t.Errorf("expected SP to be 0x%04X, got 0x%04X", sp-2, c.SP)
		}
		if bus.Read(c.SP) != uint8(v) || bus.Read(c.SP+1) != uint8(v>>8) {
			t.Errorf("expected 0x%04X to be stored little-endian", v)
		}
		if popped := c.popStack(); popped != v {
			t.Errorf("expected to pop 0x%04X, got 0x%04X", v, popped)
		}
		if c.SP != sp {
			t.Errorf("expected SP to be 0x%04X, got 0x%04X", sp, c.SP)
		}
	}
}

func TestCPU_PushPopInstructions(t *testing.T) {
	c, _ := newTestCPU(
		0xC5, // PUSH BC
		0xF1, // POP AF
		0xD5, // PUSH DE
		0xE1, // POP HL
	)
	c.BC.SetUint16(0x12FF)
	c.DE.SetUint16(0xBEEF)
	run(t, c, 4)

	// the lower nibble of F is discarded
	if c.AF.Uint16() != 0x12F0 {
		t.Errorf("expected AF to be 0x12F0, got 0x%04X", c.AF.Uint16())
	}
	if c.HL.Uint16() != 0xBEEF {
		t.Errorf("expected HL to be 0xBEEF, got 0x%04X", c.HL.Uint16())
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP to be 0xFFFE, got 0x%04X", c.SP)
	}
}

func TestCPU_JumpRelative(t *testing.T) {
	tests := []struct {
		name   string
		pc     uint16
		offset uint8
		want   uint16
	}{
		{"forward", 0x0000, 0x03, 0x0005},
		{"backward", 0x0500, 0xFE, 0x0500},
		{"minimum", 0x0100, 0x80, 0x0082},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU()
			bus.Write(tt.pc, 0x18)
			bus.Write(tt.pc+1, tt.offset)
			c.PC = tt.pc

			run(t, c, 1)
			if c.PC != tt.want {
				t.Errorf("expected PC to be 0x%04X, got 0x%04X", tt.want, c.PC)
			}
		})
	}
}

func TestCPU_JumpRelativeOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		pc     uint16
		offset uint8
	}{
		{"overflow", 0xFFEE, 0x20}, // 0xFFF0 + 32
		{"underflow", 0x0000, 0xF0}, // 0x0002 - 16
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU()
			bus.Write(tt.pc, 0x18)
			bus.Write(tt.pc+1, tt.offset)
			c.PC = tt.pc

			if c.Process() {
				t.Fatalf("expected Process to report false")
			}
			if c.State() != Faulted {
				t.Errorf("expected Faulted, got %s", c.State())
			}
			if !errors.Is(c.Err(), ErrJumpOutOfBounds) {
				t.Errorf("expected ErrJumpOutOfBounds, got %v", c.Err())
			}
			if c.PC != tt.pc+2 {
				t.Errorf("expected PC to stay at 0x%04X, got 0x%04X", tt.pc+2, c.PC)
			}
		})
	}
}

func TestCPU_Conditional(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		flags   uint8
		pc      uint16
		cycles  uint8
	}{
		{"JR NZ taken", []byte{0x20, 0x10}, 0x00, 0x0012, 3},
		{"JR NZ not taken", []byte{0x20, 0x10}, 0x80, 0x0002, 2},
		{"JR C taken", []byte{0x38, 0x10}, 0x10, 0x0012, 3},
		{"JP Z taken", []byte{0xCA, 0x00, 0x40}, 0x80, 0x4000, 4},
		{"JP Z not taken", []byte{0xCA, 0x00, 0x40}, 0x00, 0x0003, 3},
		{"CALL NC taken", []byte{0xD4, 0x00, 0x40}, 0x00, 0x4000, 6},
		{"CALL NC not taken", []byte{0xD4, 0x00, 0x40}, 0x10, 0x0003, 3},
		{"RET C not taken", []byte{0xD8}, 0x00, 0x0001, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(tt.program...)
			c.F = tt.flags

			run(t, c, 1)
			if c.PC != tt.pc {
				t.Errorf("expected PC to be 0x%04X, got 0x%04X", tt.pc, c.PC)
			}
			if c.Cycles() != tt.cycles {
				t.Errorf("expected %d cycles, got %d", tt.cycles, c.Cycles())
			}
		})
	}

	t.Run("RET Z taken", func(t *testing.T) {
		c, bus := newTestCPU(0xC8)
		c.F = 0x80
		c.SP = 0xFFFC
		bus.Write16(0xFFFC, 0x1234)

		run(t, c, 1)
		if c.PC != 0x1234 || c.SP != 0xFFFE {
			t.Errorf("expected PC 0x1234 and SP 0xFFFE, got 0x%04X and 0x%04X", c.PC, c.SP)
		}
		if c.Cycles() != 5 {
			t.Errorf("expected 5 cycles, got %d", c.Cycles())
		}
	})
}

func TestCPU_Restart(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		c, bus := newTestCPU()
		bus.Write(0x0200, 0xC7+i*8)
		c.PC = 0x0200

		run(t, c, 1)
		if c.PC != uint16(i)*8 {
			t.Errorf("RST %02XH: expected PC to be 0x%04X, got 0x%04X", i*8, uint16(i)*8, c.PC)
		}
		if ret := bus.Read16(c.SP); ret != 0x0201 {
			t.Errorf("RST %02XH: expected return address 0x0201, got 0x%04X", i*8, ret)
		}
	}
}

func TestCPU_Interrupts(t *testing.T) {
	c, bus := newTestCPU(0xFB, 0xF3, 0xD9)
	bus.Write16(0xFFFC, 0x0300)

	run(t, c, 1)
	if !c.IME {
		t.Errorf("expected EI to set IME")
	}
	run(t, c, 1)
	if c.IME {
		t.Errorf("expected DI to clear IME")
	}

	c.SP = 0xFFFC
	run(t, c, 1)
	if !c.IME || c.PC != 0x0300 {
		t.Errorf("expected RETI to return to 0x0300 with IME set, got 0x%04X (IME %v)", c.PC, c.IME)
	}
}

func TestCPU_JumpAbsolute(t *testing.T) {
	c, _ := newTestCPU(0xC3, 0x34, 0x12)
	run(t, c, 1)
	if c.PC != 0x1234 {
		t.Errorf("expected PC to be 0x1234, got 0x%04X", c.PC)
	}

	c, _ = newTestCPU(0xE9)
	c.HL.SetUint16(0x4242)
	run(t, c, 1)
	if c.PC != 0x4242 {
		t.Errorf("expected PC to be 0x4242, got 0x%04X", c.PC)
	}
}
