package gameboy

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/thelolagemann/gblite/internal/cpu"
	"github.com/thelolagemann/gblite/internal/opcodes"
	"github.com/thelolagemann/gblite/internal/ppu"
	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/display/headless"
)

func TestGameBoy_Run(t *testing.T) {
	tests := []struct {
		name  string
		image []byte
		opts  []Opt
		err   error
		steps uint64
	}{
		{"halt", []byte{0x00, 0x00, 0x76}, nil, cpu.ErrHalted, 3},
		{"stop", []byte{0x10, 0x00}, nil, cpu.ErrStopped, 1},
		{"undefined opcode", []byte{0x00, 0xD3}, nil, cpu.ErrUndefinedOpcode, 1},
		{"jump out of bounds", []byte{0x18, 0x80}, nil, cpu.ErrJumpOutOfBounds, 1},
		{"max steps", nil, []Opt{WithMaxSteps(1000)}, nil, 1000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameBoy(tt.image, tt.opts...)
			err := g.Run()
			if tt.err == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if g.Steps() != tt.steps {
				t.Errorf("expected %d steps, got %d", tt.steps, g.Steps())
			}
		})
	}
}

func TestGameBoy_RunUntilClosed(t *testing.T) {
	surface := headless.New(2)
	g := NewGameBoy(nil, WithSurface(surface))

	if err := g.Run(); err != nil {
		t.Fatalf("expected nil when the display closes, got %v", err)
	}
	if g.CPU.State() != cpu.Running {
		t.Errorf("expected the cpu to still be running, got %v", g.CPU.State())
	}
	if surface.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", surface.Frames())
	}
	if g.PPU.IsRunning() {
		t.Errorf("expected the ppu to stop with the display")
	}
	if surface.IsOpen() {
		t.Errorf("expected Run to close the display")
	}
	if w, h := surface.Size(); w != ppu.ScreenWidth || h != ppu.ScreenHeight {
		t.Errorf("expected a %dx%d display, got %dx%d", ppu.ScreenWidth, ppu.ScreenHeight, w, h)
	}
}

func TestGameBoy_Step(t *testing.T) {
	g := NewGameBoy([]byte{
		0x3E, 0x42, // LD A, 0x42
		0xEA, 0x00, 0xC0, // LD (0xC000), A
		0x00, // NOP
	})
	if err := g.Surface().Open(ppu.ScreenWidth, ppu.ScreenHeight); err != nil {
		t.Fatal(err)
	}

	if g.Step() {
		t.Fatalf("expected no continuation before the ppu has started")
	}
	if g.CPU.A != 0x42 {
		t.Fatalf("expected the instruction to execute, A = 0x%02x", g.CPU.A)
	}

	g.PPU.Start()
	if !g.Step() {
		t.Fatalf("expected continuation")
	}
	if got := g.MMU.Read(0xC000); got != 0x42 {
		t.Errorf("expected 0x42 at 0xC000, got 0x%02x", got)
	}
	// LD A,d8 ran before the ppu started, LD (a16),A costs 4 dots
	if g.PPU.Dot() != 4 || g.PPU.Mode() != ppu.OAMSearch {
		t.Errorf("expected OAMSearch at dot 4, got %v at dot %d", g.PPU.Mode(), g.PPU.Dot())
	}
}

func TestGameBoy_PPUTiming(t *testing.T) {
	// a stream of NOPs advances the ppu one dot per instruction
	g := NewGameBoy(nil)
	if err := g.Surface().Open(ppu.ScreenWidth, ppu.ScreenHeight); err != nil {
		t.Fatal(err)
	}
	g.PPU.Start()

	for i := 0; i < 20+63+114; i++ {
		if !g.Step() {
			t.Fatal("expected continuation")
		}
	}
	if got := g.MMU.Read(types.LY); got != 1 {
		t.Errorf("expected LY 1, got %d", got)
	}
	if got := g.MMU.Read(types.STAT) & 0b11; got != 3 {
		t.Errorf("expected STAT mode 3, got %d", got)
	}
}

func TestGameBoy_Options(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := NewGameBoy([]byte{0x00, 0x00, 0x00, 0x76},
		WithResetVector(0x0002),
		WithStackPointer(0xFFFE),
		WithTrace(),
		WithLogger(logger),
	)
	if g.CPU.PC != 0x0002 || g.CPU.SP != 0xFFFE {
		t.Fatalf("expected PC 0x0002 SP 0xFFFE, got PC 0x%04x SP 0x%04x", g.CPU.PC, g.CPU.SP)
	}

	if err := g.Run(); !errors.Is(err, cpu.ErrHalted) {
		t.Fatalf("expected halt, got %v", err)
	}

	var traced []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel {
			traced = append(traced, e.Message)
		}
	}
	want := []string{
		"0x0002: NOP - 1 cycles - operands: ",
		"0x0003: HALT - 1 cycles - operands: ",
	}
	if strings.Join(traced, "\n") != strings.Join(want, "\n") {
		t.Errorf("expected trace\n%s\ngot\n%s", strings.Join(want, "\n"), strings.Join(traced, "\n"))
	}
}

func TestGameBoy_WithDescriptors(t *testing.T) {
	// a table without NOP turns NOP into an undefined opcode
	table, err := opcodes.Load(strings.NewReader(`[{"code": 118, "name": "HALT", "bytes": 1, "clocks": 4}]`))
	if err != nil {
		t.Fatal(err)
	}

	g := NewGameBoy([]byte{0x76}, WithDescriptors(table))
	if err := g.Run(); !errors.Is(err, cpu.ErrHalted) {
		t.Errorf("expected halt, got %v", err)
	}

	g = NewGameBoy([]byte{0x00}, WithDescriptors(table))
	if err := g.Run(); !errors.Is(err, cpu.ErrUndefinedOpcode) {
		t.Errorf("expected undefined opcode, got %v", err)
	}
}

func TestGameBoy_WithMismatchedDescriptors(t *testing.T) {
	// LD A, d8 is two bytes, a one byte descriptor would run its operand as an opcode
	table, err := opcodes.Load(strings.NewReader(`[{"code": 62, "name": "LD A, d8", "bytes": 1, "clocks": 8}]`))
	if err != nil {
		t.Fatal(err)
	}

	surface := headless.New(0)
	g := NewGameBoy([]byte{0x3E, 0x00, 0x00}, WithDescriptors(table), WithSurface(surface))
	if err := g.Run(); !errors.Is(err, opcodes.ErrMalformedTable) {
		t.Fatalf("expected ErrMalformedTable, got %v", err)
	}
	if g.Steps() != 0 {
		t.Errorf("expected no steps, got %d", g.Steps())
	}
	if g.CPU.PC != 0x0000 {
		t.Errorf("expected PC to stay at 0x0000, got 0x%04X", g.CPU.PC)
	}
	if surface.IsOpen() || surface.Frames() != 0 {
		t.Errorf("expected the display to never open")
	}
}
