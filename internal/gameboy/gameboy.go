// Package gameboy wires the memory bus, the CPU and the PPU together and
// drives them in lockstep.
package gameboy

import (
	"github.com/thelolagemann/gblite/internal/cpu"
	"github.com/thelolagemann/gblite/internal/mmu"
	"github.com/thelolagemann/gblite/internal/opcodes"
	"github.com/thelolagemann/gblite/internal/ppu"
	"github.com/thelolagemann/gblite/pkg/display"
	"github.com/thelolagemann/gblite/pkg/display/headless"
	"github.com/thelolagemann/gblite/pkg/log"
)

// GameBoy owns the memory bus, the CPU, the PPU and the display surface
// frames are presented on.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	log.Logger

	surface display.Surface
	table   *opcodes.Table

	resetVector  uint16
	stackPointer uint16
	trace        bool
	maxSteps     uint64

	steps uint64
}

// NewGameBoy returns a new GameBoy with image loaded at the start of the
// address space.
func NewGameBoy(image []byte, opts ...Opt) *GameBoy {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.surface == nil {
		g.surface = headless.New(0)
	}

	g.MMU = mmu.NewMMU(nil)
	g.MMU.Log = g.Logger
	g.MMU.Load(image)

	g.CPU = cpu.NewCPU(g.MMU, g.table)
	g.CPU.Log = g.Logger
	g.CPU.Trace = g.trace
	g.CPU.Reset(g.resetVector, g.stackPointer)

	g.PPU = ppu.New(g.MMU, g.surface)
	g.PPU.Log = g.Logger

	return g
}

// Surface returns the display surface frames are presented on.
func (g *GameBoy) Surface() display.Surface {
	return g.surface
}

// Steps returns the number of instructions executed.
func (g *GameBoy) Steps() uint64 {
	return g.steps
}

// Step executes a single instruction and advances the PPU by its cycle
// cost. It reports whether emulation may continue.
func (g *GameBoy) Step() bool {
	ok := g.CPU.Process()
	if g.CPU.Cycles() > 0 {
		g.steps++
		g.PPU.Step(int(g.CPU.Cycles()))
	}
	return ok && g.PPU.IsRunning()
}

// Run opens the display surface, starts the PPU and steps until the CPU
// halts or faults, the display closes, or the step limit is reached. It
// returns nil when the display was closed or the step limit was reached,
// and otherwise the reason the CPU stopped.
func (g *GameBoy) Run() error {
	// a rejected descriptor table faults the cpu before the first step
	if g.CPU.State() == cpu.Faulted {
		return g.CPU.Err()
	}

	if err := g.surface.Open(ppu.ScreenWidth, ppu.ScreenHeight); err != nil {
		return err
	}
	defer func() {
		if err := g.surface.Close(); err != nil {
			g.Warnf("closing display: %v", err)
		}
	}()

	g.Infof("starting emulation at 0x%04X", g.CPU.PC)
	g.PPU.Start()

	for g.Step() {
		if g.maxSteps > 0 && g.steps >= g.maxSteps {
			g.Infof("stopping after %d steps", g.steps)
			return nil
		}
	}

	if g.CPU.State() != cpu.Running {
		return g.CPU.Err()
	}

	g.Infof("display closed after %d steps", g.steps)
	return nil
}
