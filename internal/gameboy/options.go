package gameboy

import (
	"github.com/thelolagemann/gblite/internal/opcodes"
	"github.com/thelolagemann/gblite/pkg/display"
	"github.com/thelolagemann/gblite/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithDescriptors decodes instructions using the given table instead of
// the built-in descriptors.
func WithDescriptors(table *opcodes.Table) Opt {
	return func(gb *GameBoy) {
		gb.table = table
	}
}

// WithResetVector sets the address execution starts at.
func WithResetVector(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.resetVector = pc
	}
}

// WithStackPointer sets the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(gb *GameBoy) {
		gb.stackPointer = sp
	}
}

// WithTrace logs every executed instruction at the debug level.
func WithTrace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}

// WithMaxSteps stops Run after n instructions. 0 means no limit.
func WithMaxSteps(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.maxSteps = n
	}
}

func WithSurface(s display.Surface) Opt {
	return func(gb *GameBoy) {
		gb.surface = s
	}
}
