// Package mmu provides the memory bus shared by the CPU and the PPU. The
// whole 16-bit address space (ROM, video RAM, OAM, I/O registers, work
// RAM and the stack) is backed by a single flat byte image.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gblite/internal/types"
	"github.com/thelolagemann/gblite/pkg/log"
	"github.com/thelolagemann/gblite/pkg/utils"
)

// Size is the size of the address space.
const Size = 0x10000

// Client identifies the component performing a memory access, so that
// accesses can later be restricted per component (e.g. VRAM lockout
// while the PPU is drawing).
type Client uint8

const (
	// ClientCPU is the instruction interpreter.
	ClientCPU Client = iota
	// ClientPPU is the video timing state machine.
	ClientPPU
)

// String implements fmt.Stringer.
func (c Client) String() string {
	switch c {
	case ClientCPU:
		return "CPU"
	case ClientPPU:
		return "PPU"
	}
	return fmt.Sprintf("Client(%d)", uint8(c))
}

// IOBus is the interface used by the CPU to access memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory bus. It is created once from a program image and
// shared by reference between the CPU and the PPU.
type MMU struct {
	raw [Size]uint8

	Log log.Logger
}

var _ IOBus = (*MMU)(nil)

// NewMMU returns a new MMU with image loaded at address 0x0000. A nil or
// empty image leaves every address reading as zero.
func NewMMU(image []byte) *MMU {
	m := &MMU{
		Log: log.NewNullLogger(),
	}
	m.Load(image)

	return m
}

// Load copies image into the address space starting at 0x0000. Bytes
// beyond the end of the address space are discarded.
func (m *MMU) Load(image []byte) {
	if len(image) > int(types.ROMEnd)+1 {
		m.Log.Warnf("program image is %d bytes, larger than the %d byte ROM region", len(image), int(types.ROMEnd)+1)
	}
	if len(image) > Size {
		m.Log.Warnf("truncating program image to %d bytes", Size)
	}
	copy(m.raw[:], image)
}

// Get returns the value at the given address on behalf of client.
func (m *MMU) Get(address uint16, client Client) uint8 {
	return m.raw[address]
}

// Set writes value to the given address on behalf of client.
func (m *MMU) Set(address uint16, value uint8, client Client) {
	m.raw[address] = value
}

// Read returns the value at the given address as seen by the CPU.
func (m *MMU) Read(address uint16) uint8 {
	return m.Get(address, ClientCPU)
}

// Write writes value to the given address on behalf of the CPU.
func (m *MMU) Write(address uint16, value uint8) {
	m.Set(address, value, ClientCPU)
}

// Read16 returns the little-endian 16-bit value stored at address and
// address+1. The second address wraps around the address space.
func (m *MMU) Read16(address uint16) uint16 {
	return utils.JoinUint16(m.Read(address), m.Read(address+1))
}

// Write16 stores value little-endian at address and address+1.
func (m *MMU) Write16(address uint16, value uint16) {
	low, high := utils.SplitUint16(value)
	m.Write(address, low)
	m.Write(address+1, high)
}

// Region returns a copy of the bytes in [start, end], end inclusive, as
// seen by client.
func (m *MMU) Region(start, end uint16, client Client) []byte {
	if end < start {
		return nil
	}
	region := make([]byte, int(end-start)+1)
	for i := range region {
		region[i] = m.Get(start+uint16(i), client)
	}
	return region
}
