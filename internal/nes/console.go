package nes

import (
	"github.com/pgattic/famicore/internal/cart"
	"github.com/pgattic/famicore/internal/cpu"
)

// Console wires the CPU to the bus and drives it one clock cycle at a
// time. It is not safe for concurrent use; a single driver owns it.
type Console struct {
	bus *Bus
	cpu *cpu.CPU

	paused bool
}

func NewConsole() *Console {
	bus := NewBus()
	return &Console{
		bus: bus,
		cpu: cpu.NewCPU(bus),
	}
}

// LoadCart attaches a cartridge and resets the CPU so the program
// counter picks up the cartridge's reset vector.
func (c *Console) LoadCart(crt *cart.Cartridge) error {
	c.bus.LoadCart(crt)
	return c.cpu.Reset()
}

func (c *Console) Reset() error {
	return c.cpu.Reset()
}

// Step advances the CPU by one clock cycle.
func (c *Console) Step() error {
	return c.cpu.Step()
}

// StepInstruction steps until the CPU is back at an instruction
// boundary, so exactly one whole instruction executes.
func (c *Console) StepInstruction() error {
	if err := c.cpu.Step(); err != nil {
		return err
	}
	for !c.cpu.AtInstructionBoundary() {
		if err := c.cpu.Step(); err != nil {
			return err
		}
	}
	return nil
}

// AtInstructionBoundary reports whether the next Step call fetches a
// new opcode.
func (c *Console) AtInstructionBoundary() bool {
	return c.cpu.AtInstructionBoundary()
}

func (c *Console) Paused() bool {
	return c.paused
}

func (c *Console) SetPaused(paused bool) {
	c.paused = paused
}

func (c *Console) DebugInfo() cpu.DebugInfo {
	return c.cpu.DebugInfo()
}

// Disassemble decodes the loaded PRG window into per-address listing
// lines. Returns nil when no cartridge is loaded.
func (c *Console) Disassemble() map[uint16]string {
	if c.bus.cart == nil {
		return nil
	}
	lo, hi := c.bus.cart.PRGRange()
	return c.cpu.Disassemble(lo, hi)
}

// Peek8 reads through the bus without touching CPU state.
func (c *Console) Peek8(addr uint16) uint8 {
	return c.bus.Read8(addr)
}
