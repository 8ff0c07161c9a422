package cpu

import (
	"errors"
	"fmt"
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, always set
	flagV                    // Overflow
	flagN                    // Negative
)

const (
	resetVectorLo = uint16(0xFFFC)
	resetVectorHi = uint16(0xFFFD)

	opcodeBRK = uint8(0x00)
)

// ErrBreak reports that the CPU fetched a BRK opcode. It signals deliberate
// program termination, not a fault; drivers stop stepping when they see it.
var ErrBreak = errors.New("break")

// ErrInvalidOpcode matches any InvalidOpcodeError through errors.Is.
var ErrInvalidOpcode = errors.New("invalid opcode")

// InvalidOpcodeError reports a fetched byte with no instruction definition.
// The program counter is left past the bad byte and the queue stays empty,
// so the caller decides whether to halt or resynchronize.
type InvalidOpcodeError struct {
	Opcode uint8
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %02X", e.Opcode)
}

func (e *InvalidOpcodeError) Is(target error) bool {
	return target == ErrInvalidOpcode
}

// ReadWriter is the memory surface the CPU drives. The system bus
// implements it.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// CPU is a cycle-stepped MOS 6502 core. Instructions execute as queued
// micro-operations, one per Step call, so the driver observes every cycle
// including address-assembly and page-cross stalls.
type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	// hidden latches assembled byte at a time by micro-operations
	dataLatch uint8
	zpgAddr   uint8
	absAddr   uint16

	queue opQueue

	mem    ReadWriter
	instrs [0x100]instruction

	totalCycles uint64
}

func NewCPU(mem ReadWriter) *CPU {
	return &CPU{
		mem:    mem,
		instrs: instructionTable(),
	}
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

// Reset restores the power-on state. The program counter is assembled from
// the reset vector, high byte first, read through the bus; the stack pointer
// takes its defined power-on value; every status flag clears except the
// always-set Unused bit. Any in-flight instruction is abandoned.
//
// An unloaded cartridge yields vector bytes of zero and a useless program
// counter, so callers load one first if correctness matters.
func (c *CPU) Reset() error {
	hi := uint16(c.read8(resetVectorHi))
	lo := uint16(c.read8(resetVectorLo))
	c.pc = hi<<8 | lo

	c.p = flagU
	c.sp = 0xFD

	c.dataLatch = 0
	c.zpgAddr = 0
	c.absAddr = 0
	c.queue.reset()
	c.totalCycles = 0
	return nil
}

// Step advances the CPU by exactly one clock cycle.
//
// Mid-instruction, the front of the pending queue runs and nothing else
// happens. At an instruction boundary the next opcode is fetched and its
// micro-operations are queued; the fetch itself consumes the cycle. Fetching
// BRK reports ErrBreak. Fetching an undefined byte reports
// InvalidOpcodeError carrying that byte.
func (c *CPU) Step() error {
	c.totalCycles++

	if op, ok := c.queue.popFront(); ok {
		op(c)
		return nil
	}

	opcode := c.fetch8()
	if opcode == opcodeBRK {
		return ErrBreak
	}
	instr := c.instrs[opcode]
	if !instr.defined() {
		return &InvalidOpcodeError{Opcode: opcode}
	}
	for _, op := range instr.ops {
		c.queue.pushBack(op)
	}
	return nil
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// AtInstructionBoundary reports whether the next Step fetches a new opcode
// rather than continuing the current instruction.
func (c *CPU) AtInstructionBoundary() bool {
	return c.queue.len() == 0
}

// TotalCycles returns the number of cycles stepped since the last reset.
func (c *CPU) TotalCycles() uint64 {
	return c.totalCycles
}
