package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgattic/famicore/internal/cart"
	"github.com/pgattic/famicore/internal/cpu"
)

// demoCart builds a 32 KiB flat cartridge whose reset vector points at
// a short store-and-halt program:
//
//	LDA #$45
//	STA $00
//	BRK
func demoCart(program ...uint8) *cart.Cartridge {
	prg := make([]uint8, 2*0x4000)
	if len(program) == 0 {
		program = []uint8{0xA9, 0x45, 0x85, 0x00, 0x00}
	}
	copy(prg, program)
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80
	return cart.New(cart.Header{PRGSize: 2}, prg)
}

func Test_Console_DemoProgram(t *testing.T) {
	console := NewConsole()

	err := console.LoadCart(demoCart())
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8000), console.DebugInfo().PC, "reset vector")

	// LDA #$45 takes 2 cycles, STA $00 takes 3.
	for i := 0; i < 5; i++ {
		assert.NoError(t, console.Step(), "cycle %d", i)
	}

	assert.Equal(t, uint8(0x45), console.Peek8(0x0000), "stored value")
	assert.ErrorIs(t, console.Step(), cpu.ErrBreak)
}

func Test_Console_StepInstruction(t *testing.T) {
	console := NewConsole()

	err := console.LoadCart(demoCart())
	assert.NoError(t, err)

	assert.NoError(t, console.StepInstruction())
	info := console.DebugInfo()
	assert.Equal(t, uint8(0x45), info.A, "A register")
	assert.Equal(t, uint16(0x8002), info.PC, "PC")

	assert.NoError(t, console.StepInstruction())
	assert.Equal(t, uint8(0x45), console.Peek8(0x0000), "stored value")

	assert.ErrorIs(t, console.StepInstruction(), cpu.ErrBreak)
}

func Test_Console_InvalidOpcode(t *testing.T) {
	console := NewConsole()

	err := console.LoadCart(demoCart(0x02))
	assert.NoError(t, err)

	var invalid *cpu.InvalidOpcodeError
	assert.ErrorAs(t, console.Step(), &invalid)
	assert.Equal(t, uint8(0x02), invalid.Opcode)
}

func Test_Console_Reset(t *testing.T) {
	console := NewConsole()

	err := console.LoadCart(demoCart())
	assert.NoError(t, err)
	assert.NoError(t, console.Step())
	assert.NoError(t, console.Step())

	assert.NoError(t, console.Reset())
	info := console.DebugInfo()
	assert.Equal(t, uint16(0x8000), info.PC, "PC")
	assert.Equal(t, uint64(0), info.Cycles, "cycle counter")
}

func Test_Console_Pause(t *testing.T) {
	console := NewConsole()

	assert.False(t, console.Paused())
	console.SetPaused(true)
	assert.True(t, console.Paused())
	console.SetPaused(false)
	assert.False(t, console.Paused())
}

func Test_Console_Disassemble(t *testing.T) {
	console := NewConsole()

	err := console.LoadCart(demoCart())
	assert.NoError(t, err)

	disasm := console.Disassemble()
	assert.Equal(t, "$8000: LDA #$45 {IMM}", disasm[0x8000])
	assert.Equal(t, "$8002: STA $00 {ZP}", disasm[0x8002])
}
