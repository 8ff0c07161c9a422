package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Disassemble(t *testing.T) {
	mem := new(flatMem)
	mem.load(0x0200,
		0xA9, 0x45, // LDA #$45
		0x85, 0x00, // STA $00
		0xBD, 0x34, 0x12, // LDA $1234,X
		0xB1, 0x20, // LDA ($20),Y
		0x00, // BRK
		0xAA, // TAX
	)
	mem.mem[0x0300] = 0x02

	cpu := NewCPU(mem)
	disasm := cpu.Disassemble(0x0200, 0x0300)

	assert.Equal(t, "$0200: LDA #$45 {IMM}", disasm[0x0200])
	assert.Equal(t, "$0202: STA $00 {ZP}", disasm[0x0202])
	assert.Equal(t, "$0204: LDA $1234,X {ABSX}", disasm[0x0204])
	assert.Equal(t, "$0207: LDA ($20),Y {INDY}", disasm[0x0207])
	assert.Equal(t, "$0209: BRK {IMP}", disasm[0x0209])
	assert.Equal(t, "$020A: TAX {IMP}", disasm[0x020A])
	assert.Equal(t, "$0300: ???", disasm[0x0300])

	// Operand bytes are consumed by their instruction, not listed.
	assert.NotContains(t, disasm, uint16(0x0201))
	assert.NotContains(t, disasm, uint16(0x0205))
}
