package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Documented cycle counts for every implemented opcode. The table
// stores one micro op per cycle after the fetch, so an N-cycle
// instruction carries N-1 ops.
var expectedCycles = map[uint8]int{
	0x81: 6, // STA (zp,X)
	0x84: 3, // STY zp
	0x85: 3, // STA zp
	0x86: 3, // STX zp
	0x8A: 2, // TXA
	0x8C: 4, // STY abs
	0x8D: 4, // STA abs
	0x8E: 4, // STX abs
	0x91: 6, // STA (zp),Y
	0x94: 4, // STY zp,X
	0x95: 4, // STA zp,X
	0x96: 4, // STX zp,Y
	0x98: 2, // TYA
	0x99: 5, // STA abs,Y
	0x9D: 5, // STA abs,X
	0xA0: 2, // LDY #imm
	0xA1: 6, // LDA (zp,X)
	0xA2: 2, // LDX #imm
	0xA4: 3, // LDY zp
	0xA5: 3, // LDA zp
	0xA6: 3, // LDX zp
	0xA8: 2, // TAY
	0xA9: 2, // LDA #imm
	0xAA: 2, // TAX
	0xAC: 4, // LDY abs
	0xAD: 4, // LDA abs
	0xAE: 4, // LDX abs
	0xB1: 5, // LDA (zp),Y
	0xB4: 4, // LDY zp,X
	0xB5: 4, // LDA zp,X
	0xB6: 4, // LDX zp,Y
	0xB9: 4, // LDA abs,Y
	0xBC: 4, // LDY abs,X
	0xBD: 4, // LDA abs,X
	0xBE: 4, // LDX abs,Y
	0xEA: 2, // NOP
}

func Test_instructionTable_Cycles(t *testing.T) {
	table := instructionTable()

	for opcode, cycles := range expectedCycles {
		in := table[opcode]
		assert.True(t, in.defined(), "opcode %02X", opcode)
		assert.Equal(t, cycles-1, len(in.ops), "opcode %02X", opcode)
	}
}

func Test_instructionTable_OpsFitQueue(t *testing.T) {
	table := instructionTable()

	for opcode := 0; opcode < len(table); opcode++ {
		assert.LessOrEqual(t, len(table[opcode].ops), maxInstrOps, "opcode %02X", opcode)
	}
}

func Test_instructionTable_Break(t *testing.T) {
	table := instructionTable()

	in := table[opcodeBRK]
	assert.Equal(t, "BRK", in.name)
	assert.False(t, in.defined(), "BRK is intercepted before decode")
}

func Test_instructionTable_Undefined(t *testing.T) {
	table := instructionTable()

	for opcode := 0; opcode < len(table); opcode++ {
		if _, ok := expectedCycles[uint8(opcode)]; ok {
			continue
		}
		if uint8(opcode) == opcodeBRK {
			continue
		}
		assert.False(t, table[opcode].defined(), "opcode %02X", opcode)
		assert.Empty(t, table[opcode].name, "opcode %02X", opcode)
	}
}

func Test_instructionTable_Modes(t *testing.T) {
	table := instructionTable()

	type testArgs struct {
		opcode   uint8
		expected addrMode
	}

	tests := []testArgs{
		{opcode: 0xA9, expected: addrModeIMM},
		{opcode: 0xA5, expected: addrModeZP},
		{opcode: 0xB5, expected: addrModeZPX},
		{opcode: 0xB6, expected: addrModeZPY},
		{opcode: 0xAD, expected: addrModeABS},
		{opcode: 0xBD, expected: addrModeABSX},
		{opcode: 0xB9, expected: addrModeABSY},
		{opcode: 0xA1, expected: addrModeINDX},
		{opcode: 0xB1, expected: addrModeINDY},
		{opcode: 0xAA, expected: addrModeIMP},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table[tt.opcode].mode, "opcode %02X", tt.opcode)
	}
}
