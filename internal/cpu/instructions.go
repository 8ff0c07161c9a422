package cpu

// instruction describes one opcode: a mnemonic and addressing mode for
// diagnostics, and the ordered micro-operations the decode step feeds the
// queue. One micro-operation per clock cycle, the implicit fetch cycle
// excluded. An empty list marks the opcode undefined.
type instruction struct {
	name string
	mode addrMode
	ops  []microOp
}

func (in instruction) defined() bool {
	return len(in.ops) > 0
}

// instructionTable builds the full opcode table. BRK carries a named entry
// with no micro-operations: Step intercepts it at fetch time and reports
// ErrBreak instead of decoding.
func instructionTable() [0x100]instruction {
	def := func(name string, mode addrMode, ops ...microOp) instruction {
		return instruction{name: name, mode: mode, ops: ops}
	}

	var instrs [0x100]instruction

	instrs[0x00] = def("BRK", addrModeIMP)
	instrs[0x81] = def("STA", addrModeINDX, (*CPU).immZP, (*CPU).addXZP, (*CPU).indLo, (*CPU).indHi, (*CPU).staAbs)
	instrs[0x84] = def("STY", addrModeZP, (*CPU).immZP, (*CPU).styZP)
	instrs[0x85] = def("STA", addrModeZP, (*CPU).immZP, (*CPU).staZP)
	instrs[0x86] = def("STX", addrModeZP, (*CPU).immZP, (*CPU).stxZP)
	instrs[0x8A] = def("TXA", addrModeIMP, (*CPU).txa)
	instrs[0x8C] = def("STY", addrModeABS, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).styAbs)
	instrs[0x8D] = def("STA", addrModeABS, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).staAbs)
	instrs[0x8E] = def("STX", addrModeABS, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).stxAbs)
	instrs[0x91] = def("STA", addrModeINDY, (*CPU).immZP, (*CPU).indLo, (*CPU).indHi, (*CPU).addYAbs, (*CPU).staAbs)
	instrs[0x94] = def("STY", addrModeZPX, (*CPU).immZP, (*CPU).addXZP, (*CPU).styZP)
	instrs[0x95] = def("STA", addrModeZPX, (*CPU).immZP, (*CPU).addXZP, (*CPU).staZP)
	instrs[0x96] = def("STX", addrModeZPY, (*CPU).immZP, (*CPU).addYZP, (*CPU).stxZP)
	instrs[0x98] = def("TYA", addrModeIMP, (*CPU).tya)
	instrs[0x99] = def("STA", addrModeABSY, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).addYAbs, (*CPU).staAbs)
	instrs[0x9D] = def("STA", addrModeABSX, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).addXAbs, (*CPU).staAbs)
	instrs[0xA0] = def("LDY", addrModeIMM, (*CPU).immY)
	instrs[0xA1] = def("LDA", addrModeINDX, (*CPU).immZP, (*CPU).addXZP, (*CPU).indLo, (*CPU).indHi, (*CPU).ldaAbs)
	instrs[0xA2] = def("LDX", addrModeIMM, (*CPU).immX)
	instrs[0xA4] = def("LDY", addrModeZP, (*CPU).immZP, (*CPU).ldyZP)
	instrs[0xA5] = def("LDA", addrModeZP, (*CPU).immZP, (*CPU).ldaZP)
	instrs[0xA6] = def("LDX", addrModeZP, (*CPU).immZP, (*CPU).ldxZP)
	instrs[0xA8] = def("TAY", addrModeIMP, (*CPU).tay)
	instrs[0xA9] = def("LDA", addrModeIMM, (*CPU).immA)
	instrs[0xAA] = def("TAX", addrModeIMP, (*CPU).tax)
	instrs[0xAC] = def("LDY", addrModeABS, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldyAbs)
	instrs[0xAD] = def("LDA", addrModeABS, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldaAbs)
	instrs[0xAE] = def("LDX", addrModeABS, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldxAbs)
	instrs[0xB1] = def("LDA", addrModeINDY, (*CPU).immZP, (*CPU).indLo, (*CPU).indHi, (*CPU).ldaAbsY)
	instrs[0xB4] = def("LDY", addrModeZPX, (*CPU).immZP, (*CPU).addXZP, (*CPU).ldyZP)
	instrs[0xB5] = def("LDA", addrModeZPX, (*CPU).immZP, (*CPU).addXZP, (*CPU).ldaZP)
	instrs[0xB6] = def("LDX", addrModeZPY, (*CPU).immZP, (*CPU).addYZP, (*CPU).ldxZP)
	instrs[0xB9] = def("LDA", addrModeABSY, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldaAbsY)
	instrs[0xBC] = def("LDY", addrModeABSX, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldyAbsX)
	instrs[0xBD] = def("LDA", addrModeABSX, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldaAbsX)
	instrs[0xBE] = def("LDX", addrModeABSY, (*CPU).immAbsLo, (*CPU).immAbsHi, (*CPU).ldxAbsY)
	instrs[0xEA] = def("NOP", addrModeIMP, (*CPU).nop)

	return instrs
}
