package cpu

import "fmt"

// Disassemble decodes the bytes from start through end into a map of
// instruction addresses and their rendered form. Bytes with no
// definition render as ???. Reads go through the bus, so callers should
// keep the range inside side-effect-free regions.
func (c *CPU) Disassemble(start, end uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	addr := uint32(start)
	for addr <= uint32(end) {
		pc := uint16(addr)
		opcode := c.read8(pc)
		instr := c.instrs[opcode]
		if instr.name == "" {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}

		var operand uint16
		switch instr.mode.operandSize() {
		case 1:
			operand = uint16(c.read8(pc + 1))
		case 2:
			operand = uint16(c.read8(pc+1)) | uint16(c.read8(pc+2))<<8
		}

		var text string
		switch instr.mode {
		case addrModeIMM:
			text = fmt.Sprintf("%s #$%02X", instr.name, operand)
		case addrModeZP:
			text = fmt.Sprintf("%s $%02X", instr.name, operand)
		case addrModeZPX:
			text = fmt.Sprintf("%s $%02X,X", instr.name, operand)
		case addrModeZPY:
			text = fmt.Sprintf("%s $%02X,Y", instr.name, operand)
		case addrModeABS:
			text = fmt.Sprintf("%s $%04X", instr.name, operand)
		case addrModeABSX:
			text = fmt.Sprintf("%s $%04X,X", instr.name, operand)
		case addrModeABSY:
			text = fmt.Sprintf("%s $%04X,Y", instr.name, operand)
		case addrModeINDX:
			text = fmt.Sprintf("%s ($%02X,X)", instr.name, operand)
		case addrModeINDY:
			text = fmt.Sprintf("%s ($%02X),Y", instr.name, operand)
		default:
			text = instr.name
		}
		disasm[pc] = fmt.Sprintf("$%04X: %s {%s}", pc, text, instr.mode)

		addr += 1 + uint32(instr.mode.operandSize())
	}

	return disasm
}
