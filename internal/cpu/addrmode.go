package cpu

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandSize returns the number of operand bytes following the opcode.
func (mode addrMode) operandSize() int {
	switch mode {
	case addrModeIMM, addrModeZP, addrModeZPX, addrModeZPY, addrModeINDX, addrModeINDY:
		return 1
	case addrModeABS, addrModeABSX, addrModeABSY:
		return 2
	}
	return 0
}
