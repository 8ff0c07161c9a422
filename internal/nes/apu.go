package nes

const apuRegisterCount = 0x20

// APU is an addressable stub for the audio and I/O register block at
// $4000-$401F. Registers hold their last written value; nothing is
// synthesized from them yet.
type APU struct {
	regs [apuRegisterCount]uint8
}

func NewAPU() *APU {
	return &APU{}
}

// readRegister expects an index relative to the start of the block.
func (a APU) readRegister(idx uint16) uint8 {
	return a.regs[idx]
}

func (a *APU) writeRegister(idx uint16, data uint8) {
	a.regs[idx] = data
}
