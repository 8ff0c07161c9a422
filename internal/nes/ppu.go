package nes

// PPU is an addressable stub for the picture unit's register window at
// $2000-$3FFF. Registers hold their last written value; there is no
// rendering pipeline behind them yet.
type PPU struct {
	ppuctrl   uint8
	ppumask   uint8
	ppustatus uint8
	oamaddr   uint8
	oamdata   uint8
	ppuscroll uint8
	ppuaddr   uint8
	ppudata   uint8
}

func NewPPU() *PPU {
	return &PPU{}
}

// readRegister expects addr already masked into the 8-byte window.
func (p PPU) readRegister(addr uint16) uint8 {
	switch addr {
	case 0x0:
		return p.ppuctrl
	case 0x1:
		return p.ppumask
	case 0x2:
		return p.ppustatus
	case 0x3:
		return p.oamaddr
	case 0x4:
		return p.oamdata
	case 0x5:
		return p.ppuscroll
	case 0x6:
		return p.ppuaddr
	case 0x7:
		return p.ppudata
	}
	return 0
}

func (p *PPU) writeRegister(addr uint16, data uint8) {
	switch addr {
	case 0x0:
		p.ppuctrl = data
	case 0x1:
		p.ppumask = data
	case 0x2:
		p.ppustatus = data
	case 0x3:
		p.oamaddr = data
	case 0x4:
		p.oamdata = data
	case 0x5:
		p.ppuscroll = data
	case 0x6:
		p.ppuaddr = data
	case 0x7:
		p.ppudata = data
	}
}
