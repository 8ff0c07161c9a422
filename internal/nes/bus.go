package nes

import (
	"log"

	"github.com/pgattic/famicore/internal/cart"
)

// $0000-$07FF: 2 KiB of internal work RAM
// $0800-$1FFF: mirrors of $0000-$07FF
// $2000-$2007: PPU registers
// $2008-$3FFF: mirrors of $2000-$2007 (every 8 bytes)
// $4000-$401F: APU and I/O registers
// $4020-$FFFF: cartridge space
type Bus struct {
	ram  *WorkRAM
	ppu  *PPU
	apu  *APU
	cart *cart.Cartridge
}

func NewBus() *Bus {
	return &Bus{
		ram: NewWorkRAM(),
		ppu: NewPPU(),
		apu: NewAPU(),
	}
}

func (b *Bus) LoadCart(c *cart.Cartridge) {
	b.cart = c
}

// Read8 routes addr to exactly one backing device. Reads in the
// cartridge range with no cartridge loaded fall back to 0.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read8(addr)
	case addr < 0x4000:
		return b.ppu.readRegister(addr & 0x0007)
	case addr < 0x4020:
		return b.apu.readRegister(addr - 0x4000)
	}

	if b.cart == nil {
		log.Printf("bus: read %#04x with no cartridge loaded", addr)
		return 0
	}
	return b.cart.Read8(addr)
}

func (b *Bus) Write8(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		b.ram.Write8(addr, data)
	case addr < 0x4000:
		b.ppu.writeRegister(addr&0x0007, data)
	case addr < 0x4020:
		b.apu.writeRegister(addr-0x4000, data)
	default:
		if b.cart == nil {
			log.Printf("bus: write %#04x with no cartridge loaded", addr)
			return
		}
		b.cart.Write8(addr, data)
	}
}
