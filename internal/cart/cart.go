package cart

import (
	"errors"
	"fmt"
	"log"
	"os"
)

const (
	// PRG is mapped linearly into the CPU address space from here.
	prgWindowBase = 0x8000

	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	trainerSizeBytes = 512
)

var ErrOutOfBounds = errors.New("out of bounds")

// Cartridge owns the parsed header and raw program storage. The base
// cartridge has no mapper hardware: PRG sits in a flat window at
// prgWindowBase and writes are ignored.
type Cartridge struct {
	header Header
	prg    []uint8
	chr    []uint8
}

// New wraps an already-parsed header and its PRG bytes.
func New(header Header, prg []uint8) *Cartridge {
	return &Cartridge{
		header: header,
		prg:    append([]uint8(nil), prg...),
	}
}

// FromBytes parses a whole iNES image: header, optional 512-byte
// trainer, PRG banks, then CHR banks.
func FromBytes(image []byte) (*Cartridge, error) {
	header, err := ParseHeader(image)
	if err != nil {
		return nil, err
	}

	offset := HeaderSize
	if header.Trainer {
		offset += trainerSizeBytes
	}

	// Bank counts from exponent-form headers can be large enough to
	// overflow the byte math below, so they are bounded by the image
	// length first.
	if len(image) < offset ||
		header.PRGSize > uint64(len(image)-offset)/prgBankSizeBytes ||
		header.CHRSize > uint64(len(image)-offset)/chrBankSizeBytes {
		return nil, fmt.Errorf("%w: image holds %d bytes, header declares %d PRG and %d CHR banks",
			ErrOutOfBounds, len(image), header.PRGSize, header.CHRSize)
	}

	prgLen := int(header.PRGSize) * prgBankSizeBytes
	chrLen := int(header.CHRSize) * chrBankSizeBytes
	if len(image) < offset+prgLen+chrLen {
		return nil, fmt.Errorf("%w: image holds %d bytes, PRG+CHR need %d",
			ErrOutOfBounds, len(image), offset+prgLen+chrLen)
	}

	cart := New(header, image[offset:offset+prgLen])
	cart.chr = append([]uint8(nil), image[offset+prgLen:offset+prgLen+chrLen]...)
	return cart, nil
}

// FromFile reads a .nes image from disk.
func FromFile(path string) (*Cartridge, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the file: %s", err)
	}
	return FromBytes(image)
}

func (c *Cartridge) Header() Header {
	return c.header
}

// PRGRange returns the first and last CPU addresses backed by the
// loaded PRG bytes.
func (c *Cartridge) PRGRange() (lo, hi uint16) {
	last := prgWindowBase + len(c.prg) - 1
	if last > 0xFFFF {
		last = 0xFFFF
	}
	return prgWindowBase, uint16(last)
}

// Read8 returns the PRG byte mapped at addr. Reads outside the mapped
// window log the address and return 0.
func (c *Cartridge) Read8(addr uint16) uint8 {
	if addr < prgWindowBase {
		log.Printf("cart: read below the PRG window: %#04x", addr)
		return 0
	}
	idx := int(addr) - prgWindowBase
	if idx >= len(c.prg) {
		log.Printf("cart: read past the end of PRG: %#04x", addr)
		return 0
	}
	return c.prg[idx]
}

// Write8 is a no-op: the base cartridge has no writable storage.
func (c *Cartridge) Write8(addr uint16, data uint8) {
	log.Printf("cart: ignored write %#02x at %#04x", data, addr)
}
