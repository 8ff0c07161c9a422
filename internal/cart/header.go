package cart

import (
	"errors"
	"fmt"
)

// HeaderSize is the fixed length of an iNES image header.
const HeaderSize = 16

const sizeExponentSentinel = 0x0F

var ErrInvalidHeader = errors.New("invalid header")

// NametableLayout is the hard-wired nametable arrangement bit.
type NametableLayout uint8

const (
	NametableVertical NametableLayout = iota
	NametableHorizontal
)

func (l NametableLayout) String() string {
	switch l {
	case NametableVertical:
		return "vertical"
	case NametableHorizontal:
		return "horizontal"
	}
	return "unknown"
}

// ConsoleType tells which machine the image targets.
type ConsoleType uint8

const (
	ConsoleNES ConsoleType = iota
	ConsoleVsSystem
	ConsolePlaychoice
	ConsoleExtended
)

func (c ConsoleType) String() string {
	switch c {
	case ConsoleNES:
		return "NES/Famicom"
	case ConsoleVsSystem:
		return "Vs. System"
	case ConsolePlaychoice:
		return "Playchoice-10"
	case ConsoleExtended:
		return "extended"
	}
	return "unknown"
}

// TimingMode is the CPU/PPU region timing.
type TimingMode uint8

const (
	TimingNTSC TimingMode = iota
	TimingPAL
	TimingMulti
	TimingDendy
)

func (m TimingMode) String() string {
	switch m {
	case TimingNTSC:
		return "NTSC"
	case TimingPAL:
		return "PAL"
	case TimingMulti:
		return "multi-region"
	case TimingDendy:
		return "Dendy"
	}
	return "unknown"
}

// Header is the decoded form of the 16-byte iNES/NES 2.0 image header.
//
// Byte 0-3: magic 'N','E','S',0x1A
// Byte 4:   PRG-ROM banks (16 KiB units), or exponent form, see romSize
// Byte 5:   CHR-ROM banks (8 KiB units), or exponent form
// Byte 6:   mapper low nibble, nametable bit, battery/trainer/alt flags
// Byte 7:   mapper mid nibble, console type, NES 2.0 indicator
// Byte 8:   mapper high nibble, submapper
// Byte 9:   PRG/CHR size extension nibbles
// Byte 12:  timing mode
// Byte 13:  console type payload
type Header struct {
	PRGSize uint64
	CHRSize uint64
	Mapper  uint16
	NES2    bool

	Battery       bool
	Trainer       bool
	AltNametables bool
	Nametables    NametableLayout

	Console      ConsoleType
	VsPPU        uint8
	VsHardware   uint8
	ExtendedType uint8

	Timing TimingMode
}

// ParseHeader decodes the header at the start of data. It never mutates
// data and needs only the first HeaderSize bytes.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidHeader, HeaderSize, len(data))
	}
	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1A {
		return Header{}, fmt.Errorf("%w: bad magic", ErrInvalidHeader)
	}

	h := Header{
		PRGSize: romSize(data[4], data[9]&0x0F),
		CHRSize: romSize(data[5], data[9]>>4),
		Mapper:  uint16(data[6]>>4) | uint16(data[7]&0xF0) | uint16(data[8]&0x0F)<<8,
		NES2:    data[7]&0x0C == 0x08,

		Battery:       data[6]&0x02 != 0,
		Trainer:       data[6]&0x04 != 0,
		AltNametables: data[6]&0x08 != 0,
		Nametables:    NametableLayout(data[6] & 0x01),

		Console: ConsoleType(data[7] & 0x03),
		Timing:  TimingMode(data[12] & 0x03),
	}

	switch h.Console {
	case ConsoleVsSystem:
		h.VsPPU = data[13] & 0x0F
		h.VsHardware = data[13] >> 4
	case ConsoleExtended:
		h.ExtendedType = data[13] & 0x0F
	}

	return h, nil
}

// romSize decodes a bank count from its count byte and size-extension
// nibble. A nibble of 0x0F selects the exponent-multiplier form
// 2^(count>>2) * ((count&3)*2+1); anything else extends the count to
// 12 bits.
func romSize(count, nibble uint8) uint64 {
	if nibble == sizeExponentSentinel {
		return (uint64(1) << (count >> 2)) * uint64((count&0x03)*2+1)
	}
	return uint64(count) | uint64(nibble)<<8
}
