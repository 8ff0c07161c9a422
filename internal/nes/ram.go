package nes

const (
	ramSizeBytes  = 0x800
	ramMirrorMask = 0x07FF
)

// WorkRAM is the console's 2 KiB of internal memory. The $0000-$1FFF
// range exposes it as four repeating images, so every access applies
// the mirror mask before indexing.
type WorkRAM struct {
	mem [ramSizeBytes]uint8
}

func NewWorkRAM() *WorkRAM {
	return &WorkRAM{}
}

func (r *WorkRAM) Read8(addr uint16) uint8 {
	return r.mem[addr&ramMirrorMask]
}

func (r *WorkRAM) Write8(addr uint16, data uint8) {
	r.mem[addr&ramMirrorMask] = data
}
