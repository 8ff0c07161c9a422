package cpu

import "strings"

// DebugInfo is a point-in-time snapshot of the externally visible CPU state.
type DebugInfo struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	P      uint8
	Cycles uint64
}

// DebugInfo captures the current register state for monitors and traces.
func (c *CPU) DebugInfo() DebugInfo {
	return DebugInfo{
		PC:     c.pc,
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		SP:     c.sp,
		P:      c.p,
		Cycles: c.totalCycles,
	}
}

// StatusString renders the status register as NVUBDIZC with dots for
// cleared flags.
func (info DebugInfo) StatusString() string {
	const names = "CZIDBUVN"
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		if info.P&(1<<uint(i)) != 0 {
			sb.WriteByte(names[i])
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
