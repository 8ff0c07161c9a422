package cpu

// microOp is one clock cycle's worth of CPU work. An instruction is an
// ordered list of these; Step pops and runs exactly one per call.
type microOp func(*CPU)

// fetch8 reads the byte at the program counter and advances past it.
func (c *CPU) fetch8() uint8 {
	data := c.read8(c.pc)
	c.pc++
	return data
}

// pageCross reports whether adding index to the low byte of the absolute
// address latch carries into the high byte.
func (c *CPU) pageCross(index uint8) bool {
	return (c.absAddr&0x00FF)+uint16(index) > 0x00FF
}

// Immediate fetch into the accumulator.
func (c *CPU) immA() {
	c.dataLatch = c.fetch8()
	c.a = c.dataLatch
	c.setFlagsZN(c.a)
}

// Immediate fetch into the X register.
func (c *CPU) immX() {
	c.dataLatch = c.fetch8()
	c.x = c.dataLatch
	c.setFlagsZN(c.x)
}

// Immediate fetch into the Y register.
func (c *CPU) immY() {
	c.dataLatch = c.fetch8()
	c.y = c.dataLatch
	c.setFlagsZN(c.y)
}

// Immediate fetch into the zero-page address latch.
func (c *CPU) immZP() {
	c.dataLatch = c.fetch8()
	c.zpgAddr = c.dataLatch
}

// Immediate fetch into the low byte of the absolute address latch.
// Zeroes the high byte as a side effect.
func (c *CPU) immAbsLo() {
	c.dataLatch = c.fetch8()
	c.absAddr = uint16(c.dataLatch)
}

// Immediate fetch into the high byte of the absolute address latch.
// Preserves the low byte.
func (c *CPU) immAbsHi() {
	c.dataLatch = c.fetch8()
	c.absAddr = c.absAddr&0x00FF | uint16(c.dataLatch)<<8
}

// Load the accumulator from the zero-page latch address.
func (c *CPU) ldaZP() {
	c.a = c.read8(uint16(c.zpgAddr))
	c.setFlagsZN(c.a)
}

// Load the X register from the zero-page latch address.
func (c *CPU) ldxZP() {
	c.x = c.read8(uint16(c.zpgAddr))
	c.setFlagsZN(c.x)
}

// Load the Y register from the zero-page latch address.
func (c *CPU) ldyZP() {
	c.y = c.read8(uint16(c.zpgAddr))
	c.setFlagsZN(c.y)
}

// Load the accumulator from the absolute latch address.
func (c *CPU) ldaAbs() {
	c.a = c.read8(c.absAddr)
	c.setFlagsZN(c.a)
}

// Load the X register from the absolute latch address.
func (c *CPU) ldxAbs() {
	c.x = c.read8(c.absAddr)
	c.setFlagsZN(c.x)
}

// Load the Y register from the absolute latch address.
func (c *CPU) ldyAbs() {
	c.y = c.read8(c.absAddr)
	c.setFlagsZN(c.y)
}

// Load the accumulator from the absolute latch address plus X.
// The latch keeps its un-indexed value. Crossing a page boundary stalls one
// extra cycle while the high byte is fixed up.
func (c *CPU) ldaAbsX() {
	if c.pageCross(c.x) {
		c.queue.pushFront((*CPU).nop)
	}
	c.a = c.read8(c.absAddr + uint16(c.x))
	c.setFlagsZN(c.a)
}

// Load the accumulator from the absolute latch address plus Y.
// Crossing a page boundary stalls one extra cycle.
func (c *CPU) ldaAbsY() {
	if c.pageCross(c.y) {
		c.queue.pushFront((*CPU).nop)
	}
	c.a = c.read8(c.absAddr + uint16(c.y))
	c.setFlagsZN(c.a)
}

// Load the Y register from the absolute latch address plus X.
// Crossing a page boundary stalls one extra cycle.
func (c *CPU) ldyAbsX() {
	if c.pageCross(c.x) {
		c.queue.pushFront((*CPU).nop)
	}
	c.y = c.read8(c.absAddr + uint16(c.x))
	c.setFlagsZN(c.y)
}

// Load the X register from the absolute latch address plus Y.
// Crossing a page boundary stalls one extra cycle.
func (c *CPU) ldxAbsY() {
	if c.pageCross(c.y) {
		c.queue.pushFront((*CPU).nop)
	}
	c.x = c.read8(c.absAddr + uint16(c.y))
	c.setFlagsZN(c.x)
}

// Fetch the low byte of the target address through the zero-page pointer.
// Zeroes the high byte as a side effect.
func (c *CPU) indLo() {
	c.absAddr = uint16(c.read8(uint16(c.zpgAddr)))
}

// Fetch the high byte of the target address through the zero-page pointer.
// The pointer increment wraps within page zero.
func (c *CPU) indHi() {
	c.absAddr = c.absAddr&0x00FF | uint16(c.read8(uint16(c.zpgAddr+1)))<<8
}

// Store the accumulator at the zero-page latch address.
func (c *CPU) staZP() {
	c.write8(uint16(c.zpgAddr), c.a)
}

// Store the X register at the zero-page latch address.
func (c *CPU) stxZP() {
	c.write8(uint16(c.zpgAddr), c.x)
}

// Store the Y register at the zero-page latch address.
func (c *CPU) styZP() {
	c.write8(uint16(c.zpgAddr), c.y)
}

// Store the accumulator at the absolute latch address.
func (c *CPU) staAbs() {
	c.write8(c.absAddr, c.a)
}

// Store the X register at the absolute latch address.
func (c *CPU) stxAbs() {
	c.write8(c.absAddr, c.x)
}

// Store the Y register at the absolute latch address.
func (c *CPU) styAbs() {
	c.write8(c.absAddr, c.y)
}

// Add X to the zero-page latch, wrapping within page zero.
func (c *CPU) addXZP() {
	c.zpgAddr += c.x
}

// Add Y to the zero-page latch, wrapping within page zero.
func (c *CPU) addYZP() {
	c.zpgAddr += c.y
}

// Add X to the absolute address latch. The hardware reads from the address
// before the high byte is fixed up, so the dummy read targets the old page.
func (c *CPU) addXAbs() {
	old := c.absAddr
	c.absAddr += uint16(c.x)
	_ = c.read8(old&0xFF00 | c.absAddr&0x00FF)
}

// Add Y to the absolute address latch, with the same dummy read from the
// pre-carry address.
func (c *CPU) addYAbs() {
	old := c.absAddr
	c.absAddr += uint16(c.y)
	_ = c.read8(old&0xFF00 | c.absAddr&0x00FF)
}

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

func (c *CPU) nop() {}
