package cpu

// registerLogical wires AND/ORA/EOR into t.
func registerLogical(t *[256]handlerFunc) {
	for _, op := range []uint8{0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31} {
		t[op] = and
	}
	for _, op := range []uint8{0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11} {
		t[op] = ora
	}
	for _, op := range []uint8{0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51} {
		t[op] = eor
	}
}

func and(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.A &= op.Read()
	c.setZN(c.A)
	return pageCrossPenalty(op), nil
}

func ora(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.A |= op.Read()
	c.setZN(c.A)
	return pageCrossPenalty(op), nil
}

func eor(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.A ^= op.Read()
	c.setZN(c.A)
	return pageCrossPenalty(op), nil
}
