package cpu

// registerCompare wires CMP/CPX/CPY into t. BIT, the other flag-only
// memory test, is wired by registerMisc.
func registerCompare(t *[256]handlerFunc) {
	for _, op := range []uint8{0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1} {
		t[op] = cmp
	}
	for _, op := range []uint8{0xE0, 0xE4, 0xEC} {
		t[op] = cpx
	}
	for _, op := range []uint8{0xC0, 0xC4, 0xCC} {
		t[op] = cpy
	}
}

// compare is the shared CMP/CPX/CPY effect: an unsigned subtract that only
// sets flags. C is set when register >= operand.
func compare(c *Mos6502, register uint8, op operand) uint8 {
	value := op.Read()
	result := register - value
	c.C = register >= value
	c.setZN(result)
	return pageCrossPenalty(op)
}

func cmp(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return compare(c, c.A, op), nil
}

func cpx(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return compare(c, c.X, op), nil
}

func cpy(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return compare(c, c.Y, op), nil
}
