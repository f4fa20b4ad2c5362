package cpu

// registerLoadStore wires LDA/LDX/LDY/STA/STX/STY into t. Loads charge the
// page-cross cycle when the operand reports one; stores never do, since the
// table already prices their abs,X/abs,Y/ind,Y forms at the unconditional
// worst case (spec.md §4.3).
func registerLoadStore(t *[256]handlerFunc) {
	for _, op := range []uint8{0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1} {
		t[op] = lda
	}
	for _, op := range []uint8{0xA2, 0xA6, 0xB6, 0xAE, 0xBE} {
		t[op] = ldx
	}
	for _, op := range []uint8{0xA0, 0xA4, 0xB4, 0xAC, 0xBC} {
		t[op] = ldy
	}
	for _, op := range []uint8{0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91} {
		t[op] = sta
	}
	for _, op := range []uint8{0x86, 0x96, 0x8E} {
		t[op] = stx
	}
	for _, op := range []uint8{0x84, 0x94, 0x8C} {
		t[op] = sty
	}
}

func lda(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.A = op.Read()
	c.setZN(c.A)
	return pageCrossPenalty(op), nil
}

func ldx(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.X = op.Read()
	c.setZN(c.X)
	return pageCrossPenalty(op), nil
}

func ldy(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.Y = op.Read()
	c.setZN(c.Y)
	return pageCrossPenalty(op), nil
}

func sta(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return 0, op.Write(c.A)
}

func stx(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return 0, op.Write(c.X)
}

func sty(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return 0, op.Write(c.Y)
}

// pageCrossPenalty returns 1 if the operand's addressing crossed a page,
// the shared +1-cycle rule for read-only indexed/indirect-indexed modes.
func pageCrossPenalty(op operand) uint8 {
	if op.pageCrossed {
		return 1
	}
	return 0
}
