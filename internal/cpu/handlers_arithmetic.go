package cpu

// registerArithmetic wires ADC/SBC into t. Decimal mode is tracked (the D
// flag can be set and read back) but never interpreted — the NES's 6502
// core has the BCD circuitry disconnected, so both operations always do
// pure binary arithmetic regardless of D (spec.md §4.4).
func registerArithmetic(t *[256]handlerFunc) {
	for _, op := range []uint8{0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71} {
		t[op] = adc
	}
	for _, op := range []uint8{0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1} {
		t[op] = sbc
	}
}

// adc adds the operand and the carry flag into A, setting C on unsigned
// overflow and V on signed overflow: V is set when the operands share a
// sign and the result's sign differs from theirs.
func adc(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	value := op.Read()
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := uint8(sum)

	c.V = (c.A^result)&0x80 != 0 && (c.A^value)&0x80 == 0
	c.C = sum > 0xFF
	c.A = result
	c.setZN(c.A)
	return pageCrossPenalty(op), nil
}

// sbc is ADC with the operand's ones' complement, the standard 6502
// identity: A - M - (1-C) == A + ^M + C.
func sbc(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	value := ^op.Read()
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := uint8(sum)

	c.V = (c.A^result)&0x80 != 0 && (c.A^value)&0x80 == 0
	c.C = sum > 0xFF
	c.A = result
	c.setZN(c.A)
	return pageCrossPenalty(op), nil
}
