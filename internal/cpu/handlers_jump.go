package cpu

// registerJump wires JMP/JSR/RTS/RTI into t. JMP and JSR both receive the
// effective target address in op.address, already hardware-bug-adjusted
// for the indirect form by resolveOperand.
func registerJump(t *[256]handlerFunc) {
	t[0x4C] = jmp
	t[0x6C] = jmp
	t[0x20] = jsr
	t[0x60] = rts
	t[0x40] = rti
}

func jmp(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.PC = op.address
	return 0, nil
}

// jsr pushes the address of the last byte of the JSR instruction (one less
// than the return address) and jumps to op.address; rts undoes exactly
// this by pulling and incrementing.
func jsr(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	if err := c.pushWord(c.PC - 1); err != nil {
		return 0, err
	}
	c.PC = op.address
	return 0, nil
}

func rts(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	ret, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.PC = ret + 1
	return 0, nil
}

// rti restores SR then PC, in that order, undoing BRK/IRQ/NMI's push
// order exactly; unlike RTS it does not add 1, since the pushed PC was
// never decremented.
func rti(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	status, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.SetStatusByte(status)
	ret, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.PC = ret
	return 0, nil
}
