package cpu

import "mos6502/internal/memory"

// registerMisc wires BIT, NOP, and BRK into t.
func registerMisc(t *[256]handlerFunc) {
	t[0x24] = bit
	t[0x2C] = bit
	t[0xEA] = nop
	t[0x00] = brk
}

// bit sets Z from A&M, and N/V directly from bits 7/6 of M, without
// otherwise touching A.
func bit(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	value := op.Read()
	c.Z = (c.A & value) == 0
	c.N = value&0x80 != 0
	c.V = value&0x40 != 0
	return 0, nil
}

func nop(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return 0, nil
}

// brk is a software interrupt: it skips the signature byte conventionally
// following the opcode, pushes PC and SR with B set, raises I, and loads
// PC from the IRQ/BRK vector — the same vector hardware IRQ uses, but with
// B=1 in the pushed status so a handler can tell them apart (spec.md §5).
func brk(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.PC++
	if err := c.pushWord(c.PC); err != nil {
		return 0, err
	}
	saved := c.B
	c.B = true
	if err := c.push(c.StatusByte()); err != nil {
		return 0, err
	}
	c.B = saved
	c.I = true

	pc, err := memory.LoadVector(c.mapper, irqVector)
	if err != nil {
		return 0, err
	}
	c.PC = pc
	return 0, nil
}
