package cpu

// registerTransfer wires the six inter-register transfers into t. TXS is
// the one exception to the "transfers set N/Z" rule: loading the stack
// pointer never affects flags.
func registerTransfer(t *[256]handlerFunc) {
	t[0xAA] = tax
	t[0x8A] = txa
	t[0xA8] = tay
	t[0x98] = tya
	t[0xBA] = tsx
	t[0x9A] = txs
}

func tax(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.X = c.A
	c.setZN(c.X)
	return 0, nil
}

func txa(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.A = c.X
	c.setZN(c.A)
	return 0, nil
}

func tay(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.Y = c.A
	c.setZN(c.Y)
	return 0, nil
}

func tya(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.A = c.Y
	c.setZN(c.A)
	return 0, nil
}

func tsx(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.X = c.SP
	c.setZN(c.X)
	return 0, nil
}

func txs(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	c.SP = c.X
	return 0, nil
}
