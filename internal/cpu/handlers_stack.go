package cpu

// registerStack wires PHA/PLA/PHP/PLP into t.
func registerStack(t *[256]handlerFunc) {
	t[0x48] = pha
	t[0x68] = pla
	t[0x08] = php
	t[0x28] = plp
}

func pha(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	return 0, c.push(c.A)
}

func pla(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	value, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.A = value
	c.setZN(c.A)
	return 0, nil
}

// php pushes SR with B set, the same convention BRK uses, regardless of the
// CPU's current B flag.
func php(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	saved := c.B
	c.B = true
	err := c.push(c.StatusByte())
	c.B = saved
	return 0, err
}

func plp(c *Mos6502, inst Instruction, op operand) (uint8, error) {
	value, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.SetStatusByte(value)
	return 0, nil
}
