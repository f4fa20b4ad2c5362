package cpu

// registerFlags wires the seven flag set/clear instructions into t. There
// is no CLB/SEB for the B flag — it is never a freestanding architectural
// state, only a snapshot taken at push time (spec.md §4.4).
func registerFlags(t *[256]handlerFunc) {
	t[0x18] = clc
	t[0x38] = sec
	t[0x58] = cli
	t[0x78] = sei
	t[0xB8] = clv
	t[0xD8] = cld
	t[0xF8] = sed
}

func clc(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.C = false; return 0, nil }
func sec(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.C = true; return 0, nil }
func cli(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.I = false; return 0, nil }
func sei(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.I = true; return 0, nil }
func clv(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.V = false; return 0, nil }
func cld(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.D = false; return 0, nil }
func sed(c *Mos6502, inst Instruction, op operand) (uint8, error) { c.D = true; return 0, nil }
