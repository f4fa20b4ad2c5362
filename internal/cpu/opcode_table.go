package cpu

// opcodeTable is a dense 256-entry array indexed by opcode byte. A nil
// entry marks an opcode with no legal 6502 meaning (illegal/unofficial
// opcodes are out of scope per spec.md §1). Keeping it dense rather than a
// map lets buildHandlerTable check that every legal opcode has a handler by
// walking one fixed 256-entry array at package init, and keeps decode off
// the allocation path.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]*Instruction {
	var t [256]*Instruction

	entry := func(opcode uint8, mnemonic string, mode Mode, bytes, cycles uint8, modifiesPC bool) {
		var typ OperandType
		switch bytes {
		case 1:
			typ = NoOp
		case 2:
			typ = OneOp
		case 3:
			typ = TwoOp
		}
		t[opcode] = &Instruction{
			Opcode:     opcode,
			Mnemonic:   mnemonic,
			Mode:       mode,
			Type:       typ,
			Bytes:      bytes,
			Cycles:     cycles,
			ModifiesPC: modifiesPC,
		}
	}

	// Load/Store
	entry(0xA9, "LDA", Immediate, 2, 2, false)
	entry(0xA5, "LDA", ZeroPage, 2, 3, false)
	entry(0xB5, "LDA", ZeroPageX, 2, 4, false)
	entry(0xAD, "LDA", Absolute, 3, 4, false)
	entry(0xBD, "LDA", AbsoluteX, 3, 4, false)
	entry(0xB9, "LDA", AbsoluteY, 3, 4, false)
	entry(0xA1, "LDA", IndexedIndirect, 2, 6, false)
	entry(0xB1, "LDA", IndirectIndexed, 2, 5, false)

	entry(0xA2, "LDX", Immediate, 2, 2, false)
	entry(0xA6, "LDX", ZeroPage, 2, 3, false)
	entry(0xB6, "LDX", ZeroPageY, 2, 4, false)
	entry(0xAE, "LDX", Absolute, 3, 4, false)
	entry(0xBE, "LDX", AbsoluteY, 3, 4, false)

	entry(0xA0, "LDY", Immediate, 2, 2, false)
	entry(0xA4, "LDY", ZeroPage, 2, 3, false)
	entry(0xB4, "LDY", ZeroPageX, 2, 4, false)
	entry(0xAC, "LDY", Absolute, 3, 4, false)
	entry(0xBC, "LDY", AbsoluteX, 3, 4, false)

	entry(0x85, "STA", ZeroPage, 2, 3, false)
	entry(0x95, "STA", ZeroPageX, 2, 4, false)
	entry(0x8D, "STA", Absolute, 3, 4, false)
	entry(0x9D, "STA", AbsoluteX, 3, 5, false)
	entry(0x99, "STA", AbsoluteY, 3, 5, false)
	entry(0x81, "STA", IndexedIndirect, 2, 6, false)
	entry(0x91, "STA", IndirectIndexed, 2, 6, false)

	entry(0x86, "STX", ZeroPage, 2, 3, false)
	entry(0x96, "STX", ZeroPageY, 2, 4, false)
	entry(0x8E, "STX", Absolute, 3, 4, false)

	entry(0x84, "STY", ZeroPage, 2, 3, false)
	entry(0x94, "STY", ZeroPageX, 2, 4, false)
	entry(0x8C, "STY", Absolute, 3, 4, false)

	// Arithmetic
	entry(0x69, "ADC", Immediate, 2, 2, false)
	entry(0x65, "ADC", ZeroPage, 2, 3, false)
	entry(0x75, "ADC", ZeroPageX, 2, 4, false)
	entry(0x6D, "ADC", Absolute, 3, 4, false)
	entry(0x7D, "ADC", AbsoluteX, 3, 4, false)
	entry(0x79, "ADC", AbsoluteY, 3, 4, false)
	entry(0x61, "ADC", IndexedIndirect, 2, 6, false)
	entry(0x71, "ADC", IndirectIndexed, 2, 5, false)

	entry(0xE9, "SBC", Immediate, 2, 2, false)
	entry(0xE5, "SBC", ZeroPage, 2, 3, false)
	entry(0xF5, "SBC", ZeroPageX, 2, 4, false)
	entry(0xED, "SBC", Absolute, 3, 4, false)
	entry(0xFD, "SBC", AbsoluteX, 3, 4, false)
	entry(0xF9, "SBC", AbsoluteY, 3, 4, false)
	entry(0xE1, "SBC", IndexedIndirect, 2, 6, false)
	entry(0xF1, "SBC", IndirectIndexed, 2, 5, false)

	// Logical
	entry(0x29, "AND", Immediate, 2, 2, false)
	entry(0x25, "AND", ZeroPage, 2, 3, false)
	entry(0x35, "AND", ZeroPageX, 2, 4, false)
	entry(0x2D, "AND", Absolute, 3, 4, false)
	entry(0x3D, "AND", AbsoluteX, 3, 4, false)
	entry(0x39, "AND", AbsoluteY, 3, 4, false)
	entry(0x21, "AND", IndexedIndirect, 2, 6, false)
	entry(0x31, "AND", IndirectIndexed, 2, 5, false)

	entry(0x09, "ORA", Immediate, 2, 2, false)
	entry(0x05, "ORA", ZeroPage, 2, 3, false)
	entry(0x15, "ORA", ZeroPageX, 2, 4, false)
	entry(0x0D, "ORA", Absolute, 3, 4, false)
	entry(0x1D, "ORA", AbsoluteX, 3, 4, false)
	entry(0x19, "ORA", AbsoluteY, 3, 4, false)
	entry(0x01, "ORA", IndexedIndirect, 2, 6, false)
	entry(0x11, "ORA", IndirectIndexed, 2, 5, false)

	entry(0x49, "EOR", Immediate, 2, 2, false)
	entry(0x45, "EOR", ZeroPage, 2, 3, false)
	entry(0x55, "EOR", ZeroPageX, 2, 4, false)
	entry(0x4D, "EOR", Absolute, 3, 4, false)
	entry(0x5D, "EOR", AbsoluteX, 3, 4, false)
	entry(0x59, "EOR", AbsoluteY, 3, 4, false)
	entry(0x41, "EOR", IndexedIndirect, 2, 6, false)
	entry(0x51, "EOR", IndirectIndexed, 2, 5, false)

	// Shift/Rotate
	entry(0x0A, "ASL", Accumulator, 1, 2, false)
	entry(0x06, "ASL", ZeroPage, 2, 5, false)
	entry(0x16, "ASL", ZeroPageX, 2, 6, false)
	entry(0x0E, "ASL", Absolute, 3, 6, false)
	entry(0x1E, "ASL", AbsoluteX, 3, 7, false)

	entry(0x4A, "LSR", Accumulator, 1, 2, false)
	entry(0x46, "LSR", ZeroPage, 2, 5, false)
	entry(0x56, "LSR", ZeroPageX, 2, 6, false)
	entry(0x4E, "LSR", Absolute, 3, 6, false)
	entry(0x5E, "LSR", AbsoluteX, 3, 7, false)

	entry(0x2A, "ROL", Accumulator, 1, 2, false)
	entry(0x26, "ROL", ZeroPage, 2, 5, false)
	entry(0x36, "ROL", ZeroPageX, 2, 6, false)
	entry(0x2E, "ROL", Absolute, 3, 6, false)
	entry(0x3E, "ROL", AbsoluteX, 3, 7, false)

	entry(0x6A, "ROR", Accumulator, 1, 2, false)
	entry(0x66, "ROR", ZeroPage, 2, 5, false)
	entry(0x76, "ROR", ZeroPageX, 2, 6, false)
	entry(0x6E, "ROR", Absolute, 3, 6, false)
	entry(0x7E, "ROR", AbsoluteX, 3, 7, false)

	// Compare
	entry(0xC9, "CMP", Immediate, 2, 2, false)
	entry(0xC5, "CMP", ZeroPage, 2, 3, false)
	entry(0xD5, "CMP", ZeroPageX, 2, 4, false)
	entry(0xCD, "CMP", Absolute, 3, 4, false)
	entry(0xDD, "CMP", AbsoluteX, 3, 4, false)
	entry(0xD9, "CMP", AbsoluteY, 3, 4, false)
	entry(0xC1, "CMP", IndexedIndirect, 2, 6, false)
	entry(0xD1, "CMP", IndirectIndexed, 2, 5, false)

	entry(0xE0, "CPX", Immediate, 2, 2, false)
	entry(0xE4, "CPX", ZeroPage, 2, 3, false)
	entry(0xEC, "CPX", Absolute, 3, 4, false)

	entry(0xC0, "CPY", Immediate, 2, 2, false)
	entry(0xC4, "CPY", ZeroPage, 2, 3, false)
	entry(0xCC, "CPY", Absolute, 3, 4, false)

	// Increment/Decrement
	entry(0xE6, "INC", ZeroPage, 2, 5, false)
	entry(0xF6, "INC", ZeroPageX, 2, 6, false)
	entry(0xEE, "INC", Absolute, 3, 6, false)
	entry(0xFE, "INC", AbsoluteX, 3, 7, false)

	entry(0xC6, "DEC", ZeroPage, 2, 5, false)
	entry(0xD6, "DEC", ZeroPageX, 2, 6, false)
	entry(0xCE, "DEC", Absolute, 3, 6, false)
	entry(0xDE, "DEC", AbsoluteX, 3, 7, false)

	entry(0xE8, "INX", Implied, 1, 2, false)
	entry(0xCA, "DEX", Implied, 1, 2, false)
	entry(0xC8, "INY", Implied, 1, 2, false)
	entry(0x88, "DEY", Implied, 1, 2, false)

	// Transfer
	entry(0xAA, "TAX", Implied, 1, 2, false)
	entry(0x8A, "TXA", Implied, 1, 2, false)
	entry(0xA8, "TAY", Implied, 1, 2, false)
	entry(0x98, "TYA", Implied, 1, 2, false)
	entry(0xBA, "TSX", Implied, 1, 2, false)
	entry(0x9A, "TXS", Implied, 1, 2, false)

	// Stack
	entry(0x48, "PHA", Implied, 1, 3, false)
	entry(0x68, "PLA", Implied, 1, 4, false)
	entry(0x08, "PHP", Implied, 1, 3, false)
	entry(0x28, "PLP", Implied, 1, 4, false)

	// Flags
	entry(0x18, "CLC", Implied, 1, 2, false)
	entry(0x38, "SEC", Implied, 1, 2, false)
	entry(0x58, "CLI", Implied, 1, 2, false)
	entry(0x78, "SEI", Implied, 1, 2, false)
	entry(0xB8, "CLV", Implied, 1, 2, false)
	entry(0xD8, "CLD", Implied, 1, 2, false)
	entry(0xF8, "SED", Implied, 1, 2, false)

	// Control flow
	entry(0x4C, "JMP", Absolute, 3, 3, true)
	entry(0x6C, "JMP", Indirect, 3, 5, true)
	entry(0x20, "JSR", Absolute, 3, 6, true)
	entry(0x60, "RTS", Implied, 1, 6, true)
	entry(0x40, "RTI", Implied, 1, 6, true)

	// Branches
	entry(0x90, "BCC", Relative, 2, 2, true)
	entry(0xB0, "BCS", Relative, 2, 2, true)
	entry(0xD0, "BNE", Relative, 2, 2, true)
	entry(0xF0, "BEQ", Relative, 2, 2, true)
	entry(0x10, "BPL", Relative, 2, 2, true)
	entry(0x30, "BMI", Relative, 2, 2, true)
	entry(0x50, "BVC", Relative, 2, 2, true)
	entry(0x70, "BVS", Relative, 2, 2, true)

	// Miscellaneous
	entry(0x24, "BIT", ZeroPage, 2, 3, false)
	entry(0x2C, "BIT", Absolute, 3, 4, false)
	entry(0xEA, "NOP", Implied, 1, 2, false)
	entry(0x00, "BRK", Implied, 1, 7, true)

	return t
}
