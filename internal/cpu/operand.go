package cpu

import "mos6502/internal/memory"

// operand is the already-resolved addressing-mode result a handler
// operates on. The Interpreter builds one per dispatch by switching on the
// decoded Instruction's Mode, so handler bodies never touch the Mmu
// directly — they just Read/Write through whichever case applies:
//
//   - Immediate:            value holds the decoded operand byte.
//   - Accumulator, Implied: neither value nor ref is meaningful; the
//     handler reads/writes CPU registers directly.
//   - Relative, and JMP/JSR: address holds the effective target; ref is
//     unset.
//   - every other mode:     ref is a live memory.Reference.
type operand struct {
	ref         memory.Reference[uint8]
	hasRef      bool
	value       uint8
	immediate   bool
	address     memory.Vaddr // effective address, for JMP/JSR/branches
	pageCrossed bool
}

// Read returns the operand's value regardless of whether it came from an
// immediate byte or a memory reference.
func (o operand) Read() uint8 {
	if o.immediate {
		return o.value
	}
	return o.ref.Read()
}

// Write stores data back through the operand's reference. Immediate
// operands are never the target of a Write; the handlers of mnemonics that
// have an immediate form (ADC/AND/CMP/...) only read their operand.
func (o operand) Write(data uint8) error {
	return o.ref.Write(data)
}
