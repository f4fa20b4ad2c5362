package cpu

import "mos6502/internal/memory"

// Mmu implements the twelve 6502 addressing modes over a Mapper, turning
// instruction operand bytes and register state into a memory.Reference.
// It owns no register state itself — X and Y are passed in at each call
// site rather than held by long-lived borrow, since the Go CPU already
// owns those registers and there is no aliasing hazard to work around.
type Mmu struct {
	mapper memory.Mapper[uint8]
}

// NewMmu creates an Mmu resolving addresses through mapper.
func NewMmu(mapper memory.Mapper[uint8]) *Mmu {
	return &Mmu{mapper: mapper}
}

// LoadVector reads the little-endian word at v/v+1, used for the
// RESET/NMI/IRQ vectors.
func (m *Mmu) LoadVector(v memory.Vaddr) (memory.Vaddr, error) {
	return memory.LoadVector(m.mapper, v)
}

// Absolute resolves v directly: Reference(Mapper(v), v - bank.base).
func (m *Mmu) Absolute(v memory.Vaddr) (memory.Reference[uint8], error) {
	return memory.Resolve(m.mapper, v)
}

// AbsoluteX resolves v+X with 16-bit wraparound, reporting whether the
// addition crossed a 256-byte page (the caller charges the +1 cycle for
// read instructions; read-modify-write instructions pay it
// unconditionally, per spec.md §4.3).
func (m *Mmu) AbsoluteX(v memory.Vaddr, x uint8) (memory.Reference[uint8], bool, error) {
	effective := v + memory.Vaddr(x)
	ref, err := memory.Resolve(m.mapper, effective)
	return ref, !memory.SamePage(v, effective), err
}

// AbsoluteY resolves v+Y with 16-bit wraparound; see AbsoluteX.
func (m *Mmu) AbsoluteY(v memory.Vaddr, y uint8) (memory.Reference[uint8], bool, error) {
	effective := v + memory.Vaddr(y)
	ref, err := memory.Resolve(m.mapper, effective)
	return ref, !memory.SamePage(v, effective), err
}

// IndirectJump computes the effective address used by JMP (ind): the word
// stored at v, reproducing the well-known hardware bug where a pointer
// with low byte 0xFF wraps the high-byte fetch to the start of the same
// page instead of crossing into the next one.
func (m *Mmu) IndirectJump(v memory.Vaddr) (memory.Vaddr, error) {
	loRef, err := memory.Resolve(m.mapper, v)
	if err != nil {
		return 0, err
	}
	hiAddr := v + 1
	if memory.Lo(v) == 0xFF {
		hiAddr = v & 0xFF00
	}
	hiRef, err := memory.Resolve(m.mapper, hiAddr)
	if err != nil {
		return 0, err
	}
	return memory.Make(loRef.Read(), hiRef.Read()), nil
}

// XIndexedIndirect resolves (zp,X): the pointer lives entirely on the
// zeropage, with both the index addition and the high-byte fetch wrapping
// within it.
func (m *Mmu) XIndexedIndirect(v memory.Vaddr, x uint8) (memory.Reference[uint8], error) {
	ptrLo := (memory.Lo(v) + x) & 0xFF
	loRef, err := memory.Resolve(m.mapper, memory.Vaddr(ptrLo))
	if err != nil {
		return memory.Reference[uint8]{}, err
	}
	hiRef, err := memory.Resolve(m.mapper, memory.Vaddr((ptrLo+1)&0xFF))
	if err != nil {
		return memory.Reference[uint8]{}, err
	}
	effective := memory.Make(loRef.Read(), hiRef.Read())
	return memory.Resolve(m.mapper, effective)
}

// IndirectYIndexed resolves (zp),Y: the pointer is fetched from the
// zeropage with the same wrap rule as XIndexedIndirect, and Y is added to
// the fetched address (with carry, i.e. it may cross a page).
func (m *Mmu) IndirectYIndexed(v memory.Vaddr, y uint8) (memory.Reference[uint8], bool, error) {
	ptrLo := memory.Lo(v)
	loRef, err := memory.Resolve(m.mapper, memory.Vaddr(ptrLo))
	if err != nil {
		return memory.Reference[uint8]{}, false, err
	}
	hiRef, err := memory.Resolve(m.mapper, memory.Vaddr((ptrLo+1)&0xFF))
	if err != nil {
		return memory.Reference[uint8]{}, false, err
	}
	base := memory.Make(loRef.Read(), hiRef.Read())
	effective := base + memory.Vaddr(y)
	ref, err := memory.Resolve(m.mapper, effective)
	return ref, !memory.SamePage(base, effective), err
}

// Zeropage resolves operand.lo directly against the zeropage bank.
func (m *Mmu) Zeropage(v memory.Vaddr) (memory.Reference[uint8], error) {
	return memory.Resolve(m.mapper, memory.Vaddr(memory.Lo(v)))
}

// ZeropageX resolves operand.lo+X, wrapped within the zeropage (no page
// transition is possible).
func (m *Mmu) ZeropageX(v memory.Vaddr, x uint8) (memory.Reference[uint8], error) {
	idx := (memory.Lo(v) + x) & 0xFF
	return memory.Resolve(m.mapper, memory.Vaddr(idx))
}

// ZeropageY resolves operand.lo+Y, wrapped within the zeropage. Only
// LDX/STX zpg,Y use this mode.
func (m *Mmu) ZeropageY(v memory.Vaddr, y uint8) (memory.Reference[uint8], error) {
	idx := (memory.Lo(v) + y) & 0xFF
	return memory.Resolve(m.mapper, memory.Vaddr(idx))
}

// RelativeTarget adds a signed 8-bit displacement to pc (the address of
// the instruction immediately after the branch), reporting whether the
// branch target crosses a page. The addition happens after instruction
// fetch, per spec.md §4.2.
func RelativeTarget(pc memory.Vaddr, offset int8) (memory.Vaddr, bool) {
	target := memory.Vaddr(int32(pc) + int32(offset))
	return target, !memory.SamePage(pc, target)
}
