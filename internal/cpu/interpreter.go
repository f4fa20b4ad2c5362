package cpu

import (
	"fmt"

	"mos6502/internal/memory"
)

// handlerFunc implements one mnemonic's architectural effect. It receives
// the CPU to mutate, the decoded Instruction (for Mode/ModifiesPC/mnemonic
// branching), and the already-resolved operand, and returns any cycle
// penalty beyond Instruction.Cycles (page-crossing and branch taken) plus
// any memory error the operand's Read/Write surfaced.
type handlerFunc func(c *Mos6502, inst Instruction, op operand) (extraCycles uint8, err error)

// handlerTable is indexed identically to opcodeTable: handlerTable[op] is
// non-nil exactly when opcodeTable[op] is. Built once at init from the
// per-category registrations in handlers_*.go, then checked for totality.
var handlerTable = buildHandlerTable()

func buildHandlerTable() [256]handlerFunc {
	var t [256]handlerFunc
	registerLoadStore(&t)
	registerArithmetic(&t)
	registerLogical(&t)
	registerShift(&t)
	registerCompare(&t)
	registerIncDec(&t)
	registerTransfer(&t)
	registerStack(&t)
	registerFlags(&t)
	registerBranch(&t)
	registerJump(&t)
	registerMisc(&t)

	for opcode, inst := range opcodeTable {
		if inst != nil && t[opcode] == nil {
			panic(fmt.Sprintf("cpu: opcode %#02x (%s %s) has a table entry but no registered handler", opcode, inst.Mnemonic, inst.Mode))
		}
		if inst == nil && t[opcode] != nil {
			panic(fmt.Sprintf("cpu: opcode %#02x has a handler but no table entry", opcode))
		}
	}
	return t
}

// rmwAbsoluteXAlwaysPenalized is the set of mnemonics whose abs,X form pays
// the page-cross cycle unconditionally, because the 6502 always performs a
// dummy read at the unindexed address before the real one regardless of
// whether indexing actually crossed a page (spec.md §4.3). opcodeTable
// already prices those forms at that worst case (7 cycles), so
// resolveOperand never reports a page cross for them.
var rmwAbsoluteXAlwaysPenalized = map[string]bool{
	"ASL": true, "LSR": true, "ROL": true, "ROR": true,
	"INC": true, "DEC": true,
}

// Interpreter decodes and dispatches instructions against a Mos6502 and its
// Mapper, accounting for cycles and servicing pending interrupts between
// instructions. It is the only component that calls Disassemble, resolves
// operands through the Mmu, and advances PC by instruction length — Mos6502
// itself never does either.
type Interpreter struct {
	cpu    *Mos6502
	mmu    *Mmu
	mapper memory.Mapper[uint8]

	cycles int64

	nmiPending bool
	irqLine    bool

	tracer Tracer
}

// NewInterpreter builds an Interpreter over mapper, constructing its own
// Mos6502 and Mmu. Call Reset before Step/Run.
func NewInterpreter(mapper memory.Mapper[uint8]) *Interpreter {
	return &Interpreter{
		cpu:    NewMos6502(mapper),
		mmu:    NewMmu(mapper),
		mapper: mapper,
	}
}

// CPU exposes the underlying register file, mainly for tests and tracing.
func (ip *Interpreter) CPU() *Mos6502 { return ip.cpu }

// Cycles reports the total cycle count consumed since the last Reset.
func (ip *Interpreter) Cycles() int64 { return ip.cycles }

// Trace installs t to receive a TraceEvent after every Step. Pass nil to
// disable tracing.
func (ip *Interpreter) Trace(t Tracer) { ip.tracer = t }

// TriggerNMI latches a non-maskable interrupt, serviced before the next
// instruction decode regardless of the I flag.
func (ip *Interpreter) TriggerNMI() { ip.nmiPending = true }

// SetIRQLine raises or lowers the maskable interrupt line. Unlike NMI this
// is level-triggered: Step re-checks it every instruction and only services
// it while I is clear.
func (ip *Interpreter) SetIRQLine(asserted bool) { ip.irqLine = asserted }

// Reset zeroes the cycle counter, clears pending interrupts, and performs
// the architectural reset sequence on the CPU.
func (ip *Interpreter) Reset() error {
	ip.cycles = 0
	ip.nmiPending = false
	ip.irqLine = false
	return ip.cpu.Reset()
}

// Step executes exactly one unit of work — either servicing one pending
// interrupt, or decoding and dispatching one instruction — and returns the
// number of cycles it cost.
func (ip *Interpreter) Step() (uint8, error) {
	if ip.nmiPending {
		ip.nmiPending = false
		cycles, err := ip.serviceInterrupt(nmiVector)
		ip.cycles += int64(cycles)
		return cycles, err
	}
	if ip.irqLine && !ip.cpu.I {
		cycles, err := ip.serviceInterrupt(irqVector)
		ip.cycles += int64(cycles)
		return cycles, err
	}

	startPC := ip.cpu.PC
	inst, err := Disassemble(ip.mapper, startPC)
	if err != nil {
		return 0, err
	}
	op, err := ip.resolveOperand(inst)
	if err != nil {
		return 0, err
	}

	// Every instruction advances PC past its own bytes before its handler
	// runs; branches/JMP/JSR/RTS/RTI overwrite PC from there.
	ip.cpu.PC = startPC + uint16(inst.Bytes)

	handler := handlerTable[inst.Opcode]
	if handler == nil {
		return 0, fmt.Errorf("step at %#04x: opcode %#02x: %w", startPC, inst.Opcode, ErrInvalidOpcode)
	}
	extra, err := handler(ip.cpu, inst, op)
	if err != nil {
		return 0, err
	}

	cycles := inst.Cycles + extra
	ip.cycles += int64(cycles)
	if ip.tracer != nil {
		ip.tracer.Trace(TraceEvent{
			PC:          startPC,
			Instruction: inst,
			Registers:   ip.cpu.Registers,
			Cycles:      cycles,
			TotalCycles: ip.cycles,
		})
	}
	return cycles, nil
}

// Run steps until the cycle counter reaches or exceeds untilCycle, or an
// error occurs. It returns the cycle count at the point it stopped.
func (ip *Interpreter) Run(untilCycle int64) (int64, error) {
	for ip.cycles < untilCycle {
		if _, err := ip.Step(); err != nil {
			return ip.cycles, err
		}
	}
	return ip.cycles, nil
}

// serviceInterrupt performs the hardware (non-BRK) interrupt sequence:
// push PC, push SR with B clear, set I, load PC from vector. It always
// costs 7 cycles.
func (ip *Interpreter) serviceInterrupt(vector uint16) (uint8, error) {
	c := ip.cpu
	if err := c.pushWord(c.PC); err != nil {
		return 0, err
	}
	saved := c.B
	c.B = false
	if err := c.push(c.StatusByte()); err != nil {
		return 0, err
	}
	c.B = saved
	c.I = true
	pc, err := memory.LoadVector(ip.mapper, vector)
	if err != nil {
		return 0, err
	}
	c.PC = pc
	return 7, nil
}

// resolveOperand turns a decoded Instruction into the operand its handler
// will Read/Write, switching on addressing mode exactly once per
// instruction so handler bodies never touch the Mmu.
func (ip *Interpreter) resolveOperand(inst Instruction) (operand, error) {
	v := inst.Vaddr()

	// JMP/JSR/indirect want the computed address itself, never a Reference
	// read through it.
	switch {
	case inst.Mnemonic == "JMP" && inst.Mode == Absolute:
		return operand{address: v}, nil
	case inst.Mnemonic == "JMP" && inst.Mode == Indirect:
		target, err := ip.mmu.IndirectJump(v)
		return operand{address: target}, err
	case inst.Mnemonic == "JSR":
		return operand{address: v}, nil
	}

	switch inst.Mode {
	case Implied, Accumulator:
		return operand{}, nil

	case Immediate:
		return operand{immediate: true, value: inst.Operand.Lo}, nil

	case Relative:
		target, crossed := RelativeTarget(ip.cpu.PC+uint16(inst.Bytes), int8(inst.Operand.Lo))
		return operand{address: target, pageCrossed: crossed}, nil

	case ZeroPage:
		ref, err := ip.mmu.Zeropage(v)
		return operand{ref: ref, hasRef: true}, err

	case ZeroPageX:
		ref, err := ip.mmu.ZeropageX(v, ip.cpu.X)
		return operand{ref: ref, hasRef: true}, err

	case ZeroPageY:
		ref, err := ip.mmu.ZeropageY(v, ip.cpu.Y)
		return operand{ref: ref, hasRef: true}, err

	case Absolute:
		ref, err := ip.mmu.Absolute(v)
		return operand{ref: ref, hasRef: true}, err

	case AbsoluteX:
		ref, crossed, err := ip.mmu.AbsoluteX(v, ip.cpu.X)
		if rmwAbsoluteXAlwaysPenalized[inst.Mnemonic] {
			crossed = false
		}
		return operand{ref: ref, hasRef: true, pageCrossed: crossed}, err

	case AbsoluteY:
		ref, crossed, err := ip.mmu.AbsoluteY(v, ip.cpu.Y)
		return operand{ref: ref, hasRef: true, pageCrossed: crossed}, err

	case IndexedIndirect:
		ref, err := ip.mmu.XIndexedIndirect(v, ip.cpu.X)
		return operand{ref: ref, hasRef: true}, err

	case IndirectIndexed:
		ref, crossed, err := ip.mmu.IndirectYIndexed(v, ip.cpu.Y)
		return operand{ref: ref, hasRef: true, pageCrossed: crossed}, err

	default:
		return operand{}, fmt.Errorf("resolve operand for opcode %#02x: unhandled mode %s", inst.Opcode, inst.Mode)
	}
}
