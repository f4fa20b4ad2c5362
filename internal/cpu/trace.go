package cpu

// TraceEvent is the snapshot handed to a Tracer after each Step: the
// instruction that just executed, the register file immediately
// afterward, and how many cycles it cost. Values, not pointers, so a
// Tracer can retain one without the Interpreter mutating it out from
// under it.
type TraceEvent struct {
	PC          uint16 // address the instruction was fetched from
	Instruction Instruction
	Registers   Registers
	Cycles      uint8
	TotalCycles int64
}

// Tracer receives one TraceEvent per executed instruction. Interpreter.Trace
// installs a Tracer; Step calls it after committing PC and cycles, so the
// event's Registers.PC is the address of the *next* instruction to execute,
// while TraceEvent.PC is the address of the one that just ran.
// mos6502/internal/trace provides a plain text sink and an
// interactive terminal one.
type Tracer interface {
	Trace(TraceEvent)
}

// TracerFunc adapts a plain function to the Tracer interface.
type TracerFunc func(TraceEvent)

func (f TracerFunc) Trace(e TraceEvent) { f(e) }
