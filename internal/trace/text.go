// Package trace implements cpu.Tracer sinks: a plain text writer for log
// files and batch runs, and an interactive terminal tracer for stepping
// through a program instruction by instruction.
package trace

import (
	"fmt"
	"io"

	"mos6502/internal/cpu"
)

// TextSink writes one line per instruction to w, in the disassembly style
// most 6502 trace logs use: address, mnemonic, addressing mode, and the
// register file after the instruction executed.
type TextSink struct {
	w io.Writer
}

// NewTextSink wraps w as a cpu.Tracer.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Trace(e cpu.TraceEvent) {
	r := e.Registers
	fmt.Fprintf(s.w, "%04X  %-4s %-6s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		e.PC, e.Instruction.Mnemonic, e.Instruction.Mode,
		r.A, r.X, r.Y, r.StatusByte(), r.SP, e.TotalCycles,
	)
}
