package cpu

import "errors"

// Sentinel errors raised by the decode/execute core. Callers compare with
// errors.Is; the halted-state and error-kind policy these map to are
// described in spec.md §7.
var (
	// ErrInvalidOpcode is raised by the Disassembler on a byte with no
	// legal 6502 meaning. Interpreter.Step returns it without advancing PC.
	// The Interpreter keeps no halted state: a later Step decodes the same
	// byte again, unless a pending interrupt is serviced first.
	ErrInvalidOpcode = errors.New("cpu: invalid opcode")

	// ErrKeyError is the sentinel for a cache lookup miss. Nothing in this
	// package returns it; decoding is not cached.
	ErrKeyError = errors.New("cpu: key not found")
)
