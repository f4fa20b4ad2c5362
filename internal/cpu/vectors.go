package cpu

// Interrupt vector addresses, fixed in CPU address space and provided by
// the cartridge/mapper collaborator (spec.md §3).
const (
	nmiVector   uint16 = 0xFFFA
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE
)
