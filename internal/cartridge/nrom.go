package cartridge

import (
	"fmt"

	"mos6502/internal/memory"
)

// NROM implements mapper 0: 16KB or 32KB PRG ROM with no bank switching,
// 8KB of battery-backable PRG RAM, and 2KB of CPU-visible system RAM
// mirrored four times across 0x0000-0x1FFF. It is the collaborator
// spec.md §6 describes as providing MapToHardware/LoadVector to the Mmu.
type NROM struct {
	systemRAM *memory.MirroredRam[uint8]
	prgRAM    *memory.Ram[uint8]
	prgLower  *memory.Rom[uint8]
	prgUpper  *memory.Rom[uint8]
	open      *memory.NullBank[uint8]
}

// NewNROM builds an NROM mapper from raw PRG ROM bytes (16KB or 32KB). A
// 16KB image is mirrored into both the 0x8000-0xBFFF and 0xC000-0xFFFF
// banks, matching NROM-128 hardware.
func NewNROM(prg []uint8) (*NROM, error) {
	switch len(prg) {
	case prgBankSize:
		// fall through: mirror the single bank into both halves below.
	case prgBankSize * 2:
		// fall through: split directly.
	default:
		return nil, fmt.Errorf("cartridge: PRG ROM must be 16KB or 32KB, got %d bytes", len(prg))
	}

	systemRAM, err := memory.NewMirroredRam[uint8](0x2000, 4, 0x0000)
	if err != nil {
		return nil, err
	}

	lower := memory.NewRom[uint8](prgBankSize, 0x8000)
	upper := memory.NewRom[uint8](prgBankSize, 0xC000)

	if len(prg) == prgBankSize {
		if err := lower.Load(prg); err != nil {
			return nil, err
		}
		if err := upper.Load(prg); err != nil {
			return nil, err
		}
	} else {
		if err := lower.Load(prg[:prgBankSize]); err != nil {
			return nil, err
		}
		if err := upper.Load(prg[prgBankSize:]); err != nil {
			return nil, err
		}
	}

	return &NROM{
		systemRAM: systemRAM,
		prgRAM:    memory.NewRam[uint8](0x2000, 0x6000),
		prgLower:  lower,
		prgUpper:  upper,
		open:      memory.NewNullBank[uint8](0x4000, 0x2000),
	}, nil
}

// MapToHardware implements memory.Mapper. 0x2000-0x5FFF (PPU/APU/IO
// registers) is a Non-goal surface; it reads as an open bus of zeros and
// discards writes via the shared NullBank rather than returning
// ErrUnmappedAddress, since real programs poll those addresses
// unconditionally during boot.
func (n *NROM) MapToHardware(addr memory.Vaddr) (memory.Bank[uint8], error) {
	switch {
	case addr < 0x2000:
		return n.systemRAM, nil
	case addr < 0x6000:
		return n.open, nil
	case addr < 0x8000:
		return n.prgRAM, nil
	case addr < 0xC000:
		return n.prgLower, nil
	default:
		return n.prgUpper, nil
	}
}
