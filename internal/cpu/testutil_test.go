package cpu

import "mos6502/internal/memory"

// flatMapper is a single 64KB Ram bank spanning the whole address space, so
// tests can poke any address without worrying about bank boundaries. It is
// not how a real cartridge looks (see mos6502/internal/cartridge), but it
// is the simplest Mapper that satisfies the contract for unit tests.
type flatMapper struct {
	ram *memory.Ram[uint8]
}

func newFlatMapper() *flatMapper {
	return &flatMapper{ram: memory.NewRam[uint8](0x10000, 0x0000)}
}

func (f *flatMapper) MapToHardware(addr memory.Vaddr) (memory.Bank[uint8], error) {
	return f.ram, nil
}

// load writes program starting at addr.
func (f *flatMapper) load(addr memory.Vaddr, program ...uint8) {
	for i, b := range program {
		ref, err := memory.Resolve[uint8](f, addr+memory.Vaddr(i))
		if err != nil {
			panic(err)
		}
		if err := ref.Write(b); err != nil {
			panic(err)
		}
	}
}

// setResetVector points the RESET vector at addr, the way a ROM's header
// would.
func (f *flatMapper) setResetVector(addr memory.Vaddr) {
	f.load(resetVector, uint8(addr&0xFF), uint8(addr>>8))
}

func newTestInterpreter() (*Interpreter, *flatMapper) {
	m := newFlatMapper()
	m.setResetVector(0x8000)
	ip := NewInterpreter(m)
	if err := ip.Reset(); err != nil {
		panic(err)
	}
	return ip, m
}
