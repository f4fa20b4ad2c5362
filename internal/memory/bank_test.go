package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamReadWrite(t *testing.T) {
	ram := NewRam[uint8](0x10, 0x0000)
	assert.Equal(t, 0x10, ram.Size())
	assert.Equal(t, Vaddr(0x0000), ram.BaseAddress())

	// all bytes start zero
	for i := 0; i < ram.Size(); i++ {
		assert.Equal(t, uint8(0), ram.Read(i))
	}

	require.NoError(t, ram.Write(4, 0x42))
	assert.Equal(t, uint8(0x42), ram.Read(4))
	// writing one cell must not disturb its neighbours
	assert.Equal(t, uint8(0), ram.Read(3))
	assert.Equal(t, uint8(0), ram.Read(5))
}

func TestNullBankIsWriteIgnoring(t *testing.T) {
	n := NewNullBank[uint8](0x2000, 0x4020)
	require.NoError(t, n.Write(10, 0xFF))
	assert.Equal(t, uint8(0), n.Read(10))
}

func TestRomRejectsWrite(t *testing.T) {
	rom := NewRom[uint8](4, 0x8000)
	err := rom.Write(0, 1)
	assert.True(t, errors.Is(err, ErrReadOnly))
}

func TestRomLoadOnce(t *testing.T) {
	rom := NewRom[uint8](4, 0x8000)
	require.NoError(t, rom.Load([]uint8{1, 2, 3, 4}))
	assert.Equal(t, uint8(3), rom.Read(2))

	err := rom.Load([]uint8{5, 6, 7, 8})
	assert.True(t, errors.Is(err, ErrReadOnly))
	// the original contents must survive the rejected reload
	assert.Equal(t, uint8(3), rom.Read(2))
}

func TestRomLoadSizeMismatch(t *testing.T) {
	rom := NewRom[uint8](4, 0x8000)
	err := rom.Load([]uint8{1, 2, 3})
	assert.Error(t, err)
}
