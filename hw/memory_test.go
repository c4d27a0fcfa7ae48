package hw

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// memSpace builds a direct-memory space over a Go buffer. The buffer is
// padded past size so a full-width access at the last valid position
// stays inside it.
func memSpace(size uint32) (ms *MemoryAddressSpace, buf []byte) {
	buf = make([]byte, size+4)
	ms = NewMemoryAddressSpace(uintptr(unsafe.Pointer(&buf[0])), size)
	return
}

func TestMemoryBounds(t *testing.T) {
	assert := assert.New(t)

	ms, buf := memSpace(16)

	_, err := ms.Read8(0)
	assert.NoError(err)

	// Position size is the last valid position.
	_, err = ms.Read8(16)
	assert.NoError(err)

	_, err = ms.Read8(17)
	assert.Error(err)
	assert.ErrorIs(err, ErrOutOfRange{})
	assert.Equal(ErrOutOfRange{Pos: 17, Size: 16}, err)

	err = ms.Write32(17, 1)
	assert.Error(err)
	assert.ErrorIs(err, ErrOutOfRange{})

	runtime.KeepAlive(buf)
}

func TestMemoryRoundTrip(t *testing.T) {
	assert := assert.New(t)

	ms, buf := memSpace(16)

	err := ms.Write32(13, 0xdeadbeef)
	assert.NoError(err)
	assert.Equal(uint32(0xdeadbeef), ms.Read32Unchecked(13))

	value32, err := ms.Read32(13)
	assert.NoError(err)
	assert.Equal(uint32(0xdeadbeef), value32)

	err = ms.Write16(2, 0x1234)
	assert.NoError(err)
	value16, err := ms.Read16(2)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value16)

	ms.Write8Unchecked(0, 0x42)
	value8, err := ms.Read8(0)
	assert.NoError(err)
	assert.Equal(uint8(0x42), value8)
	assert.Equal(uint8(0x42), buf[0])

	runtime.KeepAlive(buf)
}

func TestMemoryOffsetBase(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, 32)
	base := uintptr(unsafe.Pointer(&buf[0]))

	// Positions are relative to the offset, not the buffer.
	ms := NewMemoryAddressSpace(base+8, 8)
	err := ms.Write8(0, 0x7f)
	assert.NoError(err)
	assert.Equal(uint8(0x7f), buf[8])

	assert.Equal(base+8, ms.Offset())
	assert.Equal(uint32(8), ms.Size())

	runtime.KeepAlive(buf)
}
