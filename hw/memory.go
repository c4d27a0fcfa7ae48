package hw

import (
	"unsafe"
)

// MemoryAddressSpace accesses a linear memory range by dereferencing
// offset+pos directly. The owner must guarantee the whole range is mapped
// and suitably aligned for the access width; that guarantee is outside
// this package. The unsafe surface is confined to the unchecked accessors
// below.
type MemoryAddressSpace struct {
	span
}

var _ AddressSpace = (*MemoryAddressSpace)(nil)

// NewMemoryAddressSpace returns a direct-memory address space over
// [offset, offset+size].
func NewMemoryAddressSpace(offset uintptr, size uint32) *MemoryAddressSpace {
	return &MemoryAddressSpace{span{offset: offset, size: size}}
}

func (ms *MemoryAddressSpace) Read8(pos uint32) (value uint8, err error) {
	err = ms.check(pos)
	if err != nil {
		return
	}
	value = ms.Read8Unchecked(pos)
	return
}

func (ms *MemoryAddressSpace) Read16(pos uint32) (value uint16, err error) {
	err = ms.check(pos)
	if err != nil {
		return
	}
	value = ms.Read16Unchecked(pos)
	return
}

func (ms *MemoryAddressSpace) Read32(pos uint32) (value uint32, err error) {
	err = ms.check(pos)
	if err != nil {
		return
	}
	value = ms.Read32Unchecked(pos)
	return
}

func (ms *MemoryAddressSpace) Write8(pos uint32, value uint8) (err error) {
	err = ms.check(pos)
	if err != nil {
		return
	}
	ms.Write8Unchecked(pos, value)
	return
}

func (ms *MemoryAddressSpace) Write16(pos uint32, value uint16) (err error) {
	err = ms.check(pos)
	if err != nil {
		return
	}
	ms.Write16Unchecked(pos, value)
	return
}

func (ms *MemoryAddressSpace) Write32(pos uint32, value uint32) (err error) {
	err = ms.check(pos)
	if err != nil {
		return
	}
	ms.Write32Unchecked(pos, value)
	return
}

func (ms *MemoryAddressSpace) Read8Unchecked(pos uint32) uint8 {
	return *(*uint8)(unsafe.Pointer(ms.offset + uintptr(pos)))
}

func (ms *MemoryAddressSpace) Read16Unchecked(pos uint32) uint16 {
	return *(*uint16)(unsafe.Pointer(ms.offset + uintptr(pos)))
}

func (ms *MemoryAddressSpace) Read32Unchecked(pos uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(ms.offset + uintptr(pos)))
}

func (ms *MemoryAddressSpace) Write8Unchecked(pos uint32, value uint8) {
	*(*uint8)(unsafe.Pointer(ms.offset + uintptr(pos))) = value
}

func (ms *MemoryAddressSpace) Write16Unchecked(pos uint32, value uint16) {
	*(*uint16)(unsafe.Pointer(ms.offset + uintptr(pos))) = value
}

func (ms *MemoryAddressSpace) Write32Unchecked(pos uint32, value uint32) {
	*(*uint32)(unsafe.Pointer(ms.offset + uintptr(pos))) = value
}
