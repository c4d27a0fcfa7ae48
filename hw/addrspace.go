package hw

// AddressSpace is the contract shared by both backing stores. Checked
// accessors fail with ErrOutOfRange for positions outside [0, size] and
// never clamp; unchecked accessors perform the identical data access with
// no validation, for hot paths that have validated the range once.
type AddressSpace interface {
	Read8(pos uint32) (uint8, error)
	Read16(pos uint32) (uint16, error)
	Read32(pos uint32) (uint32, error)
	Write8(pos uint32, value uint8) error
	Write16(pos uint32, value uint16) error
	Write32(pos uint32, value uint32) error

	Read8Unchecked(pos uint32) uint8
	Read16Unchecked(pos uint32) uint16
	Read32Unchecked(pos uint32) uint32
	Write8Unchecked(pos uint32, value uint8)
	Write16Unchecked(pos uint32, value uint16)
	Write32Unchecked(pos uint32, value uint32)
}

// span is the bounded region common to both backends. The base address is
// pointer-width so the direct backend can address the host's memory; the
// port backend constrains it to the 16-bit port space at construction.
type span struct {
	offset uintptr // Base address.
	size   uint32  // Extent; valid positions are [0, size].
}

// check validates a position against the span's bound. The upper bound is
// inclusive: pos == size is the last valid position.
func (sp *span) check(pos uint32) (err error) {
	if pos > sp.size {
		err = ErrOutOfRange{Pos: pos, Size: sp.size}
	}
	return
}

// Offset returns the base address of the region.
func (sp *span) Offset() uintptr {
	return sp.offset
}

// Size returns the extent of the region.
func (sp *span) Size() uint32 {
	return sp.size
}
