package hw

// PortAddressSpace accesses a range of the 16-bit I/O port space through
// the CPU bus. offset+pos, truncated to 16 bits, is the port number; the
// constructor rejects any range that would leave the port space, so the
// truncation never discards bits in practice.
type PortAddressSpace struct {
	span
	bus Bus
}

var _ AddressSpace = (*PortAddressSpace)(nil)

// NewPortAddressSpace returns a port-mapped address space over
// [offset, offset+size], or ErrPortRange if the range exceeds the 16-bit
// port space. The rejection happens before any access is possible.
func NewPortAddressSpace(bus Bus, offset uint32, size uint32) (ps *PortAddressSpace, err error) {
	if offset > 0xffff || uint64(offset)+uint64(size) > 0xffff {
		err = ErrPortRange{Offset: offset, Size: size}
		return
	}

	ps = &PortAddressSpace{
		span: span{offset: uintptr(offset), size: size},
		bus:  bus,
	}
	return
}

// port returns the port number for a position.
func (ps *PortAddressSpace) port(pos uint32) uint16 {
	return uint16(ps.offset + uintptr(pos))
}

func (ps *PortAddressSpace) Read8(pos uint32) (value uint8, err error) {
	err = ps.check(pos)
	if err != nil {
		return
	}
	value = ps.Read8Unchecked(pos)
	return
}

func (ps *PortAddressSpace) Read16(pos uint32) (value uint16, err error) {
	err = ps.check(pos)
	if err != nil {
		return
	}
	value = ps.Read16Unchecked(pos)
	return
}

func (ps *PortAddressSpace) Read32(pos uint32) (value uint32, err error) {
	err = ps.check(pos)
	if err != nil {
		return
	}
	value = ps.Read32Unchecked(pos)
	return
}

func (ps *PortAddressSpace) Write8(pos uint32, value uint8) (err error) {
	err = ps.check(pos)
	if err != nil {
		return
	}
	ps.Write8Unchecked(pos, value)
	return
}

func (ps *PortAddressSpace) Write16(pos uint32, value uint16) (err error) {
	err = ps.check(pos)
	if err != nil {
		return
	}
	ps.Write16Unchecked(pos, value)
	return
}

func (ps *PortAddressSpace) Write32(pos uint32, value uint32) (err error) {
	err = ps.check(pos)
	if err != nil {
		return
	}
	ps.Write32Unchecked(pos, value)
	return
}

func (ps *PortAddressSpace) Read8Unchecked(pos uint32) uint8 {
	return ps.bus.Read8(ps.port(pos))
}

func (ps *PortAddressSpace) Read16Unchecked(pos uint32) uint16 {
	return ps.bus.Read16(ps.port(pos))
}

func (ps *PortAddressSpace) Read32Unchecked(pos uint32) uint32 {
	return ps.bus.Read32(ps.port(pos))
}

func (ps *PortAddressSpace) Write8Unchecked(pos uint32, value uint8) {
	ps.bus.Write8(ps.port(pos), value)
}

func (ps *PortAddressSpace) Write16Unchecked(pos uint32, value uint16) {
	ps.bus.Write16(ps.port(pos), value)
}

func (ps *PortAddressSpace) Write32Unchecked(pos uint32, value uint32) {
	ps.bus.Write32(ps.port(pos), value)
}
