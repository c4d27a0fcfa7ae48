package hw

// Bus is the CPU bus collaborator performing port-mapped I/O. The real
// bus is implemented by the platform layer; tests substitute a recording
// fake.
type Bus interface {
	Read8(port uint16) uint8
	Read16(port uint16) uint16
	Read32(port uint16) uint32
	Write8(port uint16, value uint8)
	Write16(port uint16, value uint16)
	Write32(port uint16, value uint32)
}
