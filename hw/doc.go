// Package hw provides bounded access to the two physical address spaces
// of the machine: linear memory and port-mapped I/O.
//
// An AddressSpace is a region of offset and size with checked and
// unchecked read/write primitives at 8, 16 and 32 bits. The direct-memory
// backend dereferences the linear address; the port-mapped backend
// delegates to a CPU Bus collaborator, within the 16-bit port space.
// Accesses are raw single hardware operations with no internal locking;
// callers serialize concurrent use.
package hw
