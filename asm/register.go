package asm

// Register is an identity handle naming a general-purpose CPU register.
// Handles carry no state; they are used only as instruction operands.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_EAX = Register(0) // eax
	REG_EBX = Register(1) // ebx
	REG_ECX = Register(2) // ecx
	REG_EDX = Register(3) // edx
	REG_ESI = Register(4) // esi
	REG_EDI = Register(5) // edi
	REG_EBP = Register(6) // ebp
	REG_ESP = Register(7) // esp
)

// ElementReference names a data element whose address is taken by
// AddressOf. The element itself is defined elsewhere (data segment or
// another unit); resolution is the downstream assembler's concern.
type ElementReference string
