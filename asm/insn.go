package asm

// OpKind is the kind of an emitted instruction record.
type OpKind int

//go:generate go tool stringer -linecomment -type=OpKind
const (
	OP_LABEL     = OpKind(0)  // label
	OP_JUMP      = OpKind(1)  // jmp
	OP_JUMP_IF   = OpKind(2)  // jcc
	OP_CALL      = OpKind(3)  // call
	OP_PUSH      = OpKind(4)  // push
	OP_PUSH_ADDR = OpKind(5)  // pushaddr
	OP_PUSH_REG  = OpKind(6)  // pushreg
	OP_POP_REG   = OpKind(7)  // popreg
	OP_RETURN    = OpKind(8)  // ret
	OP_PUSH_ALL  = OpKind(9)  // pushad
	OP_POP_ALL   = OpKind(10) // popad
	OP_STI       = OpKind(11) // sti
	OP_CLI       = OpKind(12) // cli
	OP_DEFINE    = OpKind(13) // define
	OP_IFDEF     = OpKind(14) // ifdef
	OP_ENDIF     = OpKind(15) // endif
	OP_EQU       = OpKind(16) // equ
	OP_EXTERN    = OpKind(17) // extern
)

// Instruction is one emitted record of the instruction stream. Records are
// appended in program order and carry enough information for the downstream
// assembler to encode them; this layer never interprets or reorders them.
type Instruction struct {
	Kind  OpKind
	Label string           // Destination label, bound label, or symbol name.
	Test  TestCode         // Hardware test for OP_JUMP_IF.
	Value uint32           // Immediate for OP_PUSH and OP_EQU.
	Size  int              // Immediate width in bits for OP_PUSH.
	Pop   uint16           // Extra stack bytes released by OP_RETURN.
	Reg   Register         // Operand register for OP_PUSH_REG and OP_POP_REG.
	Ref   ElementReference // Data element for OP_PUSH_ADDR.
}

// MakeInsnLabel creates the zero-width marker record binding a label.
func MakeInsnLabel(name string) Instruction {
	return Instruction{Kind: OP_LABEL, Label: name}
}

// MakeInsnJump creates an unconditional transfer to a label.
func MakeInsnJump(label string) Instruction {
	return Instruction{Kind: OP_JUMP, Label: label}
}

// MakeInsnJumpIf creates a transfer taken iff the hardware test holds.
func MakeInsnJumpIf(test TestCode, label string) Instruction {
	return Instruction{Kind: OP_JUMP_IF, Test: test, Label: label}
}

// MakeInsnCall creates a transfer with return-address push.
func MakeInsnCall(label string) Instruction {
	return Instruction{Kind: OP_CALL, Label: label}
}

// MakeInsnPush creates an immediate push of the given width in bits.
func MakeInsnPush(value uint32, size int) Instruction {
	return Instruction{Kind: OP_PUSH, Value: value, Size: size}
}

// MakeInsnReturn creates a return record popping pop extra stack bytes.
func MakeInsnReturn(pop uint16) Instruction {
	return Instruction{Kind: OP_RETURN, Pop: pop}
}
