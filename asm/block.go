package asm

import (
	"fmt"
	"iter"
	"slices"
)

// Unit is a self-contained code-generating unit. Each unit kind supplies
// an explicit fully-qualified dotted name (nested kinds use '+'); the name
// must be unique across the program by convention, since unit entry labels
// are derived from it.
type Unit interface {
	// QualifiedName returns the fully-qualified dotted name of the unit.
	QualifiedName() string
	// Assemble emits the unit's instructions into the block.
	Assemble(blk *Block) error
}

// Block is the emission target of one unit. All emission calls append to
// the block's instruction stream; there is exactly one active stream per
// assembly invocation. Emission is single-threaded; the synthetic label
// counter is instance-local and is never shared across blocks.
type Block struct {
	Kind  string        // Unit kind name; prefix for synthetic labels.
	Insns []Instruction // Emitted instructions, in program order.

	counter uint32            // Synthetic label counter; first label is 1.
	equates map[string]uint32 // Values defined by Equ, for later Equ expressions.
}

// emit appends a record to the stream.
func (blk *Block) emit(insn Instruction) {
	blk.Insns = append(blk.Insns, insn)
}

// Instructions iterates the emitted stream in program order.
func (blk *Block) Instructions() iter.Seq[Instruction] {
	return slices.Values(blk.Insns)
}

// NewLabel allocates the next synthetic label for this block:
// <Kind><8-digit uppercase hex counter>. Labels are unique within the
// block; cross-block uniqueness comes from unique kind names.
func (blk *Block) NewLabel() string {
	blk.counter++
	return fmt.Sprintf("%v%08X", blk.Kind, blk.counter)
}

// BindLabel binds a label at the current stream position by emitting a
// zero-width marker record. Binding the same name twice is a caller error,
// caught at verification.
func (blk *Block) BindLabel(name string) {
	blk.emit(MakeInsnLabel(name))
}

// Jump emits an unconditional transfer to the label.
func (blk *Block) Jump(label string) {
	blk.emit(MakeInsnJump(label))
}

// ConditionalJump emits a transfer taken iff the hardware test holds.
func (blk *Block) ConditionalJump(test TestCode, label string) {
	blk.emit(MakeInsnJumpIf(test, label))
}

// JumpIf emits a transfer taken iff the logical flag holds, mapping the
// flag to its hardware test.
func (blk *Block) JumpIf(flag Flags, label string) {
	blk.ConditionalJump(flag.Test(), label)
}

// Call emits a transfer with return-address push.
func (blk *Block) Call(label string) {
	blk.emit(MakeInsnCall(label))
}

// CallUnit emits a call to another unit's entry label, derived from its
// qualified name.
func (blk *Block) CallUnit(unit Unit) {
	blk.Call(MakeLabel(unit.QualifiedName()))
}

// CallIf desugars a conditional call, which has no hardware instruction,
// into primitive jumps and labels:
//
//	jcc   if      ; flag holds: go make the call
//	jmp   exit    ; flag clear: skip the call entirely
//	if:   call label
//	      jmp jumpAfter  ; only when a continuation label is given
//	exit:
//
// The extra jump versus an inverted-condition form is deliberate; any
// later optimization must keep the call issued iff the flag holds and the
// continuation taken only after the call.
func (blk *Block) CallIf(flag Flags, label string, jumpAfter ...string) {
	ifLabel := blk.NewLabel()
	exitLabel := blk.NewLabel()

	blk.JumpIf(flag, ifLabel)
	blk.Jump(exitLabel)
	blk.BindLabel(ifLabel)
	blk.Call(label)
	if len(jumpAfter) > 0 {
		blk.Jump(jumpAfter[0])
	}
	blk.BindLabel(exitLabel)
}

// Push emits an immediate push. The width defaults to 32 bits; a single
// trailing argument selects 8, 16 or 32.
func (blk *Block) Push(value uint32, sizeInBits ...int) {
	size := 32
	if len(sizeInBits) > 0 {
		size = sizeInBits[0]
	}
	blk.emit(MakeInsnPush(value, size))
}

// PushRegister emits a push of a register operand.
func (blk *Block) PushRegister(reg Register) {
	blk.emit(Instruction{Kind: OP_PUSH_REG, Reg: reg})
}

// PopRegister emits a pop into a register operand.
func (blk *Block) PopRegister(reg Register) {
	blk.emit(Instruction{Kind: OP_POP_REG, Reg: reg})
}

// PushAddress emits a push of a data element's address.
func (blk *Block) PushAddress(ref ElementReference) {
	blk.emit(Instruction{Kind: OP_PUSH_ADDR, Ref: ref})
}

// AddressOf returns an operand referencing the named data element's
// address.
func (blk *Block) AddressOf(dataName string) ElementReference {
	return ElementReference(dataName)
}

// Return emits a return, optionally popping extra stack bytes (callee
// cleanup convention).
func (blk *Block) Return(popBytes ...uint16) {
	var pop uint16
	if len(popBytes) > 0 {
		pop = popBytes[0]
	}
	blk.emit(MakeInsnReturn(pop))
}

// PushAll32 emits a save of all 32-bit general-purpose registers as one
// unit.
func (blk *Block) PushAll32() {
	blk.emit(Instruction{Kind: OP_PUSH_ALL})
}

// PopAll32 emits the matching restore of all 32-bit general-purpose
// registers.
func (blk *Block) PopAll32() {
	blk.emit(Instruction{Kind: OP_POP_ALL})
}

// EnableInterrupts emits an interrupt-flag set.
func (blk *Block) EnableInterrupts() {
	blk.emit(Instruction{Kind: OP_STI})
}

// DisableInterrupts emits an interrupt-flag clear.
func (blk *Block) DisableInterrupts() {
	blk.emit(Instruction{Kind: OP_CLI})
}

// Define emits a conditional-assembly symbol definition for the
// downstream assembler.
func (blk *Block) Define(symbol string) {
	blk.emit(Instruction{Kind: OP_DEFINE, Label: symbol})
}

// IfDefined opens a conditional-assembly region. The caller must close it
// with a matching EndIfDefined; pairing is not validated here.
func (blk *Block) IfDefined(symbol string) {
	blk.emit(Instruction{Kind: OP_IFDEF, Label: symbol})
}

// EndIfDefined closes a conditional-assembly region.
func (blk *Block) EndIfDefined(symbol string) {
	blk.emit(Instruction{Kind: OP_ENDIF, Label: symbol})
}

// Extern declares a symbol resolved outside this program, exempting it
// from the bound-label check at verification.
func (blk *Block) Extern(symbol string) {
	blk.emit(Instruction{Kind: OP_EXTERN, Label: symbol})
}

// Equ emits a named constant whose expression is evaluated now, over the
// equates already defined in this block.
func (blk *Block) Equ(name string, expr string) (err error) {
	value, err := evalEquate(expr, blk.equates)
	if err != nil {
		return
	}

	if blk.equates == nil {
		blk.equates = map[string]uint32{name: value}
	} else {
		blk.equates[name] = value
	}

	blk.emit(Instruction{Kind: OP_EQU, Label: name, Value: value})
	return
}
