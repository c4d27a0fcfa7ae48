package asm

import (
	"iter"

	"github.com/osforge/osforge/internal"
)

// Program is the ordered collection of assembled blocks, consumed by the
// downstream assembler as one instruction stream.
type Program struct {
	Blocks []*Block
}

// Assemble runs each unit to completion, in order, appending its block to
// the program. Each block is entered through a label derived from the
// unit's qualified name, bound at the start of its stream.
func (prog *Program) Assemble(units ...Unit) (err error) {
	for _, unit := range units {
		blk := &Block{Kind: MakeLabel(unit.QualifiedName())}
		blk.BindLabel(blk.Kind)
		err = unit.Assemble(blk)
		if err != nil {
			err = &ErrUnit{Unit: blk.Kind, Err: err}
			return
		}
		prog.Blocks = append(prog.Blocks, blk)
	}
	return
}

// Instructions iterates the whole program's stream, block by block, in
// program order.
func (prog *Program) Instructions() iter.Seq[Instruction] {
	seqs := make([]iter.Seq[Instruction], 0, len(prog.Blocks))
	for _, blk := range prog.Blocks {
		seqs = append(seqs, blk.Instructions())
	}
	return internal.IterSeqConcat(seqs...)
}

// Verify checks the stream's label discipline: every label referenced by
// a jump or call must be bound exactly once, or declared extern. This is
// the check the downstream assembler would otherwise fail the build on.
func (prog *Program) Verify() (err error) {
	bound := map[string]bool{}
	extern := map[string]bool{}
	var refs []string

	for insn := range prog.Instructions() {
		switch insn.Kind {
		case OP_LABEL:
			if bound[insn.Label] {
				err = ErrLabelDuplicate(insn.Label)
				return
			}
			bound[insn.Label] = true
		case OP_EXTERN:
			extern[insn.Label] = true
		case OP_JUMP, OP_JUMP_IF, OP_CALL:
			refs = append(refs, insn.Label)
		}
	}

	for _, label := range refs {
		if !bound[label] && !extern[label] {
			err = ErrLabelMissing(label)
			return
		}
	}

	return
}
