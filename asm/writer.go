package asm

import (
	"fmt"
	"io"
	"log"
)

// Writer renders a program's instruction stream as NASM-style assembly
// text for the downstream assembler. The program is verified first;
// nothing is written for a stream with broken label discipline.
type Writer struct {
	Verbose bool // If set, verbosely logs each rendered line.
}

// widthName maps an immediate width in bits to its NASM size keyword.
func widthName(size int) (name string, err error) {
	switch size {
	case 8:
		name = "byte"
	case 16:
		name = "word"
	case 32:
		name = "dword"
	default:
		err = ErrWidthInvalid
	}
	return
}

// render returns the NASM text line for one record.
func (w *Writer) render(insn Instruction) (line string, err error) {
	switch insn.Kind {
	case OP_LABEL:
		line = fmt.Sprintf("%v:", insn.Label)
	case OP_JUMP:
		line = fmt.Sprintf("\tjmp %v", insn.Label)
	case OP_JUMP_IF:
		line = fmt.Sprintf("\t%v %v", insn.Test, insn.Label)
	case OP_CALL:
		line = fmt.Sprintf("\tcall %v", insn.Label)
	case OP_PUSH:
		var width string
		width, err = widthName(insn.Size)
		if err != nil {
			return
		}
		line = fmt.Sprintf("\tpush %v %#x", width, insn.Value)
	case OP_PUSH_ADDR:
		line = fmt.Sprintf("\tpush dword %v", string(insn.Ref))
	case OP_PUSH_REG:
		line = fmt.Sprintf("\tpush %v", insn.Reg)
	case OP_POP_REG:
		line = fmt.Sprintf("\tpop %v", insn.Reg)
	case OP_RETURN:
		if insn.Pop == 0 {
			line = "\tret"
		} else {
			line = fmt.Sprintf("\tret %v", insn.Pop)
		}
	case OP_PUSH_ALL:
		line = "\tpushad"
	case OP_POP_ALL:
		line = "\tpopad"
	case OP_STI:
		line = "\tsti"
	case OP_CLI:
		line = "\tcli"
	case OP_DEFINE:
		line = fmt.Sprintf("%%define %v", insn.Label)
	case OP_IFDEF:
		line = fmt.Sprintf("%%ifdef %v", insn.Label)
	case OP_ENDIF:
		line = "%endif"
	case OP_EQU:
		line = fmt.Sprintf("%v equ %#x", insn.Label, insn.Value)
	case OP_EXTERN:
		line = fmt.Sprintf("extern %v", insn.Label)
	}
	return
}

// Write verifies the program and renders its stream to out.
func (w *Writer) Write(out io.Writer, prog *Program) (err error) {
	err = prog.Verify()
	if err != nil {
		return
	}

	for insn := range prog.Instructions() {
		var line string
		line, err = w.render(insn)
		if err != nil {
			return
		}

		if w.Verbose {
			log.Printf("%v\n", line)
		}

		_, err = fmt.Fprintln(out, line)
		if err != nil {
			return
		}
	}

	return
}
