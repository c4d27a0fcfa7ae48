// Package stub provides the runtime stub units emitted into every kernel
// image: the protected-mode entry block and the interrupt trampolines.
// The units are also the reference consumers of the asm block API.
package stub

import (
	"fmt"

	"github.com/osforge/osforge/asm"
)

// KernelEntry emits the protected-mode entry block: publish the boot
// constants, hand the multiboot state to the kernel main routine, and
// park the CPU if it ever returns.
type KernelEntry struct {
	Main string // Label of the kernel main routine (extern).
}

func (ke *KernelEntry) QualifiedName() string {
	return "osforge.stub.KernelEntry"
}

func (ke *KernelEntry) Assemble(blk *asm.Block) (err error) {
	blk.Extern(ke.Main)
	blk.Define("OSFORGE")

	err = blk.Equ("STACK_BASE", "0x200000")
	if err != nil {
		return
	}
	err = blk.Equ("STACK_TOP", "STACK_BASE + 0x10000 - 4")
	if err != nil {
		return
	}

	blk.DisableInterrupts()
	// Multiboot leaves the magic in eax and the info pointer in ebx.
	blk.PushRegister(asm.REG_EBX)
	blk.PushRegister(asm.REG_EAX)
	blk.PushAddress(blk.AddressOf("MultiBootInfo"))
	blk.Call(ke.Main)

	park := blk.NewLabel()
	blk.BindLabel(park)
	blk.Jump(park)
	return
}

// IRQEnter emits the common trampoline for one hardware interrupt: save
// all registers, push the interrupt number, call the dispatcher, restore
// and return. The dispatcher releases the pushed number with a ret 4.
type IRQEnter struct {
	IRQ      uint32
	Dispatch string // Label of the dispatch routine (extern).
}

func (ie *IRQEnter) QualifiedName() string {
	return fmt.Sprintf("osforge.stub.IRQEnter+IRQ%02X", ie.IRQ)
}

func (ie *IRQEnter) Assemble(blk *asm.Block) (err error) {
	blk.Extern(ie.Dispatch)
	blk.DisableInterrupts()
	blk.PushAll32()
	blk.Push(ie.IRQ)
	blk.Call(ie.Dispatch)
	blk.PopAll32()
	blk.EnableInterrupts()
	blk.Return()
	return
}

// TrapGate emits the debug trap gate: when the zero flag reports a
// pending trap, call the tracer; otherwise fall straight through. The
// whole gate only exists in images assembled with DEBUG defined.
type TrapGate struct {
	Tracer string // Label of the trace routine (extern).
}

func (tg *TrapGate) QualifiedName() string {
	return "osforge.stub.TrapGate"
}

func (tg *TrapGate) Assemble(blk *asm.Block) (err error) {
	blk.Extern(tg.Tracer)
	blk.IfDefined("DEBUG")
	blk.CallIf(asm.FlagNotZero, tg.Tracer)
	blk.EndIfDefined("DEBUG")
	blk.Return()
	return
}
