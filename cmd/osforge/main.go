// Copyright 2025, osforge authors

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/osforge/osforge/asm"
	"github.com/osforge/osforge/stub"
)

func main() {
	var output string
	var kmain string
	var dispatch string
	var tracer string
	var irqs uint
	var verbose bool

	flag.StringVar(&output, "o", "-", "Output .asm listing")
	flag.StringVar(&kmain, "m", "kmain", "Kernel main routine label")
	flag.StringVar(&dispatch, "d", "irq_dispatch", "IRQ dispatch routine label")
	flag.StringVar(&tracer, "t", "trap_trace", "Trap trace routine label")
	flag.UintVar(&irqs, "n", 16, "Number of IRQ trampolines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	units := []asm.Unit{
		&stub.KernelEntry{Main: kmain},
		&stub.TrapGate{Tracer: tracer},
	}
	for irq := range uint32(irqs) {
		units = append(units, &stub.IRQEnter{IRQ: 0x20 + irq, Dispatch: dispatch})
	}

	prog := &asm.Program{}
	err := prog.Assemble(units...)
	if err != nil {
		log.Fatalf("assemble: %v", err)
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		outf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer outf.Close()
		out = outf
	}

	writer := &asm.Writer{Verbose: verbose}
	err = writer.Write(out, prog)
	if err != nil {
		log.Fatalf("write: %v", err)
	}
}
