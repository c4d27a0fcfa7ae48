// Package asm implements the symbolic x86 emission layer of the osforge
// toolkit.
//
// A code-generating unit (a Unit) assembles into a Block, appending
// Instruction records to an ordered stream through primitive emission calls
// (jump, call, push, return, interrupt-flag toggles) and control-flow macros
// built on top of them (JumpIf, CallIf). Labels mark stream positions and
// are resolved to addresses by the downstream assembler; this layer only
// guarantees the labels it emits are well formed.
//
// The stream is append-only and never reinterpreted or reordered here.
// Rendering to NASM-style text for the downstream assembler is done by
// Writer; encoding to machine bytes is out of scope.
package asm
