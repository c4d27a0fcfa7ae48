package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func insnEqual(t *testing.T, expected []Instruction, blk *Block) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(blk.Insns))
	if len(expected) == len(blk.Insns) {
		for n := range len(expected) {
			assert.Equal(expected[n], blk.Insns[n])
		}
	}
}

func TestBindLabel(t *testing.T) {
	blk := &Block{Kind: "Boot"}

	blk.BindLabel("Boot")
	blk.Jump("Boot")

	insnEqual(t, []Instruction{
		{Kind: OP_LABEL, Label: "Boot"},
		{Kind: OP_JUMP, Label: "Boot"},
	}, blk)
}

func TestFlagAliases(t *testing.T) {
	assert := assert.New(t)

	// Zero/Equal and NotZero/NotEqual are the same test.
	assert.Equal(FlagZero, FlagEqual)
	assert.Equal(FlagNotZero, FlagNotEqual)
	assert.Equal(FlagZero.Test(), FlagEqual.Test())
	assert.Equal(FlagNotZero.Test(), FlagNotEqual.Test())
}

func TestJumpIf(t *testing.T) {
	tests := []struct {
		name string
		flag Flags
		test TestCode
	}{
		{"zero", FlagZero, TEST_Z},
		{"equal", FlagEqual, TEST_Z},
		{"not zero", FlagNotZero, TEST_NZ},
		{"not equal", FlagNotEqual, TEST_NZ},
		{"greater or equal", FlagGreaterThanOrEqualTo, TEST_GE},
		{"less than", FlagLessThan, TEST_L},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk := &Block{Kind: "T"}
			blk.JumpIf(tt.flag, "target")

			insnEqual(t, []Instruction{
				{Kind: OP_JUMP_IF, Test: tt.test, Label: "target"},
			}, blk)
		})
	}
}

func TestPushWidths(t *testing.T) {
	assert := assert.New(t)

	blk := &Block{Kind: "T"}
	blk.Push(5)
	blk.Push(5, 16)
	blk.Push(5, 8)

	insnEqual(t, []Instruction{
		{Kind: OP_PUSH, Value: 5, Size: 32},
		{Kind: OP_PUSH, Value: 5, Size: 16},
		{Kind: OP_PUSH, Value: 5, Size: 8},
	}, blk)

	// Width is independent of the value itself.
	assert.Equal(blk.Insns[0].Value, blk.Insns[1].Value)
	assert.NotEqual(blk.Insns[0].Size, blk.Insns[1].Size)
}

func TestCallIf(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.CallIf(FlagZero, "routine")

	// Exactly one of the two paths is reachable at run time: the test
	// holds and T00000001 calls the routine, or the jmp skips straight
	// to T00000002 without it.
	insnEqual(t, []Instruction{
		{Kind: OP_JUMP_IF, Test: TEST_Z, Label: "T00000001"},
		{Kind: OP_JUMP, Label: "T00000002"},
		{Kind: OP_LABEL, Label: "T00000001"},
		{Kind: OP_CALL, Label: "routine"},
		{Kind: OP_LABEL, Label: "T00000002"},
	}, blk)
}

func TestCallIfJumpAfter(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.CallIf(FlagLessThan, "routine", "continue")

	insnEqual(t, []Instruction{
		{Kind: OP_JUMP_IF, Test: TEST_L, Label: "T00000001"},
		{Kind: OP_JUMP, Label: "T00000002"},
		{Kind: OP_LABEL, Label: "T00000001"},
		{Kind: OP_CALL, Label: "routine"},
		{Kind: OP_JUMP, Label: "continue"},
		{Kind: OP_LABEL, Label: "T00000002"},
	}, blk)
}

func TestReturn(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.Return()
	blk.Return(4)

	insnEqual(t, []Instruction{
		{Kind: OP_RETURN, Pop: 0},
		{Kind: OP_RETURN, Pop: 4},
	}, blk)
}

func TestSimpleOps(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.PushAll32()
	blk.PopAll32()
	blk.EnableInterrupts()
	blk.DisableInterrupts()

	insnEqual(t, []Instruction{
		{Kind: OP_PUSH_ALL},
		{Kind: OP_POP_ALL},
		{Kind: OP_STI},
		{Kind: OP_CLI},
	}, blk)
}

func TestRegisterOps(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.PushRegister(REG_EAX)
	blk.PopRegister(REG_EBX)

	insnEqual(t, []Instruction{
		{Kind: OP_PUSH_REG, Reg: REG_EAX},
		{Kind: OP_POP_REG, Reg: REG_EBX},
	}, blk)
}

func TestAddressOf(t *testing.T) {
	assert := assert.New(t)

	blk := &Block{Kind: "T"}
	ref := blk.AddressOf("MultiBootInfo")
	assert.Equal(ElementReference("MultiBootInfo"), ref)

	blk.PushAddress(ref)

	insnEqual(t, []Instruction{
		{Kind: OP_PUSH_ADDR, Ref: "MultiBootInfo"},
	}, blk)
}

func TestDirectives(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.Define("DEBUG")
	blk.IfDefined("DEBUG")
	blk.EndIfDefined("DEBUG")
	blk.Extern("kmain")

	insnEqual(t, []Instruction{
		{Kind: OP_DEFINE, Label: "DEBUG"},
		{Kind: OP_IFDEF, Label: "DEBUG"},
		{Kind: OP_ENDIF, Label: "DEBUG"},
		{Kind: OP_EXTERN, Label: "kmain"},
	}, blk)
}

func TestCallUnit(t *testing.T) {
	blk := &Block{Kind: "T"}
	blk.CallUnit(&fakeUnit{name: "os.kernel.Timer+Tick"})

	insnEqual(t, []Instruction{
		{Kind: OP_CALL, Label: "Timer_Tick"},
	}, blk)
}
