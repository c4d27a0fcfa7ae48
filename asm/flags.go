package asm

// Flags is a logical condition, abstracted from the hardware condition
// code it maps to. The enumeration is closed; Zero/Equal and
// NotZero/NotEqual are aliases for the same test and may be used
// interchangeably.
type Flags int

const (
	FlagZero                 = Flags(0)
	FlagEqual                = FlagZero
	FlagNotZero              = Flags(1)
	FlagNotEqual             = FlagNotZero
	FlagGreaterThanOrEqualTo = Flags(2)
	FlagLessThan             = Flags(3)
)

// TestCode is the hardware condition test selected by a conditional jump.
type TestCode int

//go:generate go tool stringer -linecomment -type=TestCode
const (
	TEST_Z  = TestCode(0) // jz
	TEST_NZ = TestCode(1) // jnz
	TEST_GE = TestCode(2) // jge
	TEST_L  = TestCode(3) // jl
)

// testMap maps each logical flag to exactly one hardware test.
var testMap = map[Flags]TestCode{
	FlagZero:                 TEST_Z,
	FlagNotZero:              TEST_NZ,
	FlagGreaterThanOrEqualTo: TEST_GE,
	FlagLessThan:             TEST_L,
}

// Test returns the hardware test code for the flag.
func (flag Flags) Test() TestCode {
	return testMap[flag]
}
