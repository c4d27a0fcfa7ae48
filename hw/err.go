package hw

import (
	"github.com/osforge/osforge/translate"
)

var f = translate.From

type ErrOutOfRange struct {
	Pos  uint32
	Size uint32
}

func (err ErrOutOfRange) Error() string {
	return f("position %#x outside of [0, %#x]", err.Pos, err.Size)
}

func (err ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfRange)
	return
}

type ErrPortRange struct {
	Offset uint32
	Size   uint32
}

func (err ErrPortRange) Error() string {
	return f("port range %#x+%#x exceeds the 16-bit port space", err.Offset, err.Size)
}

func (err ErrPortRange) Is(target error) (ok bool) {
	_, ok = target.(ErrPortRange)
	return
}
