package asm

import (
	"errors"

	"github.com/osforge/osforge/translate"
)

var f = translate.From

var (
	// Writer errors
	ErrWidthInvalid = errors.New(f("push width invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v referenced but never bound", string(el))
}

func (el ErrLabelMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelMissing)
	return
}

type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label %v bound more than once", string(el))
}

func (el ErrLabelDuplicate) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelDuplicate)
	return
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid equate expression", string(err))
}

func (err ErrParseExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrParseExpression)
	return
}

type ErrUnit struct {
	Unit string
	Err  error
}

func (err ErrUnit) Error() string {
	return f("unit %v: %v", err.Unit, err.Err)
}

func (err ErrUnit) Unwrap() error {
	return err.Err
}
