package asm

import (
	"strings"
)

// MakeLabel derives an assembly label from a fully-qualified dotted name.
// The last dot-separated segment is taken and any nested-type '+' marker
// is rewritten to '_'. Pure function; same input always yields the same
// label, and marker characters are rewritten, never dropped.
func MakeLabel(qualified string) string {
	segments := strings.Split(qualified, ".")
	last := segments[len(segments)-1]
	return strings.ReplaceAll(last, "+", "_")
}
