// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

// Conv is the runtime token for a calling convention.
//
// Tokens exist for uniformity with other tagged values: they are
// comparable, ordered by declaration, usable as map keys, and printable.
// They carry no behavior — every operation in this package resolves on the
// shape types, never on tokens, so no runtime branch on a Conv is part of
// any conversion.
//
// The load-bearing closed set is the type-level one: the three shapes
// admitted by the [By] constraint. A Conv outside the three declared
// values has no meaning and is treated as invalid by [MatchConv].
type Conv uint8

const (
	// ConvVal passes by owned value: ownership transfers to the callee.
	ConvVal Conv = iota
	// ConvRef passes by read-only view of storage owned elsewhere.
	ConvRef
	// ConvMut passes by exclusive read-write view.
	ConvMut
)

// String returns a human-readable representation of the convention.
func (c Conv) String() string {
	switch c {
	case ConvVal:
		return "val"
	case ConvRef:
		return "ref"
	case ConvMut:
		return "mut"
	default:
		return "?"
	}
}

// MatchConv pattern matches on a convention token, calling exactly one of
// onVal, onRef or onMut. The token set is closed, so the match is
// exhaustive; a token outside the three declared values panics.
func MatchConv[R any](c Conv, onVal, onRef, onMut func() R) R {
	switch c {
	case ConvVal:
		return onVal()
	case ConvRef:
		return onRef()
	case ConvMut:
		return onMut()
	}
	badConv(c)
	var zero R
	return zero
}

// badConv panics with a descriptive message for invalid convention tokens.
// Extracted as a noinline function so that MatchConv remains inlineable.
//
//go:noinline
func badConv(c Conv) {
	panic("callby: invalid convention token " + c.String())
}
