// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

// Cloner is the capability for explicit duplication. A type implements it
// by returning an independent deep copy of itself. Operations that must
// duplicate through a view ([Clone], [ConvertVal]) require it; types for
// which Go assignment already duplicates fully can use the Copy variants
// instead.
type Cloner[T any] interface {
	Clone() T
}

// Copy produces an owned T from a shape of unknown convention by trivial
// duplication: identity for Val, dereference for Ref and Mut.
//
// Trivial means Go assignment. For types with pointer-kinded fields the
// duplicate shares backing storage with the original; use [Clone] where
// that matters.
func Copy[T any, S By[T]](s S) T {
	return s.value()
}

// Clone produces an owned T from a shape of unknown convention by explicit
// duplication: identity for Val (the owned value needs no duplication to
// be owned), Clone-through-the-view for Ref and Mut.
func Clone[T Cloner[T], S By[T]](s S) T {
	switch v := any(s).(type) {
	case Val[T]:
		return v.v
	case Ref[T]:
		return (*v.p).Clone()
	case Mut[T]:
		return (*v.p).Clone()
	}
	// By seals the shape set; no fourth case exists.
	badShape("Clone")
	var zero T
	return zero
}

// badShape panics with a descriptive message for values outside the sealed
// shape set. Extracted as a noinline function so that callers remain
// inlineable.
//
//go:noinline
func badShape(op string) {
	panic("callby: " + op + " applied to a value outside the sealed shape set")
}
