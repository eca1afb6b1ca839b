// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

// Shape-recovery coercions.
//
// Code generic over [S By[T]] holds its value at the constraint: it can
// call the constraint's methods but cannot name the concrete
// representation, even though for any given instantiation that
// representation is fixed by construction. The coercions assert the
// concrete shape for one convention and hand back its canonical form.
//
// A coercion relabels an already-valid representation bit for bit; it
// never transforms data. Precondition at every call site: the value was
// produced as the shape of T for that exact convention. Unlike the
// conversion algebra this is checked at runtime, not compile time — a
// mismatch panics.
//
// The pointers returned by [CoerceRef] and [CoerceMut] re-expose the
// view's storage with no compile-time guard on how they are used. They are
// the package's sole unsafe surface: writing through a CoerceRef result,
// or keeping either result beyond the life of the storage, violates the
// aliasing discipline and corrupts the program as surely as any other
// misused pointer. Confine them to narrow, manually verified call sites.

// CoerceVal asserts that s is the by-value shape of T and returns the
// owned value. Panics if s belongs to a different convention.
func CoerceVal[T any, S By[T]](s S) T {
	v, ok := any(s).(Val[T])
	if !ok {
		badCoercion("Val", s.Conv())
	}
	return v.v
}

// CoerceRef asserts that s is the read-only-view shape of T and returns
// the underlying storage pointer. Panics if s belongs to a different
// convention. The read-only contract of the source view carries over to
// the returned pointer.
func CoerceRef[T any, S By[T]](s S) *T {
	r, ok := any(s).(Ref[T])
	if !ok {
		badCoercion("Ref", s.Conv())
	}
	return r.p
}

// CoerceMut asserts that s is the exclusive-view shape of T and returns
// the underlying storage pointer. Panics if s belongs to a different
// convention. The exclusivity contract of the source view carries over to
// the returned pointer.
func CoerceMut[T any, S By[T]](s S) *T {
	m, ok := any(s).(Mut[T])
	if !ok {
		badCoercion("Mut", s.Conv())
	}
	return m.p
}

// badCoercion panics with a descriptive message for mismatched coercions.
// Extracted as a noinline function so that the coercions remain
// inlineable.
//
//go:noinline
func badCoercion(want string, got Conv) {
	panic("callby: coercion to " + want + " applied to the " + got.String() + " shape")
}
