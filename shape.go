// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

// Val is the shape of T under the by-value convention: an owned T.
// Passing a Val transfers ownership; there is no lifetime to respect
// because the value carries its own storage.
type Val[T any] struct {
	v T
}

// Own lifts an owned value into the by-value shape.
func Own[T any](v T) Val[T] {
	return Val[T]{v: v}
}

// Value returns the owned value.
func (v Val[T]) Value() T {
	return v.v
}

// Conv returns the by-value convention token.
func (Val[T]) Conv() Conv { return ConvVal }

func (v Val[T]) value() T { return v.v }

// Ref is the shape of T under the read-only-view convention: a view of
// storage owned elsewhere. Any number of Refs of the same storage may
// coexist. The storage must outlive every use of the view, and must not be
// mutated through other views while a Ref of it is live.
//
// A Ref exposes its referent by copy-out only; mutation through a Ref is
// not representable. The zero Ref views no storage and must not be used.
type Ref[T any] struct {
	p *T
}

// Borrow takes a read-only view of the storage at p.
func Borrow[T any](p *T) Ref[T] {
	return Ref[T]{p: p}
}

// Get returns a copy of the viewed value.
func (r Ref[T]) Get() T {
	return *r.p
}

// Conv returns the read-only-view convention token.
func (Ref[T]) Conv() Conv { return ConvRef }

func (r Ref[T]) value() T { return *r.p }

// Mut is the shape of T under the exclusive-view convention: a read-write
// view of storage owned elsewhere. While a Mut of some storage is live, no
// other view of that storage — shared or exclusive — may be used. The zero
// Mut views no storage and must not be used.
type Mut[T any] struct {
	p *T
}

// BorrowMut takes an exclusive view of the storage at p.
func BorrowMut[T any](p *T) Mut[T] {
	return Mut[T]{p: p}
}

// Get returns a copy of the viewed value.
func (m Mut[T]) Get() T {
	return *m.p
}

// Set replaces the viewed value.
func (m Mut[T]) Set(v T) {
	*m.p = v
}

// Ptr returns the underlying storage pointer. The exclusivity contract
// extends to the returned pointer: it must not be used concurrently with
// any other view of the same storage.
func (m Mut[T]) Ptr() *T {
	return m.p
}

// Conv returns the exclusive-view convention token.
func (Mut[T]) Conv() Conv { return ConvMut }

func (m Mut[T]) value() T { return *m.p }

// By is the constraint satisfied by the three shapes of T and nothing
// else. Convention-generic code is written over [S By[T], T any]; the
// instantiation of S selects the convention, so the choice is resolved
// entirely at compile time.
//
// The union closes the type set to the three in-package shapes and the
// unexported method seals it a second time: no external type can satisfy
// By, and switching over the three shapes is exhaustive.
type By[T any] interface {
	Val[T] | Ref[T] | Mut[T]

	// Conv reports the convention this shape belongs to.
	Conv() Conv

	value() T
}
