// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

// Generalized view adaptation between related types.
//
// For a pair of logical types S and T — say a container and a view of its
// contents — a convention-polymorphic abstraction needs to turn the shape
// of S into the shape of T under whichever convention it was instantiated
// at. AsVal, AsRef and AsMut are the three instantiations of that single
// operation; a generic caller selects among them by the same instantiation
// that selects its shapes, so no runtime branch on the convention ever
// executes.
//
// Collaborating code supplies the adapters for the pairs it cares about:
// [Into] on S for the owned conversion, [RefConv] and [MutConv] on *S for
// the borrowing ones.

// Into is the owned-conversion capability from the implementing type to T,
// the generalization target of [AsVal]. Implementations consume the
// receiver and may restructure freely; ownership of the result transfers
// to the caller.
type Into[T any] interface {
	Into() T
}

// RefConv is the borrow-as capability: a read-only projection of a T
// embedded in (or derived from) the receiver's storage. Implementations
// must return a pointer into existing storage, not a copy, and must not
// mutate the receiver. Implemented on *S so the projection points into the
// original, never into a copy of it.
type RefConv[T any] interface {
	AsRef() *T
}

// MutConv is the borrow-as-mutable capability: an exclusive read-write
// projection of a T within the receiver's storage. The same no-copy rule
// as [RefConv] applies, and the exclusivity of the source view carries
// over to the projection.
type MutConv[T any] interface {
	AsMut() *T
}

// AsVal adapts an owned S into an owned T via the [Into] capability: the
// by-value instantiation of view adaptation.
func AsVal[T any, S Into[T]](s Val[S]) Val[T] {
	return Val[T]{v: s.v.Into()}
}

// AsRef adapts a read-only view of S into a read-only view of T via the
// [RefConv] capability, without copying. The result views storage reached
// through the source's storage and inherits its validity region.
//
// PS is inferred from S; call sites name only T, e.g. AsRef[Item](r).
func AsRef[T, S any, PS interface {
	*S
	RefConv[T]
}](s Ref[S]) Ref[T] {
	return Ref[T]{p: PS(s.p).AsRef()}
}

// AsMut adapts an exclusive view of S into an exclusive view of T via the
// [MutConv] capability, without copying. While the derived Mut is live the
// source Mut must not be used, exactly as with an exclusive reborrow.
func AsMut[T, S any, PS interface {
	*S
	MutConv[T]
}](s Mut[S]) Mut[T] {
	return Mut[T]{p: PS(s.p).AsMut()}
}
