// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

// Conversion algebra between calling conventions.
//
// Each target convention has a source constraint listing exactly the
// shapes that can soundly convert to it:
//
//	from \ to    Val            Ref        Mut
//	Val          identity       —          —
//	Ref          duplicate      reborrow   —
//	Mut          duplicate      narrow     reborrow
//
// The empty cells are not runtime errors; they are absent from the
// constraints, so requesting one fails type checking with a diagnostic
// naming the shape and type, e.g.
//
//	ConvertRef[int](Own(7))   // Val[int] does not satisfy RefFrom[int]
//	ConvertMut[int](Borrow(&x)) // Ref[int] does not satisfy MutFrom[int]
//
// Val cannot become a view because no storage would outlive the
// conversion for the view to point at. Ref cannot become Mut because that
// would fabricate exclusive access to possibly-aliased data.

// ValFrom is the set of shapes convertible to the by-value convention:
// all three, since every shape can surrender or duplicate its value.
type ValFrom[T any] interface {
	By[T]
}

// RefFrom is the set of shapes convertible to the read-only-view
// convention: Ref (identity reborrow) and Mut (exclusive-to-shared
// narrowing). Val is absent — a view cannot outlive a local owned value.
type RefFrom[T any] interface {
	Ref[T] | Mut[T]

	reborrow() Ref[T]
}

// MutFrom is the set of shapes convertible to the exclusive-view
// convention: Mut alone. Val is absent for the same storage reason as in
// [RefFrom]; Ref is absent because a read-only view may be aliased and
// must never widen to exclusive access.
type MutFrom[T any] interface {
	Mut[T]

	reborrowMut() Mut[T]
}

func (r Ref[T]) reborrow() Ref[T] { return r }
func (m Mut[T]) reborrow() Ref[T] { return Ref[T]{p: m.p} }

func (m Mut[T]) reborrowMut() Mut[T] { return m }

// ConvertVal converts any shape of T to the by-value shape, duplicating
// explicitly where a view is the source: identity for Val,
// Clone-through-the-view for Ref and Mut. The result owns independent
// storage; for view sources it is a fresh value, not an alias.
func ConvertVal[T Cloner[T], S ValFrom[T]](from S) Val[T] {
	switch v := any(from).(type) {
	case Val[T]:
		return v
	case Ref[T]:
		return Val[T]{v: (*v.p).Clone()}
	case Mut[T]:
		return Val[T]{v: (*v.p).Clone()}
	}
	badShape("ConvertVal")
	return Val[T]{}
}

// ConvertValCopy is [ConvertVal] with trivial duplication: identity for
// Val, dereference-and-assign for views. The shallow-copy caveat of
// [Copy] applies.
func ConvertValCopy[T any, S ValFrom[T]](from S) Val[T] {
	return Val[T]{v: from.value()}
}

// ConvertRef converts a view shape of T to the read-only-view shape. From
// Ref this is the identity reborrow; from Mut it narrows the exclusive
// view to a shared one over the same storage. After narrowing, the source
// Mut must not be used while the derived Ref is live.
//
// Dispatch is through the constraint method, so the conversion compiles
// to a direct pass-through with no branch.
func ConvertRef[T any, S RefFrom[T]](from S) Ref[T] {
	return from.reborrow()
}

// ConvertMut converts the exclusive shape of T to itself: the identity
// reborrow, passing the view through unchanged.
func ConvertMut[T any, S MutFrom[T]](from S) Mut[T] {
	return from.reborrowMut()
}
