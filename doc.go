// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package callby provides calling-convention polymorphism for generic Go code.
//
// There are three fundamental ways a value of type T can cross a function
// boundary: by owned value, by read-only view, and by exclusive read-write
// view. Ordinarily the author of a function bakes one of these into its
// signature. callby inverts that: the passing mode becomes a type parameter,
// so the *implementor* of a generic abstraction picks the convention, while
// callers with concrete types get ordinary statically checked call sites.
//
// # Design Philosophy
//
// callby provides:
//   - A closed set of three shape types standing for the three conventions
//   - A conversion algebra whose valid cells are encoded in constraint type
//     sets, so unsound conversions are rejected by the type checker
//   - Constraint-method dispatch for every conversion, so convention
//     selection introduces no runtime branch or indirection
//
// # Shapes
//
// The shape of T under each convention is a concrete generic type:
//
//   - [Val]: Val[T] carries an owned T (ownership transfer, no lifetime)
//   - [Ref]: Ref[T] is a read-only view of storage owned elsewhere
//   - [Mut]: Mut[T] is an exclusive read-write view
//
// [By] is the constraint satisfied by exactly these three shapes of T.
// Convention-generic code is written over [S By[T], T any]; instantiating S
// selects the convention at compile time. The type set is a closed union and
// the constraint carries unexported methods, so no outside package can add a
// fourth convention.
//
// Constructors and accessors:
//
//   - [Own]: lift an owned T into Val[T]
//   - [Borrow]: take a read-only view of *T
//   - [BorrowMut]: take an exclusive view of *T
//   - [Val.Value], [Ref.Get], [Mut.Get], [Mut.Set], [Mut.Ptr]
//
// # Convention Tokens
//
// [Conv] is the runtime token for a convention ([ConvVal], [ConvRef],
// [ConvMut]). Tokens are comparable, ordered and printable for uniformity
// with other tagged values, but carry no behavior; every operation in the
// package resolves on shape types, never on tokens. [MatchConv] gives
// exhaustive three-way matching on a token.
//
// # Duplication
//
// Producing an owned T from a value of unknown convention:
//
//   - [Copy]: trivial duplication (Go assignment) — identity for Val,
//     dereference for views
//   - [Clone]: explicit duplication via the [Cloner] capability
//
// Copy of a type with pointer-kinded fields (slices, maps, pointers) is
// shallow: the duplicate shares backing storage. Use [Clone] where deep
// duplication is required.
//
// # Conversion Algebra
//
// Converting between conventions is sound only for these cells:
//
//	from \ to    Val                  Ref                Mut
//	Val          identity             —                  —
//	Ref          Copy/Clone           reborrow           —
//	Mut          Copy/Clone           narrow             reborrow
//
// Val cannot convert to a view: there is no storage for the view to point
// at beyond the conversion itself. Ref cannot convert to Mut: that would
// fabricate exclusive access to possibly-aliased data. The source
// constraints [ValFrom], [RefFrom] and [MutFrom] encode exactly the valid
// rows per column, so an invalid conversion fails type checking with a
// diagnostic naming the offending shape.
//
//   - [ConvertVal]: any shape → Val[T], duplicating via [Cloner]
//   - [ConvertValCopy]: any shape → Val[T], duplicating by assignment
//   - [ConvertRef]: Ref or Mut → Ref[T] (reborrow / exclusive-to-shared
//     narrowing)
//   - [ConvertMut]: Mut → Mut[T] (identity reborrow)
//
// # View Adaptation
//
// The generalization of owned conversion, borrow-as and borrow-as-mutable:
// for related types S and T, adapt the shape of S into the shape of T under
// the ambient convention. Collaborating code supplies the adapters:
//
//   - [Into]: owned S → T conversion, implemented on S
//   - [RefConv]: AsRef() *T, implemented on *S (no copy)
//   - [MutConv]: AsMut() *T, implemented on *S (no copy)
//
// and invokes the instantiation matching its convention:
//
//   - [AsVal]: Val[S] → Val[T] via Into
//   - [AsRef]: Ref[S] → Ref[T] via RefConv
//   - [AsMut]: Mut[S] → Mut[T] via MutConv
//
// # Shape Recovery
//
// Code generic over [S By[T]] holds its value at the constraint and cannot
// name the concrete representation. The coercions recover it:
//
//   - [CoerceVal]: assert the shape is Val[T], yielding T
//   - [CoerceRef]: assert the shape is Ref[T], yielding *T
//   - [CoerceMut]: assert the shape is Mut[T], yielding *T
//
// A coercion relabels an already-valid representation; it never transforms
// data. Applying one to a different convention's shape panics. The pointers
// returned by CoerceRef and CoerceMut re-expose the view's storage and are
// the package's sole unsafe surface: using them to mutate through what was
// a read-only view, or to outlive the storage, violates the aliasing rule
// below.
//
// # Aliasing Discipline
//
// Any number of read-only views of the same storage may coexist; an
// exclusive view must not coexist with any other view of that storage. Go
// does not check this at compile time, so it is a documented contract on
// every view constructor and conversion. In particular, after narrowing
// with ConvertRef the source Mut must not be used while the derived Ref is
// live.
//
// [Cell] enforces the discipline dynamically for storage it owns:
//
//   - [NewCell]: wrap a value
//   - [Cell.Borrow], [Cell.TryBorrow]: shared view plus release func
//   - [Cell.BorrowMut], [Cell.TryBorrowMut]: exclusive view plus release func
//
// Borrow panics while an exclusive view is outstanding; BorrowMut panics
// while any view is outstanding; Try variants report false instead. Each
// release func may be called at most once.
//
// # Example
//
// A sender abstraction where the implementor chooses whether Send takes
// ownership or only needs a view:
//
//	type Sender[S callby.By[Msg]] interface {
//	    Send(S)
//	}
//
//	// queueSender stores messages: Send takes ownership.
//	func (q *queueSender) Send(m callby.Val[Msg]) { q.msgs = append(q.msgs, m.Value()) }
//
//	// wireSender serializes messages: a read-only view suffices.
//	func (w *wireSender) Send(m callby.Ref[Msg]) { w.buf.WriteString(m.Get().Body) }
//
// Code written against Sender[S] works with either; concrete call sites
// pass Own(msg) or Borrow(&msg) as the instantiation dictates.
package callby
