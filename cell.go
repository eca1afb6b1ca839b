// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby

import (
	"sync/atomic"
)

// Cell owns a value and enforces the aliasing discipline at runtime:
// any number of shared views, or one exclusive view, never both. Go has no
// compile-time borrow checking, so for storage where the discipline cannot
// be maintained by inspection, Cell turns a violation into an immediate
// panic instead of silent aliasing.
//
// The flag holds -1 while an exclusive view is out, otherwise the count of
// outstanding shared views. Cell is safe for concurrent use; the views it
// hands out follow the usual rules of the convention they belong to.
type Cell[T any] struct {
	flag  atomic.Int64
	value T
}

// NewCell creates a cell owning v. Access to the value goes exclusively
// through borrowed views.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// TryBorrow attempts to take a shared view of the cell's value.
// Returns (view, release, true) on success, or (zero, nil, false) if an
// exclusive view is outstanding. The release func ends the view's validity
// and may be called at most once; calling it twice panics.
func (c *Cell[T]) TryBorrow() (Ref[T], func(), bool) {
	for {
		n := c.flag.Load()
		if n < 0 {
			return Ref[T]{}, nil, false
		}
		if c.flag.CompareAndSwap(n, n+1) {
			break
		}
	}
	return Ref[T]{p: &c.value}, c.releaseShared(), true
}

// Borrow takes a shared view of the cell's value.
// Panics if an exclusive view is outstanding.
func (c *Cell[T]) Borrow() (Ref[T], func()) {
	r, release, ok := c.TryBorrow()
	if !ok {
		panic("callby: cell already exclusively borrowed")
	}
	return r, release
}

// TryBorrowMut attempts to take an exclusive view of the cell's value.
// Returns (view, release, true) on success, or (zero, nil, false) if any
// view is outstanding. The release func ends the view's validity and may
// be called at most once; calling it twice panics.
func (c *Cell[T]) TryBorrowMut() (Mut[T], func(), bool) {
	if !c.flag.CompareAndSwap(0, -1) {
		return Mut[T]{}, nil, false
	}
	return Mut[T]{p: &c.value}, c.releaseExclusive(), true
}

// BorrowMut takes an exclusive view of the cell's value.
// Panics if any view is outstanding.
func (c *Cell[T]) BorrowMut() (Mut[T], func()) {
	m, release, ok := c.TryBorrowMut()
	if !ok {
		panic("callby: cell already borrowed")
	}
	return m, release
}

// releaseShared builds the one-shot release func for a shared view.
func (c *Cell[T]) releaseShared() func() {
	var used atomic.Uintptr
	return func() {
		if used.Add(1) != 1 {
			panic("callby: cell view released twice")
		}
		c.flag.Add(-1)
	}
}

// releaseExclusive builds the one-shot release func for an exclusive view.
func (c *Cell[T]) releaseExclusive() func() {
	var used atomic.Uintptr
	return func() {
		if used.Add(1) != 1 {
			panic("callby: cell view released twice")
		}
		c.flag.Store(0)
	}
}
