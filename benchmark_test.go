// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby_test

import (
	"testing"

	"code.hybscloud.com/callby"
)

func BenchmarkConvertRefReborrow(b *testing.B) {
	x := 7
	r := callby.Borrow(&x)
	for b.Loop() {
		sinkInt = callby.ConvertRef[int](r).Get()
	}
}

func BenchmarkConvertRefNarrow(b *testing.B) {
	x := 7
	m := callby.BorrowMut(&x)
	for b.Loop() {
		sinkInt = callby.ConvertRef[int](m).Get()
	}
}

func BenchmarkConvertValCopy(b *testing.B) {
	x := 7
	r := callby.Borrow(&x)
	for b.Loop() {
		sinkInt = callby.ConvertValCopy[int](r).Value()
	}
}

func BenchmarkCopy(b *testing.B) {
	x := 7
	m := callby.BorrowMut(&x)
	for b.Loop() {
		sinkInt = callby.Copy[int](m)
	}
}

func BenchmarkClone(b *testing.B) {
	d := deep{xs: []int{1, 2, 3}}
	r := callby.Borrow(&d)
	for b.Loop() {
		sinkInt = callby.Clone[deep](r).xs[0]
	}
}

func BenchmarkCoerceRef(b *testing.B) {
	x := 7
	r := callby.Borrow(&x)
	for b.Loop() {
		sinkInt = *callby.CoerceRef[int](r)
	}
}

func BenchmarkAsRef(b *testing.B) {
	bx := box{item: 7}
	r := callby.Borrow(&bx)
	for b.Loop() {
		sinkInt = callby.AsRef[int](r).Get()
	}
}

func BenchmarkCellBorrow(b *testing.B) {
	c := callby.NewCell(7)
	for b.Loop() {
		r, release := c.Borrow()
		sinkInt = r.Get()
		release()
	}
}

func BenchmarkCellBorrowMut(b *testing.B) {
	c := callby.NewCell(7)
	for b.Loop() {
		m, release := c.BorrowMut()
		m.Set(m.Get() + 1)
		release()
	}
}
