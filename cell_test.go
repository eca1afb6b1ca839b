// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callby_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/callby"
)

func TestCellSharedViewsCoexist(t *testing.T) {
	c := callby.NewCell(7)
	r1, rel1 := c.Borrow()
	r2, rel2 := c.Borrow()
	if r1.Get() != 7 || r2.Get() != 7 {
		t.Errorf("shared views read %d, %d; want 7, 7", r1.Get(), r2.Get())
	}
	rel1()
	rel2()
}

func TestCellExclusiveExcludesShared(t *testing.T) {
	c := callby.NewCell(7)
	m, rel := c.BorrowMut()
	if _, _, ok := c.TryBorrow(); ok {
		t.Error("TryBorrow succeeded while an exclusive view was out")
	}
	if _, _, ok := c.TryBorrowMut(); ok {
		t.Error("TryBorrowMut succeeded while an exclusive view was out")
	}
	m.Set(9)
	rel()
	r, rel2 := c.Borrow()
	if r.Get() != 9 {
		t.Errorf("after release: %d; want 9", r.Get())
	}
	rel2()
}

func TestCellSharedExcludesExclusive(t *testing.T) {
	c := callby.NewCell(7)
	_, rel := c.Borrow()
	if _, _, ok := c.TryBorrowMut(); ok {
		t.Error("TryBorrowMut succeeded while a shared view was out")
	}
	rel()
	m, relMut := c.BorrowMut()
	if m.Get() != 7 {
		t.Errorf("exclusive view after release reads %d; want 7", m.Get())
	}
	relMut()
}

func TestCellBorrowPanicsWhileExclusive(t *testing.T) {
	c := callby.NewCell(1)
	_, rel := c.BorrowMut()
	defer rel()
	defer func() {
		if recover() == nil {
			t.Error("Borrow did not panic while exclusively borrowed")
		}
	}()
	c.Borrow()
}

func TestCellBorrowMutPanicsWhileShared(t *testing.T) {
	c := callby.NewCell(1)
	_, rel := c.Borrow()
	defer rel()
	defer func() {
		if recover() == nil {
			t.Error("BorrowMut did not panic while borrowed")
		}
	}()
	c.BorrowMut()
}

func TestCellDoubleReleasePanics(t *testing.T) {
	c := callby.NewCell(1)
	_, rel := c.Borrow()
	rel()
	defer func() {
		if recover() == nil {
			t.Error("second release did not panic")
		}
	}()
	rel()
}

// TestCellConcurrentDiscipline hammers a cell from readers and writers and
// checks that an exclusive view never overlaps any other view.
func TestCellConcurrentDiscipline(t *testing.T) {
	c := callby.NewCell(0)
	var readers, writers, violations atomic.Int64
	var wg sync.WaitGroup

	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 1000 {
				r, rel, ok := c.TryBorrow()
				if !ok {
					continue
				}
				readers.Add(1)
				if writers.Load() != 0 {
					violations.Add(1)
				}
				_ = r.Get()
				readers.Add(-1)
				rel()
			}
		}()
		go func() {
			defer wg.Done()
			for range 1000 {
				m, rel, ok := c.TryBorrowMut()
				if !ok {
					continue
				}
				if writers.Add(1) != 1 || readers.Load() != 0 {
					violations.Add(1)
				}
				m.Set(m.Get() + 1)
				writers.Add(-1)
				rel()
			}
		}()
	}
	wg.Wait()
	if n := violations.Load(); n != 0 {
		t.Errorf("observed %d aliasing violations", n)
	}
}
