package bento

import "testing"

type releasable struct{ released int }

func (r *releasable) Release() { r.released++ }

// go test -run ^TestResourceTable$ . -count 1
func TestResourceTable(t *testing.T) {
	t.Run("Install and Get", func(t *testing.T) {
		var r resourceTable
		v := &releasable{}
		r.install(3, v)
		if !r.has(3) || r.get(3) != v {
			t.Error("expected installed value under id 3")
		}
		if r.has(0) || r.get(0) != nil || r.has(9) {
			t.Error("unexpected value under unused id")
		}
		if r.len() != 1 {
			t.Errorf("expected len 1, got %d", r.len())
		}
	})

	t.Run("Remove", func(t *testing.T) {
		var r resourceTable
		v := &releasable{}
		r.install(0, v)
		if !r.remove(0) {
			t.Fatal("expected remove to report a live value")
		}
		if r.remove(0) {
			t.Error("expected second remove to report nothing")
		}
		if v.released != 1 || r.len() != 0 {
			t.Errorf("expected 1 release and len 0, got %d and %d", v.released, r.len())
		}
	})

	t.Run("Clear", func(t *testing.T) {
		var r resourceTable
		a, b := &releasable{}, &releasable{}
		r.install(0, a)
		r.install(2, b)
		r.clear()
		if a.released != 1 || b.released != 1 {
			t.Error("expected every value released")
		}
		if r.len() != 0 || r.has(2) {
			t.Error("expected empty table")
		}
	})
}
