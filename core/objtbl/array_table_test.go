package objtbl

import "testing"

func TestArrayTableBasicAllocation(t *testing.T) {
	tbl := NewArrayTable[int]()

	id, n := ArrayId(0), uint32(4)
	id = tbl.Make(n)
	if id == NullArrayId {
		t.Fatalf("Make returned NullArrayId")
	}
	s := tbl.Slice(id, n)
	for i := range s {
		s[i] = i * 10
	}
	got := tbl.Slice(id, n)
	for i, v := range got {
		if v != i*10 {
			t.Fatalf("element %d = %d, want %d", i, v, i*10)
		}
	}
}

func TestArrayTableReuseIsLIFOAndLengthScoped(t *testing.T) {
	tbl := NewArrayTable[int]()

	const n = 3
	const k = 5
	ids := make([]ArrayId, k)
	for i := range ids {
		ids[i] = tbl.Make(n)
	}
	for i := len(ids) - 1; i >= 0; i-- {
		tbl.Destroy(ids[i], n)
	}

	// Interleave an allocation of a different length; it must not
	// observe any of the freed length-n ids.
	other := tbl.Make(7)
	for _, id := range ids {
		if other == id {
			t.Fatalf("Make(7) returned a length-3 freed id %d", id)
		}
	}

	// Destroyed in order ids[k-1]..ids[0], so freed stack top is
	// ids[0] (destroyed last) -- LIFO reuse returns it first.
	for i := 0; i < k; i++ {
		got := tbl.Make(n)
		want := ids[i]
		if got != want {
			t.Fatalf("reuse %d: got id %d, want %d", i, got, want)
		}
	}
}

func TestArrayTableEnsureID(t *testing.T) {
	tbl := NewArrayTableWithIdxBits[int](4) // block size 16

	s := tbl.EnsureID(ArrayId(40)) // forces allocation of blocks 0..2
	if len(s) == 0 {
		t.Fatalf("EnsureID returned empty slice")
	}
	s[0] = 99
	if got := tbl.Get(ArrayId(40), 0); got != 99 {
		t.Fatalf("Get after EnsureID write = %d, want 99", got)
	}
}

func TestArrayTableGetSet(t *testing.T) {
	tbl := NewArrayTable[float64]()
	id := tbl.Make(2)
	tbl.Set(id, 0, 1.5)
	tbl.Set(id, 1, 2.5)
	if got := tbl.Get(id, 0); got != 1.5 {
		t.Fatalf("Get(id,0) = %v, want 1.5", got)
	}
	if got := tbl.Get(id, 1); got != 2.5 {
		t.Fatalf("Get(id,1) = %v, want 2.5", got)
	}
}
