package objtbl

import "testing"

type widget struct {
	id    ObjectId
	value int
}

func (w *widget) SetObjectID(id ObjectId) { w.id = id }
func (w *widget) ObjectID() ObjectId      { return w.id }

func TestObjectTableRoundTrip(t *testing.T) {
	tbl := New[widget, *widget]()

	var made []*widget
	for i := 0; i < 300; i++ { // spans more than two blocks of 128
		w := tbl.Make()
		w.value = i
		made = append(made, w)
	}

	for i, w := range made {
		id := tbl.ID(w)
		if id == NullObjectId {
			t.Fatalf("object %d got null id", i)
		}
		got := tbl.Pointer(id)
		if got != w {
			t.Fatalf("pointer(objectId(x)) != x for object %d", i)
		}
		if got.value != i {
			t.Fatalf("object %d: value corrupted, got %d", i, got.value)
		}
	}

	if tbl.Size() != 300 {
		t.Fatalf("size = %d, want 300", tbl.Size())
	}
}

func TestObjectTableNullID(t *testing.T) {
	tbl := New[widget, *widget]()
	if got := tbl.Pointer(NullObjectId); got != nil {
		t.Fatalf("Pointer(NullObjectId) = %v, want nil", got)
	}
}

func TestObjectTableDestroyReuse(t *testing.T) {
	tbl := New[widget, *widget]()

	a := tbl.Make()
	idA := tbl.ID(a)
	b := tbl.Make()
	_ = b

	tbl.Destroy(a)
	if tbl.Size() != 1 {
		t.Fatalf("size after destroy = %d, want 1", tbl.Size())
	}

	c := tbl.Make()
	idC := tbl.ID(c)
	if idC != idA {
		t.Fatalf("destroyed id %d was not reused, got %d", idA, idC)
	}
}

func TestObjectTableNeverAllocatesIDZero(t *testing.T) {
	tbl := New[widget, *widget]()
	for i := 0; i < 400; i++ {
		w := tbl.Make()
		if tbl.ID(w) == NullObjectId {
			t.Fatalf("Make() returned NullObjectId at iteration %d", i)
		}
	}
}
