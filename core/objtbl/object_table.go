package objtbl

import "github.com/sta-core/sta/logging"

// Indexable is the constraint every type stored in an ObjectTable must
// satisfy: a slot to remember its own id, written once at allocation
// time and read back by ObjectTable.ID. The original requires a
// 7-bit in-block index slot recovered by pointer arithmetic; since Go
// has no pointer arithmetic the slot simply holds the full id.
type Indexable interface {
	SetObjectID(id ObjectId)
	ObjectID() ObjectId
}

// block holds 1<<defaultIdxBits live-or-free objects. Blocks are
// appended to ObjectTable.blocks and never reallocated once created,
// so a pointer into a block stays valid for the table's lifetime.
type block[T any] struct {
	objects [1 << defaultIdxBits]T
}

// ObjectTable allocates individual objects in fixed-size blocks and
// hands out 32-bit ids in place of pointers. Destroyed objects are
// threaded onto a free list and reused by Make before any new block
// is appended.
type ObjectTable[T any, PT interface {
	*T
	Indexable
}] struct {
	blocks []*block[T]
	free   []ObjectId // LIFO stack of free ids; last destroyed, first reused
	size   int
}

// New returns an empty ObjectTable.
func New[T any, PT interface {
	*T
	Indexable
}]() *ObjectTable[T, PT] {
	return &ObjectTable[T, PT]{}
}

// Size returns the number of live objects.
func (t *ObjectTable[T, PT]) Size() int { return t.size }

// Make allocates an object, assigns it an id, and returns a pointer
// to it. The zero value of T is used to initialize the slot.
func (t *ObjectTable[T, PT]) Make() PT {
	var id ObjectId
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		id = t.growBlock()
	}
	obj := t.pointerUnchecked(id)
	PT(obj).SetObjectID(id)
	t.size++
	return obj
}

// growBlock appends a new block and returns the id of its first slot.
// Block index zero reserves slot zero for NullObjectId.
func (t *ObjectTable[T, PT]) growBlock() ObjectId {
	blockIdx := len(t.blocks)
	if blockIdx >= 1<<(32-defaultIdxBits) {
		logging.Critical(220, "max object table block count exceeded")
	}
	b := new(block[T])
	t.blocks = append(t.blocks, b)

	first := 0
	if blockIdx == 0 {
		first = 1 // slot 0 of block 0 is NullObjectId
	}
	base := ObjectId(blockIdx << defaultIdxBits)
	// Push every slot but the one about to be returned onto the
	// free list, highest offset first, so Make() hands out ids in
	// ascending order within a freshly grown block.
	for i := len(b.objects) - 1; i > first; i-- {
		t.free = append(t.free, base+ObjectId(i))
	}
	return base + ObjectId(first)
}

// Pointer resolves id to its object, or nil if id is NullObjectId.
func (t *ObjectTable[T, PT]) Pointer(id ObjectId) PT {
	if id == NullObjectId {
		return nil
	}
	return t.pointerUnchecked(id)
}

func (t *ObjectTable[T, PT]) pointerUnchecked(id ObjectId) PT {
	blockIdx := int(id) >> defaultIdxBits
	objIdx := int(id) & ((1 << defaultIdxBits) - 1)
	if blockIdx < 0 || blockIdx >= len(t.blocks) {
		logging.Critical(221, "ObjectId %d resolves to no live block", id)
	}
	return &t.blocks[blockIdx].objects[objIdx]
}

// ID recovers the id a live object was allocated with.
func (t *ObjectTable[T, PT]) ID(obj PT) ObjectId {
	return PT(obj).ObjectID()
}

// Destroy retires obj and pushes its id onto the free list.
func (t *ObjectTable[T, PT]) Destroy(obj PT) {
	id := PT(obj).ObjectID()
	var zero T
	*obj = zero
	t.free = append(t.free, id)
	t.size--
}

// Clear drops every block, returning the table to its zero state.
func (t *ObjectTable[T, PT]) Clear() {
	t.blocks = nil
	t.free = nil
	t.size = 0
}
