package objtbl

import "github.com/sta-core/sta/logging"

// ArrayTable allocates variable-length arrays of T inside blocks of
// 1<<idxBits entries and hands out 32-bit ArrayIds in place of
// pointers. Unlike ObjectTable it has no delete/reclaim for
// individual elements; whole arrays are freed and reused by length,
// which is the access pattern the arrival/slew/arc-delay arrays need
// (they are always destroyed and recreated as a unit).
//
// idxBits is configurable per table: the original uses 7 for general
// short arrays and 10 for the denser per-vertex slew and per-edge
// arc-delay tables, where a larger block amortizes the per-block
// bookkeeping over far more elements.
type ArrayTable[T any] struct {
	idxBits   int
	blockSize int

	blocks []*arrayBlock[T]

	freeBlockIdx int // index into blocks of the block currently bump-allocated
	freeIdx      int // next free offset within blocks[freeBlockIdx]

	// freeList[n] is a LIFO stack of ids of previously-destroyed
	// arrays of length exactly n, so Make(n) can satisfy allocation
	// from a matching hole before bump-allocating new space.
	freeList map[uint32][]ArrayId

	size int
}

type arrayBlock[T any] struct {
	objects []T // len == cap == this block's size
}

// NewArrayTable returns an empty ArrayTable using the default
// (general-purpose) block width of 128 entries.
func NewArrayTable[T any]() *ArrayTable[T] {
	return NewArrayTableWithIdxBits[T](defaultIdxBits)
}

// NewArrayTableWithIdxBits returns an empty ArrayTable whose blocks
// hold 1<<idxBits entries, for callers (slew and arc-delay storage)
// that want denser blocks than the default.
func NewArrayTableWithIdxBits[T any](idxBits int) *ArrayTable[T] {
	return &ArrayTable[T]{
		idxBits:      idxBits,
		blockSize:    1 << idxBits,
		freeBlockIdx: -1,
		freeList:     make(map[uint32][]ArrayId),
	}
}

// Size returns the total number of elements across every live array.
func (t *ArrayTable[T]) Size() int { return t.size }

// Make allocates an array of count elements and returns its id. The
// array's elements are the zero value of T unless it is reused from
// the free list, in which case it retains whatever was written to it
// before Destroy -- callers that care must overwrite it themselves,
// matching the original's behavior (the free-list prefix word is the
// only part guaranteed to change).
func (t *ArrayTable[T]) Make(count uint32) ArrayId {
	if stack := t.freeList[count]; len(stack) > 0 {
		id := stack[len(stack)-1]
		t.freeList[count] = stack[:len(stack)-1]
		t.size += int(count)
		return id
	}

	if t.freeBlockIdx < 0 || t.freeIdx+int(count) > t.blocks[t.freeBlockIdx].size() {
		size := t.blockSize
		first := 0
		if len(t.blocks) == 0 {
			first = 1 // slot 0 of block 0 is reserved for NullArrayId
		}
		if int(count)+first > size {
			size = int(count) + first
		}
		t.makeBlock(size)
	}

	blockIdx := t.freeBlockIdx
	id := ArrayId((blockIdx << t.idxBits) + t.freeIdx)
	t.freeIdx += int(count)
	t.size += int(count)
	return id
}

func (b *arrayBlock[T]) size() int { return len(b.objects) }

func (t *ArrayTable[T]) makeBlock(size int) {
	blockIdx := len(t.blocks)
	if blockIdx >= 1<<(32-t.idxBits) {
		logging.Critical(222, "max array table block count exceeded")
	}
	t.blocks = append(t.blocks, &arrayBlock[T]{objects: make([]T, size)})
	t.freeBlockIdx = blockIdx
	if blockIdx == 0 {
		t.freeIdx = 1
	} else {
		t.freeIdx = 0
	}
}

// Destroy returns the count-element array at id to the free list for
// arrays of that exact length.
func (t *ArrayTable[T]) Destroy(id ArrayId, count uint32) {
	t.freeList[count] = append(t.freeList[count], id)
	t.size -= int(count)
}

// Slice returns a Go slice view of the count elements starting at id.
// The slice aliases the table's backing storage; callers must not
// retain it past a call that could grow the table's block index
// (EnsureID), though existing blocks are never moved.
func (t *ArrayTable[T]) Slice(id ArrayId, count uint32) []T {
	blockIdx, objIdx := t.split(id)
	if blockIdx < 0 || blockIdx >= len(t.blocks) {
		logging.Critical(223, "ArrayId %d resolves to no live block", id)
	}
	b := t.blocks[blockIdx]
	if objIdx+int(count) > len(b.objects) {
		logging.Critical(224, "array at id %d length %d overruns its block", id, count)
	}
	return b.objects[objIdx : objIdx+int(count)]
}

// Get returns the element at id+offset.
func (t *ArrayTable[T]) Get(id ArrayId, offset uint32) T {
	blockIdx, objIdx := t.split(id)
	return t.blocks[blockIdx].objects[objIdx+int(offset)]
}

// Set writes the element at id+offset.
func (t *ArrayTable[T]) Set(id ArrayId, offset uint32, v T) {
	blockIdx, objIdx := t.split(id)
	t.blocks[blockIdx].objects[objIdx+int(offset)] = v
}

// EnsureID grows the table, if necessary, until id's block exists,
// and returns a slice view of that whole block starting at id's
// in-block offset. Used by dense, id-indexed tables (the per-(ap,rf)
// slew table indexed by vertex_id*rf_count+rf_index) that are sized
// by the id space rather than by sequential Make calls.
func (t *ArrayTable[T]) EnsureID(id ArrayId) []T {
	blockIdx, objIdx := t.split(id)
	for len(t.blocks) <= blockIdx {
		t.blocks = append(t.blocks, &arrayBlock[T]{objects: make([]T, t.blockSize)})
	}
	return t.blocks[blockIdx].objects[objIdx:]
}

func (t *ArrayTable[T]) split(id ArrayId) (blockIdx, objIdx int) {
	mask := t.blockSize - 1
	return int(id) >> t.idxBits, int(id) & mask
}

// Clear drops every block, returning the table to its zero state.
func (t *ArrayTable[T]) Clear() {
	t.blocks = nil
	t.freeBlockIdx = -1
	t.freeIdx = 0
	t.freeList = make(map[uint32][]ArrayId)
	t.size = 0
}
