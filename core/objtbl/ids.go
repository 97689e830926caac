/*
 * STA - Block-allocated, id-indexed object storage.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package objtbl is the object storage substrate (spec component A):
// block-allocated tables addressed by 32-bit ids instead of 64-bit
// pointers, so the parallel per-vertex/per-edge arrays (arrivals,
// slews, arc delays) that the graph keeps cost 4 bytes of identity
// per slot rather than 8.
//
// Go has no pointer arithmetic, so the in-block index that the
// original recovers from a pointer by subtracting the enclosing
// block's base address is instead stored directly as the object's
// full id (ObjectID returns the whole ObjectId, not a 7-bit
// in-block offset). The round-trip invariant -- pointer(objectId(x))
// == x -- holds exactly the same either way.
package objtbl

// ObjectId addresses a single object in an ObjectTable. Zero is
// reserved for "null".
type ObjectId uint32

// ArrayId addresses the first element of a variable-length array in
// an ArrayTable. Zero is reserved for "null".
type ArrayId uint32

// NullObjectId and NullArrayId are the reserved null values; no live
// object or array is ever allocated at id 0.
const (
	NullObjectId ObjectId = 0
	NullArrayId  ArrayId  = 0
)

// defaultIdxBits is the in-block index width used by ObjectTable and,
// unless overridden, by ArrayTable: 128 objects per block (spec
// 3's "idx_bits = 7 => 128 objects/block").
const defaultIdxBits = 7
