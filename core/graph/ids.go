/*
 * STA - Timing graph model (spec component E).
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

// Package graph is the timing graph: vertices (one per pin, two per
// bidirectional pin), edges (one per timing arc set or wire), and the
// per-analysis-point slew and arc-delay storage built on core/objtbl
// (spec component E).
package graph

// VertexId and EdgeId are drawn from independent id spaces (spec
// SUPPLEMENTED FEATURES, VertexId/ArrayId width split): a VertexId and
// an EdgeId carrying the same integer value are not interchangeable,
// enforced here with distinct named types rather than a shared uint32.
type VertexId uint32
type EdgeId uint32

// NullVertexId and NullEdgeId are the null ids (value 0). The
// original's edge_idx_null/edge_id_null share a value but differ in
// type width; this spec's Open Question decision keeps them as plain
// synonyms at zero rather than inventing a meaning difference that
// isn't documented anywhere.
const (
	NullVertexId VertexId = 0
	NullEdgeId   EdgeId   = 0
	edgeIdxNull  EdgeId   = 0 // synonym for NullEdgeId, see DESIGN.md Open Question decisions
)
