/*
 * STA - Edge ordering: a total order over edges used to give
 *       deterministic tie-breaking when more than one edge connects
 *       the same two vertices (e.g. a combinational arc set that was
 *       split into several TimingArcSets by `when` condition).
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

package graph

// Compare orders two edges of the same Graph, used to pick a
// deterministic representative when duplicate wire or arc-set edges
// would otherwise tie. Vertex id ordering dominates (from, then to);
// a role ordering over the arc set breaks ties between parallel
// intra-instance edges between the same pin pair.
func (g *Graph) Compare(a, b EdgeId) int {
	if a == b {
		return 0
	}
	ea, eb := g.Edge(a), g.Edge(b)
	if ea.from != eb.from {
		return cmpVertex(ea.from, eb.from)
	}
	if ea.to != eb.to {
		return cmpVertex(ea.to, eb.to)
	}
	if ea.arcSet == nil && eb.arcSet == nil {
		return cmpEdge(a, b)
	}
	if ea.arcSet == nil {
		return -1
	}
	if eb.arcSet == nil {
		return 1
	}
	if ra, rb := ea.arcSet.Role(), eb.arcSet.Role(); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	return cmpEdge(a, b)
}

func cmpVertex(a, b VertexId) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpEdge(a, b EdgeId) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
