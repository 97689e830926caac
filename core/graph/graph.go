/*
 * STA - Graph: vertex/edge storage, slew and arc-delay tables, and
 *       the edit operations used to keep a timing graph in sync with
 *       incremental network changes.
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

import (
	"github.com/sta-core/sta/core/liberty"
	"github.com/sta-core/sta/core/objtbl"
	"github.com/sta-core/sta/core/rf"
)

// Delay is the numeric type every slew and arc-delay value is stored
// as. A named alias keeps call sites readable without pulling in a
// dependency on core/table just for a float64.
type Delay = float64

const rfCount = 2 // len(rf.Both)

// denseIdxBits gives the slew and arc-delay tables denser blocks than
// the default ObjectTable/ArrayTable width: both tables are indexed by
// essentially every vertex or edge in the design, so a wider block
// amortizes bookkeeping the way the original's per-vertex and
// per-edge annotation tables do.
const denseIdxBits = 10

// Graph is the timing graph for one elaborated network: one Vertex
// per pin (two for a bidirectional pin, driver and load halves), one
// Edge per intra-instance timing arc or inter-pin wire.
type Graph struct {
	vertices *objtbl.ObjectTable[Vertex, *Vertex]
	edges    *objtbl.ObjectTable[Edge, *Edge]

	liveVertices map[VertexId]bool
	liveEdges    map[EdgeId]bool

	pinDrvr map[any]VertexId
	pinLoad map[any]VertexId

	apCount int

	slewTables  []*objtbl.ArrayTable[Delay]
	arcDelays   []*objtbl.ArrayTable[Delay]
	arcDelayAnn []*objtbl.ArrayTable[bool]

	// arcDelayAlloc is the canonical allocator for arc-delay base ids;
	// every ap's arcDelays/arcDelayAnn table is merely grown (EnsureID)
	// to cover whatever id this table hands out, so all ap tables stay
	// addressable by the same (base+offset) pair.
	arcDelayAlloc *objtbl.ArrayTable[Delay]

	regClkVertices []VertexId
}

// NewGraph returns an empty graph sized for apCount analysis points.
func NewGraph(apCount int) *Graph {
	g := &Graph{
		vertices:     objtbl.New[Vertex, *Vertex](),
		edges:        objtbl.New[Edge, *Edge](),
		liveVertices: map[VertexId]bool{},
		liveEdges:    map[EdgeId]bool{},
		pinDrvr:      map[any]VertexId{},
		pinLoad:      map[any]VertexId{},
		apCount:      apCount,
	}
	g.arcDelayAlloc = objtbl.NewArrayTableWithIdxBits[Delay](denseIdxBits)
	for i := 0; i < apCount; i++ {
		g.slewTables = append(g.slewTables, objtbl.NewArrayTableWithIdxBits[Delay](denseIdxBits))
		g.arcDelays = append(g.arcDelays, objtbl.NewArrayTableWithIdxBits[Delay](denseIdxBits))
		g.arcDelayAnn = append(g.arcDelayAnn, objtbl.NewArrayTableWithIdxBits[bool](denseIdxBits))
	}
	return g
}

// VertexCount and EdgeCount report the number of live vertices/edges.
func (g *Graph) VertexCount() int { return len(g.liveVertices) }
func (g *Graph) EdgeCount() int   { return len(g.liveEdges) }

// Vertex and Edge resolve an id to its object, or nil if the id is
// null or no longer live.
func (g *Graph) Vertex(id VertexId) *Vertex {
	if id == NullVertexId || !g.liveVertices[id] {
		return nil
	}
	return g.vertices.Pointer(objtbl.ObjectId(id))
}

func (g *Graph) Edge(id EdgeId) *Edge {
	if id == NullEdgeId || !g.liveEdges[id] {
		return nil
	}
	return g.edges.Pointer(objtbl.ObjectId(id))
}

// PinDrvrVertex and PinLoadVertex look up the driver/load vertex for
// a pin. For a unidirectional pin both return the same vertex.
func (g *Graph) PinDrvrVertex(pin any) VertexId { return g.pinDrvr[pin] }
func (g *Graph) PinLoadVertex(pin any) VertexId { return g.pinLoad[pin] }

// PinVertices returns both halves of a pin's vertex pair (driver and
// load are equal unless the pin is bidirectional).
func (g *Graph) PinVertices(pin any) (drvr, load VertexId) {
	return g.pinDrvr[pin], g.pinLoad[pin]
}

// MakeVertex allocates a new vertex for pin. bidirect requests the
// extra driver-half vertex a bidirectional pin needs in addition to
// its load-half vertex (spec §3 Vertex).
func (g *Graph) MakeVertex(pin any, bidirect bool) (drvr, load VertexId) {
	loadV := g.vertices.Make()
	loadV.pin = pin
	loadID := VertexId(loadV.ObjectID())
	g.liveVertices[loadID] = true
	g.pinLoad[pin] = loadID

	if !bidirect {
		g.pinDrvr[pin] = loadID
		return loadID, loadID
	}

	drvrV := g.vertices.Make()
	drvrV.pin = pin
	drvrV.isDriver = true
	drvrV.SetIsBidirectDrvr(true)
	drvrID := VertexId(drvrV.ObjectID())
	g.liveVertices[drvrID] = true
	g.pinDrvr[pin] = drvrID
	return drvrID, loadID
}

// MakeEdge allocates a new edge from->to, attaches it to both
// vertices' edge lists, and (if arcSet carries n timing arcs)
// reserves n slots per analysis point in the arc-delay tables. A nil
// arcSet models a wire edge.
func (g *Graph) MakeEdge(from, to VertexId, arcSet *liberty.TimingArcSet) EdgeId {
	e := g.edges.Make()
	e.from, e.to = from, to
	e.arcSet = arcSet
	id := EdgeId(e.ObjectID())
	g.liveEdges[id] = true

	count := uint32(0)
	if arcSet != nil {
		count = uint32(len(arcSet.Arcs()))
	}
	if count > 0 {
		base := g.arcDelayAlloc.Make(count)
		e.arcDelaysBase = base
		for ap := 0; ap < g.apCount; ap++ {
			g.arcDelays[ap].EnsureID(base)
			g.arcDelayAnn[ap].EnsureID(base)
		}
	}

	g.linkInEdge(to, id)
	g.linkOutEdge(from, id)
	return id
}

func (g *Graph) linkInEdge(to VertexId, id EdgeId) {
	v := g.Vertex(to)
	e := g.Edge(id)
	e.inNext = v.inEdgeHead
	v.inEdgeHead = id
}

func (g *Graph) linkOutEdge(from VertexId, id EdgeId) {
	v := g.Vertex(from)
	e := g.Edge(id)
	e.outPrev = v.outEdgeTail
	e.outNext = NullEdgeId
	if v.outEdgeTail != NullEdgeId {
		g.Edge(v.outEdgeTail).outNext = id
	} else {
		v.outEdgeHead = id
	}
	v.outEdgeTail = id
}

// InEdgeList and OutEdgeList materialize a vertex's in/out edge lists
// for iteration; the underlying storage stays a singly (in) or doubly
// (out) linked list addressed by id, not a slice.
func (g *Graph) InEdgeList(v VertexId) []EdgeId {
	var out []EdgeId
	vertex := g.Vertex(v)
	if vertex == nil {
		return nil
	}
	for id := vertex.inEdgeHead; id != NullEdgeId; id = g.Edge(id).inNext {
		out = append(out, id)
	}
	return out
}

func (g *Graph) OutEdgeList(v VertexId) []EdgeId {
	var out []EdgeId
	vertex := g.Vertex(v)
	if vertex == nil {
		return nil
	}
	for id := vertex.outEdgeHead; id != NullEdgeId; id = g.Edge(id).outNext {
		out = append(out, id)
	}
	return out
}

// DeleteEdge unlinks e from both its endpoints' edge lists and
// retires it. The doubly-linked out-edge list makes this O(1)
// regardless of e's position; the singly-linked in-edge list requires
// a walk from the head.
func (g *Graph) DeleteEdge(id EdgeId) {
	e := g.Edge(id)
	if e == nil {
		return
	}

	// Out-edge list: O(1) unlink via prev/next.
	if e.outPrev != NullEdgeId {
		g.Edge(e.outPrev).outNext = e.outNext
	} else if from := g.Vertex(e.from); from != nil {
		from.outEdgeHead = e.outNext
	}
	if e.outNext != NullEdgeId {
		g.Edge(e.outNext).outPrev = e.outPrev
	} else if from := g.Vertex(e.from); from != nil {
		from.outEdgeTail = e.outPrev
	}

	// In-edge list: singly linked, walk from the head.
	if to := g.Vertex(e.to); to != nil {
		if to.inEdgeHead == id {
			to.inEdgeHead = e.inNext
		} else {
			for cur := to.inEdgeHead; cur != NullEdgeId; {
				curEdge := g.Edge(cur)
				if curEdge.inNext == id {
					curEdge.inNext = e.inNext
					break
				}
				cur = curEdge.inNext
			}
		}
	}

	if e.arcSet != nil {
		count := uint32(len(e.arcSet.Arcs()))
		g.arcDelayAlloc.Destroy(e.arcDelaysBase, count)
	}

	delete(g.liveEdges, id)
	g.edges.Destroy(e)
}

// DeleteVertex retires a vertex, first deleting every edge still
// attached to it.
func (g *Graph) DeleteVertex(id VertexId) {
	v := g.Vertex(id)
	if v == nil {
		return
	}
	for _, e := range g.InEdgeList(id) {
		g.DeleteEdge(e)
	}
	for _, e := range g.OutEdgeList(id) {
		g.DeleteEdge(e)
	}
	if g.pinLoad[v.pin] == id {
		delete(g.pinLoad, v.pin)
	}
	if g.pinDrvr[v.pin] == id {
		delete(g.pinDrvr, v.pin)
	}
	delete(g.liveVertices, id)
	g.vertices.Destroy(v)
}

func slewIndex(v VertexId, r rf.RiseFall) objtbl.ArrayId {
	return objtbl.ArrayId(uint32(v)*rfCount + uint32(r.Index()))
}

// Slew and SetSlew store the per-(vertex, rise/fall, analysis-point)
// slew, indexed by vertex_id*rf_count+rf_index (spec §4.E Slew
// storage).
func (g *Graph) Slew(v VertexId, r rf.RiseFall, ap int) Delay {
	id := slewIndex(v, r)
	g.slewTables[ap].EnsureID(id)
	return g.slewTables[ap].Get(id, 0)
}

func (g *Graph) SetSlew(v VertexId, r rf.RiseFall, ap int, d Delay) {
	id := slewIndex(v, r)
	g.slewTables[ap].EnsureID(id)
	g.slewTables[ap].Set(id, 0, d)
	if vertex := g.Vertex(v); vertex != nil {
		vertex.SetSlewAnnotated(r.Index(), ap, true)
	}
}

// ArcDelay and SetArcDelay address one arc's delay on one edge, at
// arc index arcIdx (the edge's position within its arc set's Arcs())
// and analysis point ap.
func (g *Graph) ArcDelay(e EdgeId, arcIdx int, ap int) Delay {
	edge := g.Edge(e)
	return g.arcDelays[ap].Get(edge.arcDelaysBase, uint32(arcIdx))
}

func (g *Graph) SetArcDelay(e EdgeId, arcIdx int, ap int, d Delay) {
	edge := g.Edge(e)
	g.arcDelays[ap].Set(edge.arcDelaysBase, uint32(arcIdx), d)
	g.arcDelayAnn[ap].Set(edge.arcDelaysBase, uint32(arcIdx), true)
}

func (g *Graph) ArcDelayAnnotated(e EdgeId, arcIdx int, ap int) bool {
	edge := g.Edge(e)
	return g.arcDelayAnn[ap].Get(edge.arcDelaysBase, uint32(arcIdx))
}

// RemoveDelaySlewAnnotations clears every slew and arc-delay
// annotation in the graph without discarding the vertex/edge
// structure itself (spec §4.E Annotation-clearing).
func (g *Graph) RemoveDelaySlewAnnotations() {
	for id := range g.liveVertices {
		v := g.Vertex(id)
		v.slewAnnotated = nil
	}
	for id := range g.liveEdges {
		e := g.Edge(id)
		if e.arcSet == nil {
			continue
		}
		count := uint32(len(e.arcSet.Arcs()))
		for ap := 0; ap < g.apCount; ap++ {
			for i := uint32(0); i < count; i++ {
				g.arcDelayAnn[ap].Set(e.arcDelaysBase, i, false)
			}
		}
	}
}

// AddRegClkVertex records v as a BFS start point for register clock
// propagation (spec §4.E Construction step 6).
func (g *Graph) AddRegClkVertex(v VertexId) {
	g.regClkVertices = append(g.regClkVertices, v)
}

func (g *Graph) RegClkVertices() []VertexId { return g.regClkVertices }
