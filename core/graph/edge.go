/*
 * STA - Edge: one per timing arc set (intra-instance) or wire
 *       (net connection).
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
)

// TimingSense mirrors a three-valued sim_timing_sense: positive unate,
// negative unate, or non-unate, packed into the edge's flag word.
type TimingSense int

const (
	SensePositiveUnate TimingSense = iota
	SenseNegativeUnate
	SenseNonUnate
)

const (
	edgeFlagDelayIsIncremental = 1 << iota
	edgeFlagIsDisabledConstraint
	edgeFlagIsDisabledCond
	edgeFlagIsDisabledLoop
	edgeFlagIsBidirectInstPath
	edgeFlagIsBidirectNetPath
)

// Edge is a directed connection between two vertices: either an
// intra-instance timing arc (carrying an *liberty.TimingArcSet) or a
// wire edge from a driver pin to a load pin. Fields reference other
// objects by id, not pointer, so the graph stays block-allocated
// (spec §3 Edge).
type Edge struct {
	id objtbl.ObjectId

	from, to VertexId

	arcSet *liberty.TimingArcSet // nil for wire edges

	arcDelaysBase objtbl.ArrayId // base index into the per-ap arc-delay table

	inNext EdgeId // singly-linked: next in the to-vertex's in-edge list

	outNext EdgeId // doubly-linked: the from-vertex's out-edge list
	outPrev EdgeId

	flags uint32
	sense TimingSense
}

func (e *Edge) SetObjectID(id objtbl.ObjectId) { e.id = id }
func (e *Edge) ObjectID() objtbl.ObjectId      { return e.id }

func (e *Edge) Id() EdgeId { return EdgeId(e.id) }

func (e *Edge) From() VertexId { return e.from }
func (e *Edge) To() VertexId   { return e.to }

func (e *Edge) ArcSet() *liberty.TimingArcSet    { return e.arcSet }
func (e *Edge) SetArcSet(s *liberty.TimingArcSet) { e.arcSet = s }
func (e *Edge) IsWire() bool                      { return e.arcSet == nil }

func (e *Edge) ArcDelaysBase() objtbl.ArrayId      { return e.arcDelaysBase }
func (e *Edge) SetArcDelaysBase(id objtbl.ArrayId) { e.arcDelaysBase = id }

func (e *Edge) InNext() EdgeId  { return e.inNext }
func (e *Edge) OutNext() EdgeId { return e.outNext }
func (e *Edge) OutPrev() EdgeId { return e.outPrev }

func (e *Edge) Sense() TimingSense     { return e.sense }
func (e *Edge) SetSense(s TimingSense) { e.sense = s }

func (e *Edge) flag(bit uint32) bool { return e.flags&bit != 0 }
func (e *Edge) setFlag(bit uint32, b bool) {
	if b {
		e.flags |= bit
	} else {
		e.flags &^= bit
	}
}

func (e *Edge) DelayAnnotationIsIncremental() bool     { return e.flag(edgeFlagDelayIsIncremental) }
func (e *Edge) SetDelayAnnotationIsIncremental(b bool) { e.setFlag(edgeFlagDelayIsIncremental, b) }
func (e *Edge) IsDisabledConstraint() bool             { return e.flag(edgeFlagIsDisabledConstraint) }
func (e *Edge) SetIsDisabledConstraint(b bool)         { e.setFlag(edgeFlagIsDisabledConstraint, b) }
func (e *Edge) IsDisabledCond() bool                   { return e.flag(edgeFlagIsDisabledCond) }
func (e *Edge) SetIsDisabledCond(b bool)               { e.setFlag(edgeFlagIsDisabledCond, b) }
func (e *Edge) IsDisabledLoop() bool                   { return e.flag(edgeFlagIsDisabledLoop) }
func (e *Edge) SetIsDisabledLoop(b bool)               { e.setFlag(edgeFlagIsDisabledLoop, b) }
func (e *Edge) IsBidirectInstPath() bool               { return e.flag(edgeFlagIsBidirectInstPath) }
func (e *Edge) SetIsBidirectInstPath(b bool)           { e.setFlag(edgeFlagIsBidirectInstPath, b) }
func (e *Edge) IsBidirectNetPath() bool                { return e.flag(edgeFlagIsBidirectNetPath) }
func (e *Edge) SetIsBidirectNetPath(b bool)             { e.setFlag(edgeFlagIsBidirectNetPath, b) }

// IsDisabled reports whether any of the disable flags are set, mirroring
// the original's disabled-edge short circuit used throughout search.
func (e *Edge) IsDisabled() bool {
	return e.IsDisabledConstraint() || e.IsDisabledCond() || e.IsDisabledLoop()
}
