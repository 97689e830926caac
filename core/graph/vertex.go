/*
 * STA - Vertex: one per network pin plus an extra bidirect-driver
 *       vertex per bidirectional pin.
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

import "github.com/sta-core/sta/core/objtbl"

// Color is a vertex's levelization/search color.
type Color int

const (
	White Color = iota
	Gray
	Black
)

// SimValue is the simulated logic value a vertex carries for constant
// propagation (out of scope downstream, but the field lives here).
type SimValue int

const (
	SimX SimValue = iota
	SimZero
	SimOne
	SimUnknown
	SimRise
	SimFall
)

// vertex flag bits, packed into a single word per Design Notes
// ("Bit-field flags in Vertex/Edge... model as a single integer word
// per object with named accessor methods that mask/shift").
const (
	flagHasRequireds = 1 << iota
	flagIsBidirectDrvr
	flagIsRegClk
	flagIsDisabledConstraint
	flagIsGatedClkEnable
	flagHasChecks
	flagIsCheckClk
	flagIsConstrained
	flagHasDownstreamClkPin
	flagCRPRPathPruningDisabled
	flagRequiredsPruned
)

// Vertex is one network pin (or one half of a bidirectional pin).
// Layout target: pin reference, two array ids, two edge-list heads,
// and packed bit-fields, aiming at the original's <=64 byte vertex
// (spec §3 Vertex).
type Vertex struct {
	id objtbl.ObjectId

	pin      any // opaque pin identity from the caller's Network
	isDriver bool // bidirect-driver half vs. the load half

	level uint16
	color Color

	arrivalsId   objtbl.ArrayId
	prevPathsId  objtbl.ArrayId
	tagGroupIndex uint32

	inEdgeHead  EdgeId
	outEdgeHead EdgeId
	outEdgeTail EdgeId

	flags uint32

	slewAnnotated map[slewKey]bool // per (ap, rf); see graph.Graph.Slew

	simValue   SimValue
	bfsInQueue uint32 // bitmap of BFS queues currently holding this vertex
}

type slewKey struct {
	ap int
	rf int
}

func (v *Vertex) SetObjectID(id objtbl.ObjectId) { v.id = id }
func (v *Vertex) ObjectID() objtbl.ObjectId      { return v.id }

func (v *Vertex) Id() VertexId  { return VertexId(v.id) }
func (v *Vertex) Pin() any      { return v.pin }
func (v *Vertex) IsDriver() bool { return v.isDriver }

func (v *Vertex) Level() uint16     { return v.level }
func (v *Vertex) SetLevel(l uint16) { v.level = l }
func (v *Vertex) Color() Color      { return v.color }
func (v *Vertex) SetColor(c Color)  { v.color = c }

func (v *Vertex) ArrivalsId() objtbl.ArrayId      { return v.arrivalsId }
func (v *Vertex) SetArrivalsId(id objtbl.ArrayId) { v.arrivalsId = id }
func (v *Vertex) PrevPathsId() objtbl.ArrayId      { return v.prevPathsId }
func (v *Vertex) SetPrevPathsId(id objtbl.ArrayId) { v.prevPathsId = id }
func (v *Vertex) TagGroupIndex() uint32            { return v.tagGroupIndex }
func (v *Vertex) SetTagGroupIndex(i uint32)         { v.tagGroupIndex = i }

func (v *Vertex) InEdges() EdgeId  { return v.inEdgeHead }
func (v *Vertex) OutEdges() EdgeId { return v.outEdgeHead }

func (v *Vertex) flag(bit uint32) bool     { return v.flags&bit != 0 }
func (v *Vertex) setFlag(bit uint32, b bool) {
	if b {
		v.flags |= bit
	} else {
		v.flags &^= bit
	}
}

func (v *Vertex) HasRequireds() bool          { return v.flag(flagHasRequireds) }
func (v *Vertex) SetHasRequireds(b bool)      { v.setFlag(flagHasRequireds, b) }
func (v *Vertex) IsBidirectDrvr() bool        { return v.flag(flagIsBidirectDrvr) }
func (v *Vertex) SetIsBidirectDrvr(b bool)    { v.setFlag(flagIsBidirectDrvr, b) }
func (v *Vertex) IsRegClk() bool              { return v.flag(flagIsRegClk) }
func (v *Vertex) SetIsRegClk(b bool)          { v.setFlag(flagIsRegClk, b) }
func (v *Vertex) IsDisabledConstraint() bool  { return v.flag(flagIsDisabledConstraint) }
func (v *Vertex) SetIsDisabledConstraint(b bool) { v.setFlag(flagIsDisabledConstraint, b) }
func (v *Vertex) IsGatedClkEnable() bool      { return v.flag(flagIsGatedClkEnable) }
func (v *Vertex) SetIsGatedClkEnable(b bool)  { v.setFlag(flagIsGatedClkEnable, b) }
func (v *Vertex) HasChecks() bool             { return v.flag(flagHasChecks) }
func (v *Vertex) SetHasChecks(b bool)         { v.setFlag(flagHasChecks, b) }
func (v *Vertex) IsCheckClk() bool            { return v.flag(flagIsCheckClk) }
func (v *Vertex) SetIsCheckClk(b bool)        { v.setFlag(flagIsCheckClk, b) }
func (v *Vertex) IsConstrained() bool         { return v.flag(flagIsConstrained) }
func (v *Vertex) SetIsConstrained(b bool)     { v.setFlag(flagIsConstrained, b) }
func (v *Vertex) HasDownstreamClkPin() bool   { return v.flag(flagHasDownstreamClkPin) }
func (v *Vertex) SetHasDownstreamClkPin(b bool) { v.setFlag(flagHasDownstreamClkPin, b) }
func (v *Vertex) CRPRPathPruningDisabled() bool { return v.flag(flagCRPRPathPruningDisabled) }
func (v *Vertex) SetCRPRPathPruningDisabled(b bool) { v.setFlag(flagCRPRPathPruningDisabled, b) }
func (v *Vertex) RequiredsPruned() bool       { return v.flag(flagRequiredsPruned) }
func (v *Vertex) SetRequiredsPruned(b bool)   { v.setFlag(flagRequiredsPruned, b) }

func (v *Vertex) SimValue() SimValue     { return v.simValue }
func (v *Vertex) SetSimValue(s SimValue) { v.simValue = s }

func (v *Vertex) BFSInQueue(queue int) bool { return v.bfsInQueue&(1<<uint(queue)) != 0 }
func (v *Vertex) SetBFSInQueue(queue int, b bool) {
	bit := uint32(1) << uint(queue)
	if b {
		v.bfsInQueue |= bit
	} else {
		v.bfsInQueue &^= bit
	}
}

// SlewAnnotated and SetSlewAnnotated track the per-(rise/fall,
// analysis-point) annotation bitmap (spec §3 Vertex: "slew_annotated
// bitmap (per rise/fall x analysis-point)").
func (v *Vertex) SlewAnnotated(rf, ap int) bool {
	return v.slewAnnotated[slewKey{ap: ap, rf: rf}]
}
func (v *Vertex) SetSlewAnnotated(rf, ap int, b bool) {
	if v.slewAnnotated == nil {
		v.slewAnnotated = map[slewKey]bool{}
	}
	if b {
		v.slewAnnotated[slewKey{ap: ap, rf: rf}] = true
	} else {
		delete(v.slewAnnotated, slewKey{ap: ap, rf: rf})
	}
}
