/*
 * STA - Cell: ports, arc sets, sequentials and the builder-facing
 *       queries over them.
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

package liberty

import (
	"path"

	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/objtbl"
	"github.com/sta-core/sta/core/table"
	"github.com/sta-core/sta/logging"
)

// portPairKey indexes a cell's from->to arc-set map.
type portPairKey struct{ from, to *Port }

// Cell is a named member of a Library: ports (iteration order
// preserved), PG-ports, sequentials, an optional statetable, timing
// arc sets, and per-port power entries (spec §3 Cell).
type Cell struct {
	id objtbl.ObjectId

	library *Library
	name    string

	portPool   *objtbl.ObjectTable[Port, *Port]
	arcSetPool *objtbl.ObjectTable[TimingArcSet, *TimingArcSet]

	ports      []*Port
	portByName map[string]*Port
	pgPorts    []*Port

	sequentials []*Sequential
	statetable  *Statetable

	timingArcSets []*TimingArcSet
	arcSetFrom    map[*Port][]*TimingArcSet
	arcSetTo      map[*Port][]*TimingArcSet
	arcSetFromTo  map[portPairKey][]*TimingArcSet

	internalPower []InternalPower
	leakagePower  []LeakagePower

	area float64

	isMacro          bool
	isMemory         bool
	isPad            bool
	isClockCell      bool
	isIsolationCell  bool
	isLevelShifter   bool
	dontUse          bool

	testCell *Cell

	scaleFactors map[string]ScaleFactorEntry

	scaledCells map[OperatingCondition]*Cell
}

func NewCell(lib *Library, name string) *Cell {
	return &Cell{
		library:      lib,
		name:         name,
		portPool:     objtbl.New[Port, *Port](),
		arcSetPool:   objtbl.New[TimingArcSet, *TimingArcSet](),
		portByName:   map[string]*Port{},
		arcSetFrom:   map[*Port][]*TimingArcSet{},
		arcSetTo:     map[*Port][]*TimingArcSet{},
		arcSetFromTo: map[portPairKey][]*TimingArcSet{},
		scaledCells:  map[OperatingCondition]*Cell{},
	}
}

func (c *Cell) SetObjectID(id objtbl.ObjectId) { c.id = id }
func (c *Cell) ObjectID() objtbl.ObjectId      { return c.id }

func (c *Cell) Library() *Library { return c.library }
func (c *Cell) Name() string      { return c.name }
func (c *Cell) Area() float64     { return c.area }
func (c *Cell) SetArea(a float64) { c.area = a }

func (c *Cell) IsMacro() bool         { return c.isMacro }
func (c *Cell) SetIsMacro(b bool)     { c.isMacro = b }
func (c *Cell) IsMemory() bool        { return c.isMemory }
func (c *Cell) SetIsMemory(b bool)    { c.isMemory = b }
func (c *Cell) IsPad() bool           { return c.isPad }
func (c *Cell) SetIsPad(b bool)       { c.isPad = b }
func (c *Cell) IsClockCell() bool     { return c.isClockCell }
func (c *Cell) SetIsClockCell(b bool) { c.isClockCell = b }
func (c *Cell) IsIsolationCell() bool { return c.isIsolationCell }
func (c *Cell) SetIsIsolationCell(b bool) { c.isIsolationCell = b }
func (c *Cell) IsLevelShifter() bool  { return c.isLevelShifter }
func (c *Cell) SetIsLevelShifter(b bool) { c.isLevelShifter = b }

// DontUse and TestCell are mutable after build (spec §3 Lifecycles).
func (c *Cell) DontUse() bool        { return c.dontUse }
func (c *Cell) SetDontUse(b bool)    { c.dontUse = b }
func (c *Cell) TestCell() *Cell      { return c.testCell }
func (c *Cell) SetTestCell(t *Cell)  { c.testCell = t }

// AddPort creates and registers a new port of the given name/kind,
// returning it for the caller to finish populating (direction,
// bus range, function, ...).
func (c *Cell) AddPort(name string, kind PortKind) *Port {
	p := c.portPool.Make()
	p.name = name
	p.kind = kind
	p.cell = c
	c.ports = append(c.ports, p)
	c.portByName[name] = p
	return p
}

// AddBusPort creates a bus port spanning [fromIndex, toIndex]
// (inclusive, counting either up or down) and its bit ports.
func (c *Cell) AddBusPort(name string, fromIndex, toIndex int) (*Port, error) {
	p := c.AddPort(name, PortBus)
	p.fromIndex, p.toIndex = fromIndex, toIndex
	if err := newBusBits(p, c.portPool); err != nil {
		return nil, err
	}
	for _, b := range p.bits {
		c.portByName[b.name] = b
	}
	return p, nil
}

// AddBundlePort creates a bundle naming the given existing scalar
// ports.
func (c *Cell) AddBundlePort(name string, members ...*Port) *Port {
	p := c.AddPort(name, PortBundle)
	p.members = members
	return p
}

// AddPGPort registers a power/ground port; PG ports are kept separate
// from the ordinary port list and iterator.
func (c *Cell) AddPGPort(name string, dir Direction) *Port {
	p := c.portPool.Make()
	p.name = name
	p.kind = PortScalar
	p.direction = dir
	p.cell = c
	c.pgPorts = append(c.pgPorts, p)
	c.portByName[name] = p
	return p
}

// Ports returns the cell's ports in declaration order (buses appear
// once, not expanded).
func (c *Cell) Ports() []*Port { return c.ports }

// PortBits returns every scalar leaf: bus ports expanded to their
// bits, bundle and scalar ports returned as-is.
func (c *Cell) PortBits() []*Port {
	var out []*Port
	for _, p := range c.ports {
		if p.kind == PortBus {
			out = append(out, p.bits...)
		} else {
			out = append(out, p)
		}
	}
	return out
}

func (c *Cell) PGPorts() []*Port { return c.pgPorts }

// FindPort looks up a port (scalar, bus, bundle, or bus-bit "A[2]")
// by exact name.
func (c *Cell) FindPort(name string) *Port { return c.portByName[name] }

// FindLibertyPortsMatching returns every port whose name matches the
// shell-style glob pattern (path.Match semantics: "*" and "?").
func (c *Cell) FindLibertyPortsMatching(pattern string) []*Port {
	var out []*Port
	for _, p := range c.ports {
		if ok, _ := path.Match(pattern, p.name); ok {
			out = append(out, p)
		}
	}
	return out
}

func (c *Cell) Sequentials() []*Sequential       { return c.sequentials }
func (c *Cell) AddSequential(s *Sequential)       { c.sequentials = append(c.sequentials, s) }
func (c *Cell) Statetable() *Statetable           { return c.statetable }
func (c *Cell) SetStatetable(st *Statetable)      { c.statetable = st }

func (c *Cell) InternalPower() []InternalPower    { return c.internalPower }
func (c *Cell) AddInternalPower(p InternalPower)  { c.internalPower = append(c.internalPower, p) }
func (c *Cell) LeakagePower() []LeakagePower       { return c.leakagePower }
func (c *Cell) AddLeakagePower(p LeakagePower)     { c.leakagePower = append(c.leakagePower, p) }

// NewTimingArcSet allocates an arc set owned by this cell, ready for
// the builder to append arcs and then call AddTimingArcSet.
func (c *Cell) NewTimingArcSet(from, to, relatedOut *Port, role Role, when *funcexpr.Expr) *TimingArcSet {
	s := c.arcSetPool.Make()
	s.cell, s.from, s.to, s.relatedOut, s.role, s.when = c, from, to, relatedOut, role, when
	return s
}

// AddTimingArcSet inserts s into the cell's arc-set indices, applying
// the builder's dedup rule (spec §3 invariant 6, §4.D "Arc-set dedup
// during build"): if an existing set shares (from, to, role,
// when-equivalence, sdf_cond, mode), it is replaced -- the later
// definition wins and the earlier is dropped from all three indices.
func (c *Cell) AddTimingArcSet(s *TimingArcSet) {
	for i, existing := range c.timingArcSets {
		if sameDedupGroup(existing, s) {
			c.timingArcSets[i] = s
			c.reindexArcSet(existing, s)
			return
		}
	}
	c.timingArcSets = append(c.timingArcSets, s)
	c.indexArcSet(s)
}

func (c *Cell) indexArcSet(s *TimingArcSet) {
	if s.from != nil {
		c.arcSetFrom[s.from] = append(c.arcSetFrom[s.from], s)
	}
	if s.to != nil {
		c.arcSetTo[s.to] = append(c.arcSetTo[s.to], s)
	}
	key := portPairKey{s.from, s.to}
	c.arcSetFromTo[key] = append(c.arcSetFromTo[key], s)
}

func (c *Cell) reindexArcSet(old, replacement *TimingArcSet) {
	replaceIn := func(m map[*Port][]*TimingArcSet, p *Port) {
		if p == nil {
			return
		}
		list := m[p]
		for i, e := range list {
			if e == old {
				list[i] = replacement
				return
			}
		}
	}
	replaceIn(c.arcSetFrom, old.from)
	replaceIn(c.arcSetTo, old.to)
	key := portPairKey{old.from, old.to}
	list := c.arcSetFromTo[key]
	for i, e := range list {
		if e == old {
			list[i] = replacement
			break
		}
	}
}

func (c *Cell) TimingArcSets() []*TimingArcSet { return c.timingArcSets }

func (c *Cell) ArcSetsFrom(p *Port) []*TimingArcSet { return c.arcSetFrom[p] }
func (c *Cell) ArcSetsTo(p *Port) []*TimingArcSet   { return c.arcSetTo[p] }

// FindTimingArcSet returns the arc sets from `from` to `to`, or nil.
func (c *Cell) FindTimingArcSet(from, to *Port) []*TimingArcSet {
	return c.arcSetFromTo[portPairKey{from, to}]
}

// CheckIndexInvariant verifies spec §3 invariant 5: the union of
// arc_set_from and arc_set_to agrees with the flat timingArcSets list.
// Intended for tests and debug builds, not the hot path.
func (c *Cell) CheckIndexInvariant() bool {
	seen := map[*TimingArcSet]bool{}
	for _, list := range c.arcSetFrom {
		for _, s := range list {
			seen[s] = true
		}
	}
	for _, list := range c.arcSetTo {
		for _, s := range list {
			seen[s] = true
		}
	}
	if len(seen) != len(c.timingArcSets) {
		return false
	}
	for _, s := range c.timingArcSets {
		if !seen[s] {
			return false
		}
	}
	return true
}

// AddScaledCell links a per-operating-condition variant of this cell.
// Ports and arc sets of scaled and this cell are expected to align
// positionally -- the builder is responsible for constructing `scaled`
// that way.
func (c *Cell) AddScaledCell(oc OperatingCondition, scaled *Cell) {
	c.scaledCells[oc] = scaled
}

func (c *Cell) ScaledCell(oc OperatingCondition) (*Cell, bool) {
	s, ok := c.scaledCells[oc]
	return s, ok
}

// ScaleFactors implements table.ScaleFactorSource: a cell's own
// scale-factor set, if it defined one for valueType.
func (c *Cell) ScaleFactors(valueType string) (table.ScaleFactors, bool) {
	e, ok := c.scaleFactors[valueType]
	if !ok {
		return table.ScaleFactors{}, false
	}
	return e.Factors, true
}

// SetScaleFactors records a per-value-type coefficient set for this
// cell, consulted before the library default (table.ResolveScaleFactors).
func (c *Cell) SetScaleFactors(valueType string, k table.ScaleFactors) {
	if c.scaleFactors == nil {
		c.scaleFactors = map[string]ScaleFactorEntry{}
	}
	c.scaleFactors[valueType] = ScaleFactorEntry{Factors: k}
}

// IsBuffer reports whether the cell has exactly one input and one
// output port (ignoring PG ports) whose output function is simply
// port(in) (spec 4.D "Buffer / inverter detection").
func (c *Cell) IsBuffer() bool {
	in, out, ok := c.singleInputOutput()
	if !ok {
		return false
	}
	fn := out.Function()
	return fn != nil && fn.Op() == funcexpr.OpPort && fn.Port() == funcexpr.PortRef(in)
}

// IsInverter reports the same shape as IsBuffer but with an output
// function of not(port(in)).
func (c *Cell) IsInverter() bool {
	in, out, ok := c.singleInputOutput()
	if !ok {
		return false
	}
	fn := out.Function()
	return fn != nil && fn.Op() == funcexpr.OpNot &&
		fn.Left() != nil && fn.Left().Op() == funcexpr.OpPort && fn.Left().Port() == funcexpr.PortRef(in)
}

func (c *Cell) singleInputOutput() (in, out *Port, ok bool) {
	var ins, outs []*Port
	for _, p := range c.ports {
		switch p.direction {
		case DirInput:
			ins = append(ins, p)
		case DirOutput:
			outs = append(outs, p)
		}
	}
	if len(ins) != 1 || len(outs) != 1 {
		return nil, nil, false
	}
	return ins[0], outs[0], true
}

// DriveResistance returns the output port's rise-resistance value and
// whether the cell has exactly one output port with one declared
// (spec S1: "cellDriveResistance(BUF) > 0 iff Y has a rise_resistance
// attribute").
func (c *Cell) DriveResistance() (float64, bool) {
	var out *Port
	for _, p := range c.ports {
		if p.direction == DirOutput {
			if out != nil {
				return 0, false
			}
			out = p
		}
	}
	if out == nil {
		return 0, false
	}
	r := out.DriveResistance()
	if r.RiseMax == 0 {
		return 0, false
	}
	return r.RiseMax, true
}

// inferLatches promotes combinational D->Q and reg-clk-to-q EN->Q
// arcs (plus a setup EN->D check) into latch_d_to_q / latch_en_to_q
// when the cell defines no explicit Sequential (spec 4.D "Latch
// enable inference", infer_latches mode).
func (c *Cell) inferLatches() {
	if len(c.sequentials) > 0 {
		return
	}
	for _, enToQ := range append([]*TimingArcSet(nil), c.timingArcSets...) {
		if enToQ.role != RoleRegClkToQ {
			continue
		}
		en, q := enToQ.from, enToQ.to
		for _, dToQ := range c.arcSetTo[q] {
			if dToQ.role != RoleCombinational || dToQ == enToQ {
				continue
			}
			d := dToQ.from
			hasSetup := false
			for _, chk := range c.arcSetFrom[en] {
				if chk.role == RoleSetup && chk.to == d {
					hasSetup = true
					break
				}
			}
			if !hasSetup {
				continue
			}
			dToQ.role = RoleLatchDToQ
			enToQ.role = RoleLatchEnToQ
			logging.Warn("cell %s: inferred latch d=%s en=%s q=%s", c.name, d.Name(), en.Name(), q.Name())
		}
	}
}

// rewritePresetClearChecks rewrites setup->recovery and hold->removal
// for any pin that is both the `from` of a reg_set_clr arc and the
// `to` of a setup/hold arc (spec 4.D "Preset/Clear check role
// rewrite").
func (c *Cell) rewritePresetClearChecks() {
	setClear := map[*Port]bool{}
	for _, s := range c.timingArcSets {
		if s.role == RoleRegSetClr && s.from != nil {
			setClear[s.from] = true
		}
	}
	for _, s := range c.timingArcSets {
		if !setClear[s.to] {
			continue
		}
		switch s.role {
		case RoleSetup:
			s.role = RoleRecovery
		case RoleHold:
			s.role = RoleRemoval
		}
	}
}

// Finish runs the post-load builder passes that must see every arc
// set already present: latch inference and the preset/clear rewrite.
// LibertyBuilder does not call it, and neither does any other code in
// this module.
func (c *Cell) Finish() {
	c.inferLatches()
	c.rewritePresetClearChecks()
}
