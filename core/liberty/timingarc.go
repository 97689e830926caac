/*
 * STA - Timing arc sets and arcs.
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
	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/objtbl"
	"github.com/sta-core/sta/core/table"
)

// Role is a timing arc set's semantic function.
type Role int

const (
	RoleCombinational Role = iota
	RoleSetup
	RoleHold
	RoleRecovery
	RoleRemoval
	RoleSkew
	RoleNonSeqSetup
	RoleNonSeqHold
	RoleRegClkToQ
	RoleLatchEnToQ
	RoleLatchDToQ
	RoleRegSetClr
	RoleTristateEnable
	RoleTristateDisable
	RoleClockTreePathMin
	RoleClockTreePathMax
	RoleMinPulseWidth
)

func (r Role) String() string {
	switch r {
	case RoleCombinational:
		return "combinational"
	case RoleSetup:
		return "setup"
	case RoleHold:
		return "hold"
	case RoleRecovery:
		return "recovery"
	case RoleRemoval:
		return "removal"
	case RoleSkew:
		return "skew"
	case RoleNonSeqSetup:
		return "non_seq_setup"
	case RoleNonSeqHold:
		return "non_seq_hold"
	case RoleRegClkToQ:
		return "reg_clk_to_q"
	case RoleLatchEnToQ:
		return "latch_en_to_q"
	case RoleLatchDToQ:
		return "latch_d_to_q"
	case RoleRegSetClr:
		return "reg_set_clr"
	case RoleTristateEnable:
		return "tristate_enable"
	case RoleTristateDisable:
		return "tristate_disable"
	case RoleClockTreePathMin:
		return "clock_tree_path_min"
	case RoleClockTreePathMax:
		return "clock_tree_path_max"
	case RoleMinPulseWidth:
		return "min_pulse_width"
	default:
		return "unknown"
	}
}

// IsCheck reports whether r is a timing-check role (setup/hold/
// recovery/removal/skew/non-seq/min-pulse-width), as opposed to a
// propagating (combinational or sequential output) role.
func (r Role) IsCheck() bool {
	switch r {
	case RoleSetup, RoleHold, RoleRecovery, RoleRemoval, RoleSkew,
		RoleNonSeqSetup, RoleNonSeqHold, RoleMinPulseWidth:
		return true
	default:
		return false
	}
}

// TimingArc is one (from-transition -> to-transition) pair within an
// arc set, bound to a timing model.
type TimingArc struct {
	From  Transition
	To    Transition
	Model table.TimingModel
}

// TimingArcSet is a from-port -> to-port timing relationship (spec
// §3 Timing arc set): a role, optional condition, and the arcs
// bound for each rise/fall (and Z-transition) pair.
type TimingArcSet struct {
	id objtbl.ObjectId

	cell *Cell

	from *Port // nil for clock-tree-path arc sets
	to   *Port

	relatedOut *Port // CCS load-dependence related-output-port

	role Role

	when        *funcexpr.Expr
	sdfCond     string
	modeName    string
	modeValue   string
	condDefault bool

	arcs []TimingArc
}

func (s *TimingArcSet) SetObjectID(id objtbl.ObjectId) { s.id = id }
func (s *TimingArcSet) ObjectID() objtbl.ObjectId      { return s.id }

func (s *TimingArcSet) Cell() *Cell { return s.cell }
func (s *TimingArcSet) From() *Port { return s.from }
func (s *TimingArcSet) To() *Port   { return s.to }
func (s *TimingArcSet) RelatedOut() *Port { return s.relatedOut }
func (s *TimingArcSet) Role() Role  { return s.role }
func (s *TimingArcSet) When() *funcexpr.Expr { return s.when }
func (s *TimingArcSet) SdfCond() string      { return s.sdfCond }
func (s *TimingArcSet) ModeName() string     { return s.modeName }
func (s *TimingArcSet) ModeValue() string    { return s.modeValue }
func (s *TimingArcSet) CondDefault() bool    { return s.condDefault }
func (s *TimingArcSet) Arcs() []TimingArc    { return s.arcs }

func (s *TimingArcSet) AddArc(a TimingArc) { s.arcs = append(s.arcs, a) }

// SetCond records the sdf_cond/mode attributes that participate in
// the arc-set dedup key (spec 4.D "Arc-set dedup during build").
func (s *TimingArcSet) SetCond(sdfCond, modeName, modeValue string, condDefault bool) {
	s.sdfCond, s.modeName, s.modeValue, s.condDefault = sdfCond, modeName, modeValue, condDefault
}

// dedupKey identifies arc sets that the builder collapses: identical
// from, to, role, when (by structural equivalence), sdf_cond and mode
// (spec 4.D "Arc-set dedup during build").
type dedupKey struct {
	from, to    *Port
	role        Role
	sdfCond     string
	modeName    string
	modeValue   string
}

func (s *TimingArcSet) dedupKeyAndWhen() (dedupKey, *funcexpr.Expr) {
	return dedupKey{
		from:      s.from,
		to:        s.to,
		role:      s.role,
		sdfCond:   s.sdfCond,
		modeName:  s.modeName,
		modeValue: s.modeValue,
	}, s.when
}

// sameDedupGroup reports whether a and b collide under the dedup key,
// including structural equivalence of their `when` expressions.
func sameDedupGroup(a, b *TimingArcSet) bool {
	ka, wa := a.dedupKeyAndWhen()
	kb, wb := b.dedupKeyAndWhen()
	return ka == kb && funcexpr.Equiv(wa, wb)
}

// Equiv reports whether a and b carry equivalent arcs (spec 4.D.2:
// "their arc sequences are equivalent"), used by EquivCells once the
// from/to/role match has already been established by the caller.
func (s *TimingArcSet) Equiv(o *TimingArcSet) bool {
	if len(s.arcs) != len(o.arcs) {
		return false
	}
	for i := range s.arcs {
		if s.arcs[i].From != o.arcs[i].From || s.arcs[i].To != o.arcs[i].To {
			return false
		}
	}
	return true
}
