/*
 * STA - LibertyBuilder: maps a `timing()` group's timing_type to the
 *       TimingArcSet(s) and transitions it emits.
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

package build

import (
	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/liberty"
	"github.com/sta-core/sta/core/table"
	"github.com/sta-core/sta/logging"
)

// TimingType is the liberty `timing_type` enumeration a `timing()`
// group is tagged with.
type TimingType int

const (
	TimingCombinational TimingType = iota
	TimingCombinationalRise
	TimingCombinationalFall
	TimingSetupRising
	TimingSetupFalling
	TimingHoldRising
	TimingHoldFalling
	TimingRecoveryRising
	TimingRecoveryFalling
	TimingRemovalRising
	TimingRemovalFalling
	TimingRisingEdge
	TimingFallingEdge
	TimingPreset
	TimingClear
	TimingThreeStateEnable
	TimingThreeStateEnableRise
	TimingThreeStateEnableFall
	TimingThreeStateDisable
	TimingThreeStateDisableRise
	TimingThreeStateDisableFall
	TimingNonSeqSetupRising
	TimingNonSeqSetupFalling
	TimingNonSeqHoldRising
	TimingNonSeqHoldFalling
	TimingSkewRising
	TimingSkewFalling
	TimingMinClockTreePath
	TimingMaxClockTreePath
)

// TimingGroup is a parsed `timing()` group, handed to the builder
// once the liberty front-end (out of scope here) has resolved its
// related_pin/related_output_pin references to Ports and its
// cell_rise/cell_fall/rise_transition/.../rise_constraint/fall_constraint
// tables into TimingModels.
type TimingGroup struct {
	Type TimingType

	From       *liberty.Port
	To         *liberty.Port
	RelatedOut *liberty.Port // for CCS load-dependent output-current arcs

	// Sense, if non-nil, is an explicit `timing_sense` attribute that
	// overrides the from-port function's inferred sense.
	Sense *funcexpr.TimingSense

	RiseModel table.TimingModel // cell_rise / rise_transition / rise_constraint, as appropriate
	FallModel table.TimingModel

	When        *funcexpr.Expr
	SdfCond     string
	ModeName    string
	ModeValue   string
	CondDefault bool

	// DisableOneToOne suppresses bus-to-bus bit-i-to-bit-i pairing even
	// when From and To are both buses of the same width.
	DisableOneToOne bool
}

// LibertyBuilder accumulates the arc sets produced from a stream of
// TimingGroups for one cell, applying the builder invariants (spec
// §4.F) as it goes.
type LibertyBuilder struct {
	cell *liberty.Cell
}

func NewLibertyBuilder(c *liberty.Cell) *LibertyBuilder {
	return &LibertyBuilder{cell: c}
}

// Build translates one timing() group into zero or more arc sets,
// registering each with the builder's cell.
func (b *LibertyBuilder) Build(g TimingGroup) {
	if g.From != nil && g.To != nil && g.From.Kind() == liberty.PortBus && g.To.Kind() == liberty.PortBus {
		if !g.DisableOneToOne && len(g.From.Bits()) == len(g.To.Bits()) {
			for i := range g.From.Bits() {
				sub := g
				sub.From, sub.To = g.From.Bits()[i], g.To.Bits()[i]
				b.buildOne(sub)
			}
			return
		}
		if len(g.From.Bits()) != len(g.To.Bits()) {
			logging.Warn("timing group related_pin %s width %d does not match %s width %d",
				g.From.Name(), len(g.From.Bits()), g.To.Name(), len(g.To.Bits()))
		}
		for _, fb := range g.From.Bits() {
			for _, tb := range g.To.Bits() {
				sub := g
				sub.From, sub.To = fb, tb
				b.buildOne(sub)
			}
		}
		return
	}
	b.buildOne(g)
}

func (b *LibertyBuilder) buildOne(g TimingGroup) {
	switch g.Type {
	case TimingCombinational, TimingCombinationalRise, TimingCombinationalFall:
		b.buildCombinational(g)
	case TimingSetupRising, TimingSetupFalling:
		b.buildCheck(g, liberty.RoleSetup, g.Type == TimingSetupRising)
	case TimingHoldRising, TimingHoldFalling:
		b.buildCheck(g, liberty.RoleHold, g.Type == TimingHoldRising)
	case TimingRecoveryRising, TimingRecoveryFalling:
		b.buildCheck(g, liberty.RoleRecovery, g.Type == TimingRecoveryRising)
	case TimingRemovalRising, TimingRemovalFalling:
		b.buildCheck(g, liberty.RoleRemoval, g.Type == TimingRemovalRising)
	case TimingNonSeqSetupRising, TimingNonSeqSetupFalling:
		b.buildCheck(g, liberty.RoleNonSeqSetup, g.Type == TimingNonSeqSetupRising)
	case TimingNonSeqHoldRising, TimingNonSeqHoldFalling:
		b.buildCheck(g, liberty.RoleNonSeqHold, g.Type == TimingNonSeqHoldRising)
	case TimingSkewRising, TimingSkewFalling:
		b.buildCheck(g, liberty.RoleSkew, g.Type == TimingSkewRising)
	case TimingRisingEdge, TimingFallingEdge:
		b.buildEdge(g)
	case TimingPreset:
		b.buildPresetClear(g, liberty.TransRise)
	case TimingClear:
		b.buildPresetClear(g, liberty.TransFall)
	case TimingThreeStateEnable, TimingThreeStateEnableRise, TimingThreeStateEnableFall:
		b.buildTristateEnable(g)
	case TimingThreeStateDisable, TimingThreeStateDisableRise, TimingThreeStateDisableFall:
		b.buildTristateDisable(g)
	case TimingMinClockTreePath:
		b.buildClockTreePath(g, liberty.RoleClockTreePathMin)
	case TimingMaxClockTreePath:
		b.buildClockTreePath(g, liberty.RoleClockTreePathMax)
	}
}

// sense resolves the effective timing sense: an explicit attribute
// wins; otherwise it is read off the to-port's function with the
// from-port as the variable (spec 4.F "timing_sense when present
// overrides the inferred sense").
func sense(g TimingGroup) funcexpr.TimingSense {
	if g.Sense != nil {
		return *g.Sense
	}
	if g.To == nil || g.To.Function() == nil || g.From == nil {
		return funcexpr.SenseUnknown
	}
	return funcexpr.PortTimingSense(g.To.Function(), g.From)
}

func (b *LibertyBuilder) buildCombinational(g TimingGroup) {
	if g.To != nil && g.To.Direction() == liberty.DirInput {
		logging.Warn("combinational timing to input port %s", g.To.Name())
	}
	s := b.cell.NewTimingArcSet(g.From, g.To, g.RelatedOut, liberty.RoleCombinational, g.When)
	applyCond(s, g)

	emitRiseTo := g.Type != TimingCombinationalFall
	emitFallTo := g.Type != TimingCombinationalRise

	switch sense(g) {
	case funcexpr.SensePositiveUnate:
		if emitRiseTo {
			addArc(s, liberty.TransRise, liberty.TransRise, g.RiseModel)
		}
		if emitFallTo {
			addArc(s, liberty.TransFall, liberty.TransFall, g.FallModel)
		}
	case funcexpr.SenseNegativeUnate:
		if emitFallTo {
			addArc(s, liberty.TransRise, liberty.TransFall, g.FallModel)
		}
		if emitRiseTo {
			addArc(s, liberty.TransFall, liberty.TransRise, g.RiseModel)
		}
	default: // non-unate or unknown: all four
		if emitRiseTo {
			addArc(s, liberty.TransRise, liberty.TransRise, g.RiseModel)
			addArc(s, liberty.TransFall, liberty.TransRise, g.RiseModel)
		}
		if emitFallTo {
			addArc(s, liberty.TransRise, liberty.TransFall, g.FallModel)
			addArc(s, liberty.TransFall, liberty.TransFall, g.FallModel)
		}
	}
	b.finishArcSet(s)
}

func (b *LibertyBuilder) buildCheck(g TimingGroup, role liberty.Role, fromRising bool) {
	s := b.cell.NewTimingArcSet(g.From, g.To, nil, role, g.When)
	applyCond(s, g)
	from := liberty.TransFall
	if fromRising {
		from = liberty.TransRise
	}
	addArc(s, from, liberty.TransRise, g.RiseModel)
	addArc(s, from, liberty.TransFall, g.FallModel)
	b.finishArcSet(s)

	if g.From != nil {
		g.From.SetIsCheckClk(true)
	}
}

// buildEdge handles rising_edge/falling_edge: a reg-clk-to-q,
// latch-en-to-q, or reg-set-clr arc set depending on what the
// to-port's function references (spec §4.F row "rising_edge /
// falling_edge").
func (b *LibertyBuilder) buildEdge(g TimingGroup) {
	role := b.inferEdgeRole(g)
	s := b.cell.NewTimingArcSet(g.From, g.To, nil, role, g.When)
	applyCond(s, g)
	from := liberty.TransRise
	if g.Type == TimingFallingEdge {
		from = liberty.TransFall
	}
	addArc(s, from, liberty.TransRise, g.RiseModel)
	addArc(s, from, liberty.TransFall, g.FallModel)
	b.finishArcSet(s)

	if g.From != nil {
		g.From.SetIsRegClk(role == liberty.RoleRegClkToQ)
	}
}

// inferEdgeRole looks at the cell's own sequentials to decide whether
// a rising_edge/falling_edge group targets a register, a latch, or a
// preset/clear pin, per the spec's row for this timing_type.
func (b *LibertyBuilder) inferEdgeRole(g TimingGroup) liberty.Role {
	if g.To == nil {
		return liberty.RoleRegClkToQ
	}
	for _, seq := range b.cell.Sequentials() {
		if seq.IsLatch() {
			continue
		}
		if seq.ClockedOn() != nil && funcexpr.HasPort(seq.ClockedOn(), g.From) {
			return liberty.RoleRegClkToQ
		}
		if seq.Clear() != nil && funcexpr.HasPort(seq.Clear(), g.From) {
			return liberty.RoleRegSetClr
		}
		if seq.Preset() != nil && funcexpr.HasPort(seq.Preset(), g.From) {
			return liberty.RoleRegSetClr
		}
	}
	for _, seq := range b.cell.Sequentials() {
		if !seq.IsLatch() {
			continue
		}
		if seq.ClockedOn() != nil && funcexpr.HasPort(seq.ClockedOn(), g.From) {
			return liberty.RoleLatchEnToQ
		}
	}
	return liberty.RoleRegClkToQ
}

func (b *LibertyBuilder) buildPresetClear(g TimingGroup, to liberty.Transition) {
	s := b.cell.NewTimingArcSet(g.From, g.To, nil, liberty.RoleRegSetClr, g.When)
	applyCond(s, g)
	switch sense(g) {
	case funcexpr.SenseNegativeUnate:
		addArc(s, liberty.TransFall, to, modelFor(g, to))
	default:
		addArc(s, liberty.TransRise, to, modelFor(g, to))
	}
	b.finishArcSet(s)
}

func modelFor(g TimingGroup, to liberty.Transition) table.TimingModel {
	if to == liberty.TransFall {
		return g.FallModel
	}
	return g.RiseModel
}

func (b *LibertyBuilder) buildTristateEnable(g TimingGroup) {
	s := b.cell.NewTimingArcSet(g.From, g.To, nil, liberty.RoleTristateEnable, g.When)
	applyCond(s, g)
	if g.Type != TimingThreeStateEnableFall {
		addArc(s, liberty.TransRise, liberty.TransRiseZ, g.RiseModel)
	}
	if g.Type != TimingThreeStateEnableRise {
		addArc(s, liberty.TransFall, liberty.TransFallZ, g.FallModel)
	}
	b.finishArcSet(s)
	rewriteOutputToTristate(g.To)
}

func (b *LibertyBuilder) buildTristateDisable(g TimingGroup) {
	s := b.cell.NewTimingArcSet(g.From, g.To, nil, liberty.RoleTristateDisable, g.When)
	applyCond(s, g)
	if g.Type != TimingThreeStateDisableFall {
		addArc(s, liberty.TransRise, liberty.TransZFall, g.RiseModel)
	}
	if g.Type != TimingThreeStateDisableRise {
		addArc(s, liberty.TransFall, liberty.TransZRise, g.FallModel)
	}
	b.finishArcSet(s)
	rewriteOutputToTristate(g.To)
}

// rewriteOutputToTristate implements the last builder invariant: a
// plain `output` direction is rewritten to tristate once a
// three_state_enable/disable arc set targets it.
func rewriteOutputToTristate(p *liberty.Port) {
	if p != nil && p.Direction() == liberty.DirOutput {
		p.SetDirection(liberty.DirTristate)
	}
}

func (b *LibertyBuilder) buildClockTreePath(g TimingGroup, role liberty.Role) {
	s := b.cell.NewTimingArcSet(nil, g.To, nil, role, g.When)
	applyCond(s, g)
	addArc(s, liberty.TransRise, liberty.TransRise, g.RiseModel)
	addArc(s, liberty.TransFall, liberty.TransFall, g.FallModel)
	b.finishArcSet(s)
}

// BuildMinPulseWidth emits the min_pulse_width arc set straight from a
// port's own min_pulse_width_high/low attributes rather than from a
// timing() group (spec §4.F row "min_pulse_width").
func (b *LibertyBuilder) BuildMinPulseWidth(p *liberty.Port, highModel, lowModel table.TimingModel) {
	s := b.cell.NewTimingArcSet(p, p, nil, liberty.RoleMinPulseWidth, nil)
	addArc(s, liberty.TransHigh, liberty.TransHigh, highModel)
	addArc(s, liberty.TransLow, liberty.TransLow, lowModel)
	b.finishArcSet(s)
}

func applyCond(s *liberty.TimingArcSet, g TimingGroup) {
	s.SetCond(g.SdfCond, g.ModeName, g.ModeValue, g.CondDefault)
}

// addArc appends one arc to s unless m is the model zero value; an
// absent model means the corresponding liberty attribute was never
// given, which the builder invariant treats as "this transition is
// not emitted" rather than as an error.
func addArc(s *liberty.TimingArcSet, from, to liberty.Transition, m table.TimingModel) {
	if m.Table == nil && m.RecvCap == nil && m.Waveforms == nil && m.Linear == (table.LinearCoeffs{}) {
		return
	}
	s.AddArc(liberty.TimingArc{From: from, To: to, Model: m})
}

// finishArcSet applies the "at least one arc or drop silently"
// invariant (spec §4.F Builder invariants) before registering s with
// the cell.
func (b *LibertyBuilder) finishArcSet(s *liberty.TimingArcSet) {
	if len(s.Arcs()) == 0 {
		return
	}
	b.cell.AddTimingArcSet(s)
}
