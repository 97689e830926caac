/*
 * STA - Liberty port model: scalar, bus and bundle variants.
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
	"fmt"

	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/objtbl"
)

// PortKind is the port variant (spec §3 Port).
type PortKind int

const (
	PortScalar PortKind = iota
	PortBus
	PortBundle
)

// Limits are the per-direction slew/fanout/capacitance limits a port
// may declare (max_transition, max_fanout, max_capacitance and their
// min counterparts).
type Limits struct {
	MaxTransition  float64
	MaxFanout      float64
	MaxCapacitance float64
	MinTransition  float64
	MinFanout      float64
	MinCapacitance float64
}

// RiseFallMinMax is a value keyed by (rise|fall, min|max), used for
// pin capacitance and drive resistance.
type RiseFallMinMax struct {
	RiseMin, RiseMax float64
	FallMin, FallMax float64
}

// Port is a cell's pin declaration: scalar, bus, or a bundle naming
// existing scalar ports. Its object id is assigned by the owning
// Cell's ObjectTable (core/objtbl), which is why it satisfies
// objtbl.Indexable.
type Port struct {
	id   objtbl.ObjectId
	cell *Cell

	name string
	kind PortKind

	direction Direction

	// Bus
	fromIndex, toIndex int
	bits               []*Port // indexed by bit offset 0..len-1, not liberty index

	// Bundle
	members []*Port

	function        *funcexpr.Expr
	tristateEnable  *funcexpr.Expr

	capacitance  RiseFallMinMax
	driveResistance RiseFallMinMax
	limits       Limits

	minPulseWidthHigh, minPulseWidthLow float64
	minPeriod                           float64

	isClock           bool
	isRegClk          bool
	isCheckClk        bool
	isClkGateClock    bool
	isClkGateEnable   bool
	isClkGateOutCtrl  bool
	isPLLFeedback     bool
	isPad             bool
	isIsolationCellData   bool
	isIsolationCellEnable bool
	isLevelShifterData    bool
	isSwitch          bool
	isDisabled        bool
}

func (p *Port) SetObjectID(id objtbl.ObjectId) { p.id = id }
func (p *Port) ObjectID() objtbl.ObjectId      { return p.id }

func (p *Port) Cell() *Cell         { return p.cell }
func (p *Port) Name() string        { return p.name }
func (p *Port) Kind() PortKind      { return p.kind }
func (p *Port) Direction() Direction { return p.direction }

// SetDirection sets the port's direction. For a bus, this also pushes
// the direction to every already-created bit, so a bus's direction
// always matches that of its bits regardless of call order against
// AddBusPort.
func (p *Port) SetDirection(d Direction) {
	p.direction = d
	for _, bit := range p.bits {
		bit.direction = d
	}
}

// DirectionIndex and Width implement funcexpr.PortRef.
func (p *Port) DirectionIndex() int { return p.direction.Index() }

func (p *Port) Width() int {
	if p.kind == PortBus {
		return len(p.bits)
	}
	return 1
}

// BitPort implements funcexpr.PortRef: returns the bus's bit at
// offset i (0-indexed, ascending, matching Width()), or p itself for
// a scalar port. This is bit-offset space, used by BitSubExpr; for
// liberty-index lookups ("related_pin A[2]") use Bit instead.
func (p *Port) BitPort(i int) funcexpr.PortRef {
	if p.kind != PortBus {
		return p
	}
	if i < 0 || i >= len(p.bits) {
		return nil
	}
	return p.bits[i]
}

// Bit returns the scalar sub-port for liberty bus index i (the value
// as written in the liberty declaration, e.g. A[2] regardless of
// which direction the bus counts).
func (p *Port) Bit(i int) *Port {
	lo := p.fromIndex
	if p.toIndex < lo {
		lo = p.toIndex
	}
	offset := i - lo
	if offset < 0 || offset >= len(p.bits) {
		return nil
	}
	return p.bits[offset]
}

// Bits returns a bus port's bit ports in ascending bit-offset order
// (offset 0 .. len-1), independent of whether the liberty declaration
// counted down or up.
func (p *Port) Bits() []*Port { return p.bits }

func (p *Port) FromIndex() int { return p.fromIndex }
func (p *Port) ToIndex() int   { return p.toIndex }

func (p *Port) Function() *funcexpr.Expr       { return p.function }
func (p *Port) SetFunction(e *funcexpr.Expr)   { p.function = e }
func (p *Port) TristateEnable() *funcexpr.Expr { return p.tristateEnable }
func (p *Port) SetTristateEnable(e *funcexpr.Expr) { p.tristateEnable = e }

func (p *Port) Capacitance() RiseFallMinMax        { return p.capacitance }
func (p *Port) SetCapacitance(c RiseFallMinMax)    { p.capacitance = c }
func (p *Port) DriveResistance() RiseFallMinMax     { return p.driveResistance }
func (p *Port) SetDriveResistance(r RiseFallMinMax) { p.driveResistance = r }
func (p *Port) Limits() Limits                      { return p.limits }
func (p *Port) SetLimits(l Limits)                  { p.limits = l }

func (p *Port) SetMinPulseWidth(high, low float64) {
	p.minPulseWidthHigh, p.minPulseWidthLow = high, low
}
func (p *Port) MinPulseWidth() (high, low float64) {
	return p.minPulseWidthHigh, p.minPulseWidthLow
}
func (p *Port) SetMinPeriod(v float64) { p.minPeriod = v }
func (p *Port) MinPeriod() float64     { return p.minPeriod }

func (p *Port) IsRegClk() bool        { return p.isRegClk }
func (p *Port) SetIsRegClk(b bool)    { p.isRegClk = b }
func (p *Port) IsCheckClk() bool      { return p.isCheckClk }
func (p *Port) SetIsCheckClk(b bool)  { p.isCheckClk = b }

// newBusBits populates bits for a bus port spanning [fromIndex,
// toIndex] (inclusive, either direction), each sharing the bus's
// direction.
func newBusBits(bus *Port, pool *objtbl.ObjectTable[Port, *Port]) error {
	lo, hi := bus.fromIndex, bus.toIndex
	if lo > hi {
		lo, hi = hi, lo
	}
	n := hi - lo + 1
	if n <= 0 {
		return fmt.Errorf("bus port %s has an empty index range [%d:%d]", bus.name, bus.fromIndex, bus.toIndex)
	}
	bus.bits = make([]*Port, n)
	for i := 0; i < n; i++ {
		bit := pool.Make()
		bit.name = fmt.Sprintf("%s[%d]", bus.name, lo+i)
		bit.kind = PortScalar
		bit.cell = bus.cell
		bit.direction = bus.direction
		bus.bits[i] = bit
	}
	return nil
}
