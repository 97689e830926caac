/*
 * STA - Timing and power model variants built on Table.
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

package table

import "fmt"

// ModelKind tags which variant a TimingModel holds. A TimingArc
// (core/liberty) carries one of these; which fields are valid
// depends on the tag, the same discipline the original's class
// hierarchy enforced through virtual dispatch.
type ModelKind int

const (
	GateTableModel ModelKind = iota
	CheckTableModel
	LinearModel
	LinearCheckModel
	OutputCurrentModel
	ReceiverCapacitanceModel
	DriverWaveformModel
)

func (k ModelKind) String() string {
	switch k {
	case GateTableModel:
		return "gate_table"
	case CheckTableModel:
		return "check_table"
	case LinearModel:
		return "linear"
	case LinearCheckModel:
		return "linear_check"
	case OutputCurrentModel:
		return "output_current"
	case ReceiverCapacitanceModel:
		return "receiver_capacitance"
	case DriverWaveformModel:
		return "driver_waveform"
	default:
		return "unknown"
	}
}

// LinearCoeffs is an intercept plus slew and load gains, used by LinearModel and
// LinearCheckModel when a cell supplies no lookup table for a value,
// only a linear equation in the related pin's slew and load.
type LinearCoeffs struct {
	Intercept   float64
	SlewCoeff   float64
	LoadCoeff   float64
}

// Evaluate computes intercept + slew*SlewCoeff + load*LoadCoeff.
func (c LinearCoeffs) Evaluate(slew, load float64) float64 {
	return c.Intercept + slew*c.SlewCoeff + load*c.LoadCoeff
}

// Waveform is a normalized-voltage-vs-time table, the shape
// OutputCurrentModel and DriverWaveformModel attach per input-slew /
// output-load corner.
type Waveform struct {
	VoltageTable *Table
	CurrentTable *Table
}

// TimingModel is the tagged variant over every value a liberty timing
// arc or check can carry: a plain delay/transition table, a
// setup/hold check table, a linear equation standing in for either,
// an output current (CCS) waveform set, a receiver capacitance model,
// or a driver waveform model. Exactly the fields matching Kind are
// populated; the rest are zero.
type TimingModel struct {
	Kind ModelKind

	Table *Table // GateTableModel, CheckTableModel

	Linear LinearCoeffs // LinearModel, LinearCheckModel

	Waveforms map[float64]Waveform // OutputCurrentModel, DriverWaveformModel: keyed by input slew

	RecvCap *Table // ReceiverCapacitanceModel
}

// NewGateTableModel wraps t as a GateTableModel (cell_rise/cell_fall/
// rise_transition/fall_transition).
func NewGateTableModel(t *Table) TimingModel {
	return TimingModel{Kind: GateTableModel, Table: t}
}

// NewCheckTableModel wraps t as a CheckTableModel (rise_constraint/
// fall_constraint for setup, hold, recovery, removal, etc.).
func NewCheckTableModel(t *Table) TimingModel {
	return TimingModel{Kind: CheckTableModel, Table: t}
}

func NewLinearModel(c LinearCoeffs) TimingModel {
	return TimingModel{Kind: LinearModel, Linear: c}
}

func NewLinearCheckModel(c LinearCoeffs) TimingModel {
	return TimingModel{Kind: LinearCheckModel, Linear: c}
}

func NewOutputCurrentModel(waveforms map[float64]Waveform) TimingModel {
	return TimingModel{Kind: OutputCurrentModel, Waveforms: waveforms}
}

func NewDriverWaveformModel(waveforms map[float64]Waveform) TimingModel {
	return TimingModel{Kind: DriverWaveformModel, Waveforms: waveforms}
}

func NewReceiverCapacitanceModel(t *Table) TimingModel {
	return TimingModel{Kind: ReceiverCapacitanceModel, RecvCap: t}
}

// Value evaluates the model for a (slew, load) pair and PVT corner,
// dispatching on Kind. Waveform-based kinds (CCS current source and
// driver waveform) do not reduce to a single value here -- callers
// needing the full waveform use Waveforms directly; Value panics if
// called on those kinds.
func (m TimingModel) Value(slew, load float64, k ScaleFactors, pvt PVT) float64 {
	switch m.Kind {
	case GateTableModel, CheckTableModel, ReceiverCapacitanceModel:
		t := m.Table
		if m.Kind == ReceiverCapacitanceModel {
			t = m.RecvCap
		}
		raw := lookupBySupportedDims(t, slew, load)
		return k.Apply(raw, pvt)
	case LinearModel, LinearCheckModel:
		return k.Apply(m.Linear.Evaluate(slew, load), pvt)
	default:
		panic(fmt.Sprintf("table: Value called on waveform model kind %v", m.Kind))
	}
}

// lookupBySupportedDims calls Table.Lookup with the coordinates
// matching the table's declared axis shape (scalar, slew-only,
// cap-only, or slew-by-cap in either order).
func lookupBySupportedDims(t *Table, slew, load float64) float64 {
	switch len(t.Axes) {
	case 0:
		return t.Lookup()
	case 1:
		if t.Axes[0].Variable.isCapLike() {
			return t.Lookup(load)
		}
		return t.Lookup(slew)
	case 2:
		if t.Axes[0].Variable.isCapLike() {
			return t.Lookup(load, slew)
		}
		return t.Lookup(slew, load)
	default:
		panic(fmt.Sprintf("table %s: Value unsupported for %d-D table", t.Name, len(t.Axes)))
	}
}
