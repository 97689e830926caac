/*
 * STA - Library: the named collection of cells, templates, operating
 *       conditions and unit scalings a technology characterization
 *       defines.
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

	"github.com/sta-core/sta/core/table"
	"github.com/sta-core/sta/core/units"
	"github.com/sta-core/sta/logging"
)

// OperatingCondition is a (process, voltage, temperature) triple plus
// the wire-load tree type it implies for unannotated nets.
type OperatingCondition struct {
	Name        string
	Process     float64
	Voltage     float64
	Temperature float64
	TreeType    string
}

// ScaleFactorEntry is one value-type's PVT coefficient set, as
// defined at either cell or library scope.
type ScaleFactorEntry struct {
	Factors table.ScaleFactors
}

// WireLoadModel is a resistance/slope/fanout-length/capacitance wire
// estimation model for unannotated nets.
type WireLoadModel struct {
	Name             string
	Resistance       float64
	Capacitance      float64
	Slope            float64
	FanoutLength     [][2]float64 // (fanout, length) pairs
}

// Thresholds are the per-rise/fall fractions of supply that define
// when a transition is considered to have started/ended (spec §3:
// "per-rise/fall thresholds (input, output, slew-lower, slew-upper)").
type Thresholds struct {
	InputRise, InputFall   float64
	OutputRise, OutputFall float64
	SlewLowerRise, SlewLowerFall float64
	SlewUpperRise, SlewUpperFall float64
}

// BusDeclaration names a bus-naming-style template (e.g. the
// "%s[%d]" pattern liberty's bus_naming_style attribute describes).
type BusDeclaration struct {
	Name    string
	Style   string
}

// Library is a named collection of cells, bus declarations, table
// templates, operating conditions, scale-factor sets, wire-load
// models, driver-waveform tables and unit scalings (spec §3 Library).
// It holds no OCV-derate tables.
type Library struct {
	Name string

	TimeUnit               units.Value
	CapacitiveLoadUnit     units.Value
	VoltageUnit            units.Value
	CurrentUnit            units.Value
	PullingResistanceUnit  units.Value
	LeakagePowerUnit       units.Value
	DistanceUnit           units.Value

	DelayModel string // "table_lookup" (the only model this core interprets), "cmos_linear", ...

	BusNamingStyle string
	busDeclarations map[string]*BusDeclaration

	NomProcess     float64
	NomVoltage     float64
	NomTemperature float64

	defaultThresholds Thresholds

	cells    []*Cell
	cellByName map[string]*Cell

	templates map[string]*table.Template

	operatingConditions map[string]OperatingCondition
	defaultOperatingCondition *OperatingCondition

	scaleFactors map[string]ScaleFactorEntry

	wireLoadModels map[string]*WireLoadModel
	defaultWireLoad *WireLoadModel

	driverWaveforms       map[string]*table.Table
	defaultDriverWaveform *table.Table
}

func NewLibrary(name string) *Library {
	return &Library{
		Name:                name,
		busDeclarations:     map[string]*BusDeclaration{},
		cellByName:          map[string]*Cell{},
		templates:           map[string]*table.Template{},
		operatingConditions: map[string]OperatingCondition{},
		scaleFactors:        map[string]ScaleFactorEntry{},
		wireLoadModels:      map[string]*WireLoadModel{},
		driverWaveforms:     map[string]*table.Table{},
	}
}

func (l *Library) AddCell(c *Cell) {
	l.cells = append(l.cells, c)
	l.cellByName[c.Name()] = c
}

func (l *Library) Cells() []*Cell             { return l.cells }
func (l *Library) FindCell(name string) *Cell { return l.cellByName[name] }

func (l *Library) SetThresholds(t Thresholds) { l.defaultThresholds = t }
func (l *Library) Thresholds() Thresholds     { return l.defaultThresholds }

// CheckThresholds reports ErrMissingThreshold when the library's
// thresholds were never set, i.e. all eight fields are zero. A
// Thresholds value with only some fields zero is not reported: a zero
// field cannot be told apart from an unset one here.
func (l *Library) CheckThresholds() error {
	t := l.defaultThresholds
	if t == (Thresholds{}) {
		return fmt.Errorf("%w: %s", ErrMissingThreshold, l.Name)
	}
	return nil
}

func (l *Library) AddBusDeclaration(b *BusDeclaration) {
	l.busDeclarations[b.Name] = b
}
func (l *Library) BusDeclaration(name string) (*BusDeclaration, bool) {
	b, ok := l.busDeclarations[name]
	return b, ok
}

func (l *Library) AddTemplate(t *table.Template)              { l.templates[t.Name] = t }
func (l *Library) FindTemplate(name string) (*table.Template, bool) {
	t, ok := l.templates[name]
	return t, ok
}

// AddOperatingCondition registers a named OC; the first one added
// becomes the default unless SetDefaultOperatingCondition is called
// explicitly, matching liberty's implicit-default behavior when a
// library declares exactly one.
func (l *Library) AddOperatingCondition(oc OperatingCondition) {
	l.operatingConditions[oc.Name] = oc
	if l.defaultOperatingCondition == nil {
		l.defaultOperatingCondition = &oc
	}
}

func (l *Library) OperatingCondition(name string) (OperatingCondition, bool) {
	oc, ok := l.operatingConditions[name]
	return oc, ok
}

// SetDefaultOperatingCondition resolves a default_operating_conditions
// reference; an unknown name is a warning (spec §7: "a default-
// wireload/default-operating-condition reference to a name that does
// not exist -> warning (the reference is cleared)").
func (l *Library) SetDefaultOperatingCondition(name string) {
	oc, ok := l.operatingConditions[name]
	if !ok {
		logging.Warn("library %s: default_operating_conditions %q not found, reference cleared", l.Name, name)
		l.defaultOperatingCondition = nil
		return
	}
	l.defaultOperatingCondition = &oc
}

func (l *Library) DefaultOperatingCondition() (OperatingCondition, bool) {
	if l.defaultOperatingCondition == nil {
		return OperatingCondition{}, false
	}
	return *l.defaultOperatingCondition, true
}

func (l *Library) SetScaleFactors(valueType string, k table.ScaleFactors) {
	l.scaleFactors[valueType] = ScaleFactorEntry{Factors: k}
}

// ScaleFactors implements table.ScaleFactorSource as the library-
// default fallback below a cell's own set.
func (l *Library) ScaleFactors(valueType string) (table.ScaleFactors, bool) {
	e, ok := l.scaleFactors[valueType]
	if !ok {
		return table.ScaleFactors{}, false
	}
	return e.Factors, true
}

func (l *Library) AddWireLoadModel(w *WireLoadModel) { l.wireLoadModels[w.Name] = w }

func (l *Library) SetDefaultWireLoad(name string) {
	w, ok := l.wireLoadModels[name]
	if !ok {
		logging.Warn("library %s: default wire_load %q not found, reference cleared", l.Name, name)
		l.defaultWireLoad = nil
		return
	}
	l.defaultWireLoad = w
}

func (l *Library) DefaultWireLoad() (*WireLoadModel, bool) {
	return l.defaultWireLoad, l.defaultWireLoad != nil
}

func (l *Library) AddDriverWaveform(name string, t *table.Table) {
	if name == "" {
		l.defaultDriverWaveform = t
		return
	}
	l.driverWaveforms[name] = t
}

func (l *Library) DriverWaveform(name string) (*table.Table, bool) {
	if name == "" {
		return l.defaultDriverWaveform, l.defaultDriverWaveform != nil
	}
	t, ok := l.driverWaveforms[name]
	return t, ok
}

// PVTFor computes the PVT deviation of oc relative to the library's
// nominal process/voltage/temperature, the value table.ScaleFactors.Apply
// consumes.
func (l *Library) PVTFor(oc OperatingCondition) table.PVT {
	return table.PVT{
		Process:     oc.Process - l.NomProcess,
		Voltage:     oc.Voltage - l.NomVoltage,
		Temperature: oc.Temperature - l.NomTemperature,
	}
}
