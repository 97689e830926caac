/*
 * STA - Process/voltage/temperature derating of table lookups.
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

// PVT is an operating corner's deviation from the library's nominal
// process, voltage and temperature, expressed as a difference in the
// library's own units, not a ratio (Library.PVTFor computes corner
// minus nominal: 0.9 V against a 1.0 V nominal is -0.1, not 0.9).
type PVT struct {
	Process     float64
	Voltage     float64
	Temperature float64
}

// ScaleFactors are the per-(process, voltage, temperature) derating
// coefficients a liberty library or cell may define for a given value
// type (cell_rise, cell_fall, ...). A zero-value ScaleFactors applies
// unity scaling.
type ScaleFactors struct {
	Process     float64
	Voltage     float64
	Temperature float64
}

// Apply derates value by pvt using k: scaled = value * (1 +
// pvt.Process*k.Process) * (1 + pvt.Voltage*k.Voltage) * (1 +
// pvt.Temperature*k.Temperature).
func (k ScaleFactors) Apply(value float64, pvt PVT) float64 {
	return value *
		(1 + pvt.Process*k.Process) *
		(1 + pvt.Voltage*k.Voltage) *
		(1 + pvt.Temperature*k.Temperature)
}

// ScaleFactorSource reports the ScaleFactors one scope (a cell or a
// library) defines for a value type. Cells and libraries both
// implement this by looking up their own table only; the fallback
// from a cell-specific definition to a library default to unity is
// done by ResolveScaleFactors.
type ScaleFactorSource interface {
	ScaleFactors(valueType string) (ScaleFactors, bool)
}

// ResolveScaleFactors walks sources in order (most specific first)
// and returns the first match, or unity scaling if none defines the
// value type.
func ResolveScaleFactors(valueType string, sources ...ScaleFactorSource) ScaleFactors {
	for _, s := range sources {
		if s == nil {
			continue
		}
		if k, ok := s.ScaleFactors(valueType); ok {
			return k
		}
	}
	return ScaleFactors{}
}
