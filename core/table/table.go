/*
 * STA - Table value storage and multilinear lookup.
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

import (
	"fmt"

	"github.com/sta-core/sta/logging"
)

// Table holds the sample values for 0 to 3 axes, stored flat in
// row-major order (axis 0 varies slowest). A 0-axis table is a single
// scalar.
type Table struct {
	Name   string
	Axes   []Axis
	Values []float64
}

// NewTable builds a Table, validating that Values' length matches the
// product of the axes' sample counts.
func NewTable(name string, axes []Axis, values []float64) (*Table, error) {
	want := 1
	for _, a := range axes {
		want *= len(a.Values)
	}
	if len(values) != want {
		return nil, fmt.Errorf("table %s: %d values, want %d for axes %v", name, len(values), want, axes)
	}
	warnUnsupportedAxes(name, axes)
	return &Table{Name: name, Axes: append([]Axis(nil), axes...), Values: values}, nil
}

// Dimensions returns the table's axis count (0..3).
func (t *Table) Dimensions() int { return len(t.Axes) }

// bracket finds the pair of samples in values straddling x and the
// interpolation fraction between them, clamped to [0, 1]. Values
// outside the table's range are held at the nearest endpoint's value
// rather than linearly extrapolated past it -- an out-of-range query
// returns the boundary row/column's value, never a slope-projected one.
func bracket(values []float64, x float64) (lo, hi int, frac float64) {
	n := len(values)
	if n == 1 {
		return 0, 0, 0
	}
	if x <= values[0] {
		return 0, 1, 0
	}
	if x >= values[n-1] {
		return n - 2, n - 1, 1
	}
	for i := 1; i < n; i++ {
		if x <= values[i] {
			lo, hi = i-1, i
			span := values[hi] - values[lo]
			frac = (x - values[lo]) / span
			if frac < 0 {
				frac = 0
			} else if frac > 1 {
				frac = 1
			}
			return lo, hi, frac
		}
	}
	return n - 2, n - 1, 1
}

// Lookup evaluates the table at the given axis coordinates (one value
// per axis, in axis order). Queries outside an axis's sample range are
// clamped: the fraction along the bracketing pair of samples saturates
// at 0 or 1, so the result is the boundary sample's value rather than
// a linear extrapolation past it.
func (t *Table) Lookup(coords ...float64) float64 {
	if len(coords) != len(t.Axes) {
		logging.Critical(240, "table %s: Lookup got %d coordinates, want %d", t.Name, len(coords), len(t.Axes))
	}
	switch len(t.Axes) {
	case 0:
		return t.Values[0]
	case 1:
		lo, hi, frac := bracket(t.Axes[0].Values, coords[0])
		return lerp(t.Values[lo], t.Values[hi], frac)
	case 2:
		return t.lookup2D(coords[0], coords[1])
	case 3:
		return t.lookup3D(coords[0], coords[1], coords[2])
	default:
		logging.Critical(241, "table %s: unsupported dimension %d", t.Name, len(t.Axes))
		return 0
	}
}

func lerp(a, b, frac float64) float64 { return a + frac*(b-a) }

func (t *Table) lookup2D(x0, x1 float64) float64 {
	n1 := len(t.Axes[1].Values)
	lo0, hi0, f0 := bracket(t.Axes[0].Values, x0)
	lo1, hi1, f1 := bracket(t.Axes[1].Values, x1)

	at := func(i0, i1 int) float64 { return t.Values[i0*n1+i1] }

	row0 := lerp(at(lo0, lo1), at(lo0, hi1), f1)
	row1 := lerp(at(hi0, lo1), at(hi0, hi1), f1)
	return lerp(row0, row1, f0)
}

func (t *Table) lookup3D(x0, x1, x2 float64) float64 {
	n1, n2 := len(t.Axes[1].Values), len(t.Axes[2].Values)
	lo0, hi0, f0 := bracket(t.Axes[0].Values, x0)
	lo1, hi1, f1 := bracket(t.Axes[1].Values, x1)
	lo2, hi2, f2 := bracket(t.Axes[2].Values, x2)

	at := func(i0, i1, i2 int) float64 { return t.Values[(i0*n1+i1)*n2+i2] }

	plane := func(i0 int) float64 {
		row0 := lerp(at(i0, lo1, lo2), at(i0, lo1, hi2), f2)
		row1 := lerp(at(i0, hi1, lo2), at(i0, hi1, hi2), f2)
		return lerp(row0, row1, f1)
	}
	return lerp(plane(lo0), plane(hi0), f0)
}
