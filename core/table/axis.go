/*
 * STA - Lookup table axes and templates.
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

// Axis is one dimension of a table: the variable it indexes and the
// sorted sample points along it.
type Axis struct {
	Variable Variable
	Values   []float64
}

// NewAxis builds an Axis, requiring at least one sample and a
// strictly increasing sequence -- a liberty table with a
// non-monotonic axis is malformed and cannot be looked up.
func NewAxis(v Variable, values []float64) (Axis, error) {
	if len(values) == 0 {
		return Axis{}, fmt.Errorf("axis %v has no sample points", v)
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return Axis{}, fmt.Errorf("axis %v is not strictly increasing at index %d", v, i)
		}
	}
	return Axis{Variable: v, Values: append([]float64(nil), values...)}, nil
}

// Template is a named, reusable set of axes that a Table instance
// fills with concrete values (spec component C).
type Template struct {
	Name string
	Axes []Axis
}

func NewTemplate(name string, axes ...Axis) *Template {
	return &Template{Name: name, Axes: axes}
}

// Dimensions returns the number of axes in the template (0, 1, 2 or 3).
func (t *Template) Dimensions() int { return len(t.Axes) }

// checkAxes validates that a table's axis set is one of the shapes
// liberty timing/power models actually use: scalar (0 axes), a single
// slew, capacitance, time or normalized-voltage axis (1 axis), a
// slew-by-capacitance plane (2 axes, in either order), or any 3-axis
// set. For anything else it returns an error; it does not log.
// NewTable hands that error to warnUnsupportedAxes, which only logs
// it: the table is still built and can still be looked up.
func checkAxes(axes []Axis) error {
	switch len(axes) {
	case 0:
		return nil
	case 1:
		v := axes[0].Variable
		if v.isSlewLike() || v.isCapLike() || v == Time || v == NormalizedVoltage {
			return nil
		}
		return fmt.Errorf("unsupported 1-D axis variable %v", v)
	case 2:
		a, b := axes[0].Variable, axes[1].Variable
		if (a.isSlewLike() && b.isCapLike()) || (a.isCapLike() && b.isSlewLike()) {
			return nil
		}
		return fmt.Errorf("unsupported 2-D axis pair (%v, %v)", a, b)
	case 3:
		return nil
	default:
		return fmt.Errorf("tables support at most 3 axes, got %d", len(axes))
	}
}

// warnUnsupportedAxes logs and swallows a checkAxes error; callers
// that can proceed with a best-effort lookup (the axis shape just
// governs a diagnostic, not table semantics) use this instead of
// propagating the error.
func warnUnsupportedAxes(name string, axes []Axis) {
	if err := checkAxes(axes); err != nil {
		logging.Warn("table %s: %v", name, err)
	}
}
