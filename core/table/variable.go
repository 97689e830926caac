/*
 * STA - Lookup table model (spec component C).
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

// Package table is the N-dimensional (0..3) lookup table engine liberty
// timing and power models are built from, plus the PVT derating applied
// on top of a table lookup.
package table

// Variable names an axis of a liberty lookup table template.
type Variable int

const (
	InputNetTransition Variable = iota
	TotalOutputNetCapacitance
	OutputPinTransition
	ConnectDelay
	ConstrainedPinTransition
	RelatedPinTransition
	RelatedOutTotalOutputNetCapacitance
	NormalizedVoltage
	Time
)

func (v Variable) String() string {
	switch v {
	case InputNetTransition:
		return "input_net_transition"
	case TotalOutputNetCapacitance:
		return "total_output_net_capacitance"
	case OutputPinTransition:
		return "output_pin_transition"
	case ConnectDelay:
		return "connect_delay"
	case ConstrainedPinTransition:
		return "constrained_pin_transition"
	case RelatedPinTransition:
		return "related_pin_transition"
	case RelatedOutTotalOutputNetCapacitance:
		return "related_out_total_output_net_capacitance"
	case NormalizedVoltage:
		return "normalized_voltage"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// isSlewLike reports whether v is a transition-time axis; used by
// checkAxes to tell a 1-D slew table apart from a 1-D capacitance
// table.
func (v Variable) isSlewLike() bool {
	switch v {
	case InputNetTransition, OutputPinTransition, ConstrainedPinTransition, RelatedPinTransition:
		return true
	default:
		return false
	}
}

func (v Variable) isCapLike() bool {
	switch v {
	case TotalOutputNetCapacitance, RelatedOutTotalOutputNetCapacitance:
		return true
	default:
		return false
	}
}
