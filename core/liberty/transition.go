/*
 * STA - Eight-member transition enumeration.
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

import "github.com/sta-core/sta/core/rf"

// Transition is the eight-valued rise/fall/tristate transition set a
// timing arc is keyed by (rr, ff, rf, fr plus the four Z-transitions
// for tristate enable/disable arcs).
type Transition int

const (
	TransRise Transition = iota
	TransFall
	TransRiseZ // Z -> 1 (tristate enable, rising)
	TransFallZ // Z -> 0 (tristate enable, falling)
	TransZRise // 1 -> Z (tristate disable, from rise)
	TransZFall // 0 -> Z (tristate disable, from fall)
	TransHigh  // steady H, used by min_pulse_width/non-seq checks
	TransLow   // steady L
)

func (t Transition) String() string {
	switch t {
	case TransRise:
		return "rise"
	case TransFall:
		return "fall"
	case TransRiseZ:
		return "rise_z"
	case TransFallZ:
		return "fall_z"
	case TransZRise:
		return "z_rise"
	case TransZFall:
		return "z_fall"
	case TransHigh:
		return "high"
	case TransLow:
		return "low"
	default:
		return "unknown"
	}
}

// Index is the 4-bit (0..7) offset used to size and address per-
// arc-set timing-arc arrays.
func (t Transition) Index() int { return int(t) }

// AsRiseFall reports the underlying rise/fall polarity and whether t
// has one (the steady H/L transitions do not).
func (t Transition) AsRiseFall() (rf.RiseFall, bool) {
	switch t {
	case TransRise, TransRiseZ, TransZRise:
		return rf.Rise, true
	case TransFall, TransFallZ, TransZFall:
		return rf.Fall, true
	default:
		return rf.Rise, false
	}
}

// Opposite returns the transition of opposite polarity within the
// same family (rise<->fall, rise_z<->fall_z, z_rise<->z_fall); the
// steady transitions map to themselves.
func (t Transition) Opposite() Transition {
	switch t {
	case TransRise:
		return TransFall
	case TransFall:
		return TransRise
	case TransRiseZ:
		return TransFallZ
	case TransFallZ:
		return TransRiseZ
	case TransZRise:
		return TransZFall
	case TransZFall:
		return TransZRise
	default:
		return t
	}
}

// FromRiseFall maps a plain rise/fall transition to its Transition
// value.
func FromRiseFall(r rf.RiseFall) Transition {
	if r == rf.Rise {
		return TransRise
	}
	return TransFall
}
