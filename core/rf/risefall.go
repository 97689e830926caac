/*
 * STA - Rise/fall transition enumeration shared by the table, liberty
 *       and graph packages.
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

// Package rf is the two-valued rise/fall transition used to index
// per-edge timing arcs, per-vertex slews and per-type scale factors.
// The richer eight-member Transition enumeration (which adds the
// tristate Z transitions) lives in core/liberty, built on top of
// this.
package rf

// RiseFall distinguishes a rising from a falling transition.
type RiseFall int

const (
	Rise RiseFall = iota
	Fall
)

// Index returns 0 for Rise and 1 for Fall, the offset used to size
// and address per-(ap,rf) slew storage.
func (r RiseFall) Index() int { return int(r) }

// Opposite returns the other transition.
func (r RiseFall) Opposite() RiseFall {
	if r == Rise {
		return Fall
	}
	return Rise
}

func (r RiseFall) String() string {
	if r == Rise {
		return "rise"
	}
	return "fall"
}

// Both enumerates the two transitions in index order, for ranging
// over both rise and fall without allocating a slice at each call
// site.
var Both = [2]RiseFall{Rise, Fall}
