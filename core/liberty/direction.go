/*
 * STA - Liberty cell model (spec component D).
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

// Package liberty is the cell characterization model: libraries,
// cells, ports, timing arc sets, sequentials, statetables and the cell
// hash that equivalent-cell discovery (core/build.EquivCells) groups
// by (spec component D).
package liberty

// Direction is a port's signal direction.
type Direction int

const (
	DirUnknown Direction = iota
	DirInput
	DirOutput
	DirBidirect
	DirTristate
	DirInternal
	DirPower
	DirGround
)

func (d Direction) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirBidirect:
		return "bidirect"
	case DirTristate:
		return "tristate"
	case DirInternal:
		return "internal"
	case DirPower:
		return "power"
	case DirGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Index is the small integer used by funcexpr.PortRef.DirectionIndex
// and the port-hash mixing of EquivCells (spec 4.D.1: "name-hash x 3 +
// direction index x 5").
func (d Direction) Index() int { return int(d) }

// IsPowerOrGround reports whether d is a supply rail direction,
// excluded from ordinary port iteration.
func (d Direction) IsPowerOrGround() bool {
	return d == DirPower || d == DirGround
}
