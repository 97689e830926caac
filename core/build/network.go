/*
 * STA - Network: the caller-supplied view of an elaborated design
 *       that GraphBuilder walks to construct a timing graph.
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

// Package build turns a Network plus a Liberty library into a timing
// graph: LibertyBuilder maps `timing()` groups to TimingArcSets,
// EquivCells groups cells that behave identically, and GraphBuilder
// walks the network to materialize core/graph's vertices and edges
// (spec component F).
package build

import "github.com/sta-core/sta/core/liberty"

// Network is the minimal elaborated-design view GraphBuilder needs.
// A caller's real netlist representation implements this rather than
// GraphBuilder depending on any particular netlist package.
type Network interface {
	// LeafInstances returns every leaf (non-hierarchical) instance in
	// the design, in an arbitrary but stable order.
	LeafInstances() []any

	// Pins returns every pin belonging to instance (a leaf instance).
	Pins(instance any) []any

	// TopPins returns the top-level network boundary's own ports, which
	// belong to no instance and so are not reachable through Pins.
	TopPins() []any

	// Net returns the net a pin is connected to, or nil if unconnected.
	Net(pin any) any

	// NetPins returns every pin (driver and load) attached to net.
	NetPins(net any) []any

	// Instance returns the instance a pin belongs to.
	Instance(pin any) any

	// Cell returns the liberty Cell bound to instance, or nil for a
	// hierarchical instance or an unmapped leaf.
	Cell(instance any) *liberty.Cell

	// LibertyPort returns the liberty Port a pin corresponds to, or nil
	// if the pin has no liberty-level counterpart (e.g. a top-level
	// boundary pin with no cell).
	LibertyPort(pin any) *liberty.Port

	// Direction returns the pin's direction as seen from outside its
	// instance (top-level ports are driven by their own direction,
	// reversed relative to an internal driver).
	Direction(pin any) liberty.Direction

	// IsHierarchical reports whether instance is a hierarchical
	// (non-leaf) instance; GraphBuilder never visits its pins directly,
	// relying instead on the flattened LeafInstances/Pins view.
	IsHierarchical(instance any) bool

	// IsTopLevelPort reports whether pin is a top-level network
	// boundary pin rather than a leaf-instance pin.
	IsTopLevelPort(pin any) bool
}
