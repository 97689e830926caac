/*
 * STA - GraphBuilder: walks a Network and materializes the timing
 *       graph (core/graph) from its instances, pins and nets.
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

package build

import (
	"github.com/sta-core/sta/core/graph"
	"github.com/sta-core/sta/core/liberty"
	"github.com/sta-core/sta/logging"
)

// GraphBuilder walks a Network and a Liberty library to produce a
// timing graph (spec §4.E "Construction"). Hierarchical-pin
// compaction (collecting the driver/load pairs that route through a
// non-leaf instance's pins) is the Network implementation's job: it
// is expected to hand GraphBuilder an already-flattened view via
// LeafInstances/Pins, so the builder itself never visits a
// hierarchical pin.
type GraphBuilder struct {
	net Network

	// filterEdge, if set, is consulted for every candidate intra-
	// instance timing arc set; returning false drops it before an
	// edge is ever created.
	filterEdge func(*liberty.TimingArcSet) bool
}

func NewGraphBuilder(net Network, filterEdge func(*liberty.TimingArcSet) bool) *GraphBuilder {
	return &GraphBuilder{net: net, filterEdge: filterEdge}
}

// Build runs the full construction sequence and returns the
// resulting graph, sized for apCount dcalc analysis points.
func (b *GraphBuilder) Build(apCount int) *graph.Graph {
	g := graph.NewGraph(apCount)
	b.makePinVertices(g)
	b.makeInstanceEdges(g)
	b.makeWireEdges(g)
	return g
}

// makePinVertices is construction step 2: every leaf-instance pin,
// plus the top-level network boundary's own ports, gets a vertex
// pair (driver == load unless the pin is bidirectional).
func (b *GraphBuilder) makePinVertices(g *graph.Graph) {
	for _, inst := range b.net.LeafInstances() {
		for _, pin := range b.net.Pins(inst) {
			g.MakeVertex(pin, b.net.Direction(pin) == liberty.DirBidirect)
		}
	}
	for _, pin := range b.net.TopPins() {
		g.MakeVertex(pin, b.net.Direction(pin) == liberty.DirBidirect)
	}
}

// makeInstanceEdges is construction step 3: for every leaf instance,
// walk its cell's timing arc sets (after filterEdge) and add one edge
// per arc set that actually connects two ports. Arc sets with no
// from-port (clock-tree-path) or a self from==to port (min-pulse-
// width) are per-vertex checks, not edges, and are skipped here.
func (b *GraphBuilder) makeInstanceEdges(g *graph.Graph) {
	for _, inst := range b.net.LeafInstances() {
		cell := b.net.Cell(inst)
		if cell == nil {
			continue
		}
		portPin := b.portPinMap(inst)
		for _, arcSet := range cell.TimingArcSets() {
			if arcSet.From() == nil || arcSet.From() == arcSet.To() {
				continue
			}
			if b.filterEdge != nil && !b.filterEdge(arcSet) {
				continue
			}
			fromPin, ok := portPin[arcSet.From()]
			if !ok {
				logging.Warn("cell %s: timing arc from-port %s has no matching pin on this instance",
					cell.Name(), arcSet.From().Name())
				continue
			}
			toPin, ok := portPin[arcSet.To()]
			if !ok {
				logging.Warn("cell %s: timing arc to-port %s has no matching pin on this instance",
					cell.Name(), arcSet.To().Name())
				continue
			}

			fromV := g.PinLoadVertex(fromPin)
			toV := g.PinLoadVertex(toPin)
			if arcSet.To().Direction() == liberty.DirOutput || arcSet.To().Direction() == liberty.DirTristate {
				toV = g.PinDrvrVertex(toPin)
			}

			g.MakeEdge(fromV, toV, arcSet)

			if arcSet.From().IsRegClk() {
				g.AddRegClkVertex(fromV)
			}
		}
	}
}

// portPinMap inverts Network.LibertyPort over one instance's pins, so
// an arc set's *liberty.Port endpoints can be mapped back to the pins
// they correspond to on this particular instance.
func (b *GraphBuilder) portPinMap(inst any) map[*liberty.Port]any {
	m := map[*liberty.Port]any{}
	for _, pin := range b.net.Pins(inst) {
		if p := b.net.LibertyPort(pin); p != nil {
			m[p] = pin
		}
	}
	return m
}

// makeWireEdges is construction step 4: for every net reached via a
// driver pin, add a wire edge (nil arc set) from the driver pin's
// driver vertex to every other pin on the net that can sink it. A
// bidirectional pin is its own driver and its own load; it is
// excluded from pairing with itself.
func (b *GraphBuilder) makeWireEdges(g *graph.Graph) {
	visited := map[any]bool{}
	for _, pin := range b.allPins() {
		net := b.net.Net(pin)
		if net == nil || visited[net] {
			continue
		}
		visited[net] = true

		netPins := b.net.NetPins(net)
		var drivers, loads []any
		for _, p := range netPins {
			if b.isDriverPin(p) {
				drivers = append(drivers, p)
			}
			if b.isLoadPin(p) {
				loads = append(loads, p)
			}
		}

		for _, d := range drivers {
			drvrV := g.PinDrvrVertex(d)
			for _, l := range loads {
				if l == d {
					continue
				}
				loadV := g.PinLoadVertex(l)
				g.MakeEdge(drvrV, loadV, nil)
			}
		}
	}
}

func (b *GraphBuilder) allPins() []any {
	var out []any
	for _, inst := range b.net.LeafInstances() {
		out = append(out, b.net.Pins(inst)...)
	}
	out = append(out, b.net.TopPins()...)
	return out
}

// isDriverPin and isLoadPin account for the reversal between a
// leaf-instance pin's direction and a top-level port's direction
// (spec §6: "top-level ports are driven by their own direction,
// reversed relative to an internal driver").
func (b *GraphBuilder) isDriverPin(pin any) bool {
	d := b.net.Direction(pin)
	if b.net.IsTopLevelPort(pin) {
		return d == liberty.DirInput || d == liberty.DirBidirect
	}
	return d == liberty.DirOutput || d == liberty.DirTristate || d == liberty.DirBidirect
}

func (b *GraphBuilder) isLoadPin(pin any) bool {
	d := b.net.Direction(pin)
	if b.net.IsTopLevelPort(pin) {
		return d == liberty.DirOutput || d == liberty.DirBidirect
	}
	return d == liberty.DirInput || d == liberty.DirBidirect
}
