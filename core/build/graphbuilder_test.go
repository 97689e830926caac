package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sta-core/sta/core/liberty"
)

// fakePin/fakeNet/fakeInstance model a minimal one-buffer network:
//
//	inPort --net1--> U1.A   U1.Y --net2--> outPort
//
// with U1 bound to the BUF cell built in equivcells_test.go.
type fakePin struct {
	name string
	port *liberty.Port
	dir  liberty.Direction
}

type fakeNet struct {
	name string
	pins []*fakePin
}

type fakeInstance struct {
	name string
	cell *liberty.Cell
	pins []*fakePin
}

type fakeNetwork struct {
	top  []*fakePin
	inst []*fakeInstance
	net  map[*fakePin]*fakeNet
}

func (n *fakeNetwork) LeafInstances() []any {
	out := make([]any, len(n.inst))
	for i, v := range n.inst {
		out[i] = v
	}
	return out
}

func (n *fakeNetwork) Pins(instance any) []any {
	inst := instance.(*fakeInstance)
	out := make([]any, len(inst.pins))
	for i, p := range inst.pins {
		out[i] = p
	}
	return out
}

func (n *fakeNetwork) TopPins() []any {
	out := make([]any, len(n.top))
	for i, p := range n.top {
		out[i] = p
	}
	return out
}

func (n *fakeNetwork) Net(pin any) any {
	if net, ok := n.net[pin.(*fakePin)]; ok {
		return net
	}
	return nil
}

func (n *fakeNetwork) NetPins(net any) []any {
	fn := net.(*fakeNet)
	out := make([]any, len(fn.pins))
	for i, p := range fn.pins {
		out[i] = p
	}
	return out
}

func (n *fakeNetwork) Instance(pin any) any {
	p := pin.(*fakePin)
	for _, inst := range n.inst {
		for _, ip := range inst.pins {
			if ip == p {
				return inst
			}
		}
	}
	return nil
}

func (n *fakeNetwork) Cell(instance any) *liberty.Cell {
	return instance.(*fakeInstance).cell
}

func (n *fakeNetwork) LibertyPort(pin any) *liberty.Port {
	return pin.(*fakePin).port
}

func (n *fakeNetwork) Direction(pin any) liberty.Direction {
	return pin.(*fakePin).dir
}

func (n *fakeNetwork) IsHierarchical(instance any) bool { return false }

func (n *fakeNetwork) IsTopLevelPort(pin any) bool {
	p := pin.(*fakePin)
	for _, tp := range n.top {
		if tp == p {
			return true
		}
	}
	return false
}

func buildOneBufferNetwork(t *testing.T) *fakeNetwork {
	t.Helper()
	lib := liberty.NewLibrary("lib")
	buf := makeBuf(lib, "BUF", 100)

	var a, y *liberty.Port
	for _, p := range buf.Ports() {
		switch p.Name() {
		case "A":
			a = p
		case "Y":
			y = p
		}
	}

	inPort := &fakePin{name: "in", dir: liberty.DirInput}
	outPort := &fakePin{name: "out", dir: liberty.DirOutput}
	u1A := &fakePin{name: "U1/A", port: a, dir: liberty.DirInput}
	u1Y := &fakePin{name: "U1/Y", port: y, dir: liberty.DirOutput}

	u1 := &fakeInstance{name: "U1", cell: buf, pins: []*fakePin{u1A, u1Y}}
	net1 := &fakeNet{name: "net1", pins: []*fakePin{inPort, u1A}}
	net2 := &fakeNet{name: "net2", pins: []*fakePin{u1Y, outPort}}

	return &fakeNetwork{
		top:  []*fakePin{inPort, outPort},
		inst: []*fakeInstance{u1},
		net: map[*fakePin]*fakeNet{
			inPort: net1,
			u1A:    net1,
			u1Y:    net2,
			outPort: net2,
		},
	}
}

func TestGraphBuilderOneBuffer(t *testing.T) {
	net := buildOneBufferNetwork(t)
	g := NewGraphBuilder(net, nil).Build(1)

	require.Equalf(t, 4, g.VertexCount(), "VertexCount() want 4 (in, out, U1/A, U1/Y)")
	require.Equalf(t, 3, g.EdgeCount(), "EdgeCount() want 3 (net1 wire, U1 arc, net2 wire)")

	u1A := net.inst[0].pins[0]
	u1Y := net.inst[0].pins[1]
	aVertex := g.PinLoadVertex(u1A)
	yVertex := g.PinDrvrVertex(u1Y)

	var arcEdge bool
	for _, e := range g.OutEdgeList(aVertex) {
		edge := g.Edge(e)
		if edge.To() == yVertex && edge.ArcSet() != nil {
			arcEdge = true
		}
	}
	require.Truef(t, arcEdge, "no intra-instance arc edge found from U1/A to U1/Y")
}

func TestGraphBuilderFilterEdgeDropsArc(t *testing.T) {
	net := buildOneBufferNetwork(t)
	g := NewGraphBuilder(net, func(*liberty.TimingArcSet) bool { return false }).Build(1)

	require.Equalf(t, 2, g.EdgeCount(), "EdgeCount() want 2 (only the two wire edges, arc filtered out)")
}
