package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sta-core/sta/core/liberty"
	"github.com/sta-core/sta/core/rf"
	"github.com/sta-core/sta/core/table"
)

func scalarTable(value float64) *table.Table {
	tbl, err := table.NewTable("t", nil, []float64{value})
	if err != nil {
		panic(err)
	}
	return tbl
}

func bufferArcSet(c *liberty.Cell, a, y *liberty.Port) *liberty.TimingArcSet {
	s := c.NewTimingArcSet(a, y, nil, liberty.RoleCombinational, nil)
	s.AddArc(liberty.TimingArc{From: liberty.TransRise, To: liberty.TransRise, Model: table.NewGateTableModel(scalarTable(0.1))})
	s.AddArc(liberty.TimingArc{From: liberty.TransFall, To: liberty.TransFall, Model: table.NewGateTableModel(scalarTable(0.1))})
	c.AddTimingArcSet(s)
	return s
}

// TestBufferGraphBuild exercises a two-vertex, one-edge graph for a
// simple combinational cell (mirrors scenario S1's BUF cell, wired up
// at the graph level instead of the liberty level).
func TestBufferGraphBuild(t *testing.T) {
	lib := liberty.NewLibrary("lib")
	c := liberty.NewCell(lib, "BUF")
	a := c.AddPort("A", liberty.PortScalar)
	a.SetDirection(liberty.DirInput)
	y := c.AddPort("Y", liberty.PortScalar)
	y.SetDirection(liberty.DirOutput)
	arcSet := bufferArcSet(c, a, y)

	g := NewGraph(1)
	aDrvr, aLoad := g.MakeVertex("A", false)
	if aDrvr != aLoad {
		t.Fatalf("unidirectional pin A got distinct driver/load vertices")
	}
	yDrvr, yLoad := g.MakeVertex("Y", false)
	if yDrvr != yLoad {
		t.Fatalf("unidirectional pin Y got distinct driver/load vertices")
	}

	e := g.MakeEdge(aLoad, yDrvr, arcSet)

	if got := g.VertexCount(); got != 2 {
		t.Fatalf("VertexCount() = %d, want 2", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", got)
	}
	if diff := cmp.Diff([]EdgeId{e}, g.OutEdgeList(aLoad)); diff != "" {
		t.Fatalf("OutEdgeList(A) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]EdgeId{e}, g.InEdgeList(yDrvr)); diff != "" {
		t.Fatalf("InEdgeList(Y) mismatch (-want +got):\n%s", diff)
	}
	if g.Edge(e).ArcSet() != arcSet {
		t.Fatalf("edge did not retain its arc set")
	}
}

// TestBidirectPinVertexCount mirrors the bidirect-pin part of scenario
// S5: a bidirectional pin contributes two vertices (driver and load
// halves), so with one plain pin beside it the graph holds three, and
// it is wired into the graph with one edge as a load and another as a
// driver.
func TestBidirectPinVertexCount(t *testing.T) {
	g := NewGraph(1)
	bDrvr, bLoad := g.MakeVertex("B", true)
	if bDrvr == bLoad {
		t.Fatalf("bidirectional pin B got a single vertex, want distinct driver/load halves")
	}
	otherDrvr, otherLoad := g.MakeVertex("OTHER", false)

	e1 := g.MakeEdge(otherDrvr, bLoad, nil)
	e2 := g.MakeEdge(bDrvr, otherLoad, nil)

	if got := g.VertexCount(); got != 3 {
		t.Fatalf("VertexCount() = %d, want 3", got)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", got)
	}
	if !g.Vertex(bDrvr).IsBidirectDrvr() {
		t.Fatalf("bidirect driver vertex missing IsBidirectDrvr flag")
	}
	if g.Vertex(bLoad).IsBidirectDrvr() {
		t.Fatalf("bidirect load vertex incorrectly flagged as the driver half")
	}
	if diff := cmp.Diff([]EdgeId{e1}, g.InEdgeList(bLoad)); diff != "" {
		t.Fatalf("InEdgeList(bLoad) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]EdgeId{e2}, g.OutEdgeList(bDrvr)); diff != "" {
		t.Fatalf("OutEdgeList(bDrvr) mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteEdgeUnlinksBothLists(t *testing.T) {
	g := NewGraph(1)
	_, a := g.MakeVertex("A", false)
	_, b := g.MakeVertex("B", false)
	_, c := g.MakeVertex("C", false)

	e1 := g.MakeEdge(a, b, nil)
	e2 := g.MakeEdge(a, c, nil)

	g.DeleteEdge(e1)

	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount() after delete = %d, want 1", got)
	}
	if diff := cmp.Diff([]EdgeId{e2}, g.OutEdgeList(a)); diff != "" {
		t.Fatalf("OutEdgeList(a) after delete mismatch (-want +got):\n%s", diff)
	}
	if in := g.InEdgeList(b); len(in) != 0 {
		t.Fatalf("InEdgeList(b) after delete = %v, want empty", in)
	}
	if g.Edge(e1) != nil {
		t.Fatalf("Edge(e1) still resolves after delete")
	}
}

func TestDeleteVertexCascadesEdges(t *testing.T) {
	g := NewGraph(1)
	_, a := g.MakeVertex("A", false)
	_, b := g.MakeVertex("B", false)
	g.MakeEdge(a, b, nil)

	g.DeleteVertex(a)

	if got := g.VertexCount(); got != 1 {
		t.Fatalf("VertexCount() after delete = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Fatalf("EdgeCount() after vertex delete = %d, want 0", got)
	}
}

func TestSlewAnnotationRoundTrip(t *testing.T) {
	g := NewGraph(2)
	_, v := g.MakeVertex("A", false)

	if g.Vertex(v).SlewAnnotated(rf.Rise.Index(), 0) {
		t.Fatalf("fresh vertex reports a slew annotation before any is set")
	}

	g.SetSlew(v, rf.Rise, 0, 0.25)
	g.SetSlew(v, rf.Fall, 1, 0.5)

	if got := g.Slew(v, rf.Rise, 0); got != 0.25 {
		t.Fatalf("Slew(v, rise, ap0) = %v, want 0.25", got)
	}
	if got := g.Slew(v, rf.Fall, 1); got != 0.5 {
		t.Fatalf("Slew(v, fall, ap1) = %v, want 0.5", got)
	}
	if !g.Vertex(v).SlewAnnotated(rf.Rise.Index(), 0) {
		t.Fatalf("SetSlew did not mark the (rise, ap0) annotation bit")
	}
	if g.Vertex(v).SlewAnnotated(rf.Fall.Index(), 0) {
		t.Fatalf("unrelated (fall, ap0) annotation bit incorrectly set")
	}

	g.RemoveDelaySlewAnnotations()
	if g.Vertex(v).SlewAnnotated(rf.Rise.Index(), 0) {
		t.Fatalf("RemoveDelaySlewAnnotations left a slew annotation set")
	}
}

func TestArcDelayAnnotationRoundTrip(t *testing.T) {
	lib := liberty.NewLibrary("lib")
	c := liberty.NewCell(lib, "BUF")
	a := c.AddPort("A", liberty.PortScalar)
	y := c.AddPort("Y", liberty.PortScalar)
	arcSet := bufferArcSet(c, a, y)

	g := NewGraph(1)
	_, av := g.MakeVertex("A", false)
	_, yv := g.MakeVertex("Y", false)
	e := g.MakeEdge(av, yv, arcSet)

	if g.ArcDelayAnnotated(e, 0, 0) {
		t.Fatalf("fresh edge reports an arc-delay annotation before any is set")
	}

	g.SetArcDelay(e, 0, 0, 0.12)
	g.SetArcDelay(e, 1, 0, 0.34)

	if got := g.ArcDelay(e, 0, 0); got != 0.12 {
		t.Fatalf("ArcDelay(e, 0, ap0) = %v, want 0.12", got)
	}
	if got := g.ArcDelay(e, 1, 0); got != 0.34 {
		t.Fatalf("ArcDelay(e, 1, ap0) = %v, want 0.34", got)
	}
	if !g.ArcDelayAnnotated(e, 0, 0) || !g.ArcDelayAnnotated(e, 1, 0) {
		t.Fatalf("SetArcDelay did not mark both arc indices annotated")
	}

	g.RemoveDelaySlewAnnotations()
	if g.ArcDelayAnnotated(e, 0, 0) || g.ArcDelayAnnotated(e, 1, 0) {
		t.Fatalf("RemoveDelaySlewAnnotations left an arc-delay annotation set")
	}
}

func TestCompareOrdersByToVertex(t *testing.T) {
	g := NewGraph(1)
	_, a := g.MakeVertex("A", false)
	_, b := g.MakeVertex("B", false)
	_, c := g.MakeVertex("C", false)

	e1 := g.MakeEdge(a, b, nil)
	e2 := g.MakeEdge(a, c, nil)

	if g.Compare(e1, e1) != 0 {
		t.Fatalf("Compare(e1, e1) != 0")
	}
	if g.Compare(e1, e2) >= 0 {
		t.Fatalf("Compare(e1, e2) did not order by lower `to` vertex first")
	}
	if g.Compare(e2, e1) <= 0 {
		t.Fatalf("Compare is not anti-symmetric")
	}
}

func TestRegClkVertices(t *testing.T) {
	g := NewGraph(1)
	_, ck := g.MakeVertex("CK", false)
	g.AddRegClkVertex(ck)

	if diff := cmp.Diff([]VertexId{ck}, g.RegClkVertices()); diff != "" {
		t.Fatalf("RegClkVertices() mismatch (-want +got):\n%s", diff)
	}
}
