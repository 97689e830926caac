package liberty

import (
	"testing"

	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/table"
)

func scalarTable(value float64) *table.Table {
	t, err := table.NewTable("t", nil, []float64{value})
	if err != nil {
		panic(err)
	}
	return t
}

func TestBufferCellS1(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "BUF")
	a := c.AddPort("A", PortScalar)
	a.direction = DirInput
	y := c.AddPort("Y", PortScalar)
	y.direction = DirOutput
	y.SetFunction(funcexpr.MakePort(a))
	y.driveResistance.RiseMax = 500

	riseModel := table.NewGateTableModel(scalarTable(0.1))
	fallModel := table.NewGateTableModel(scalarTable(0.1))
	s := c.NewTimingArcSet(a, y, nil, RoleCombinational, nil)
	s.AddArc(TimingArc{From: TransRise, To: TransRise, Model: riseModel})
	s.AddArc(TimingArc{From: TransFall, To: TransFall, Model: fallModel})
	c.AddTimingArcSet(s)

	if got := len(c.TimingArcSets()); got != 1 {
		t.Fatalf("TimingArcSets() len = %d, want 1", got)
	}
	if got := len(c.TimingArcSets()[0].Arcs()); got != 2 {
		t.Fatalf("arc count = %d, want 2", got)
	}
	if !c.IsBuffer() {
		t.Fatalf("IsBuffer() = false, want true")
	}
	if c.IsInverter() {
		t.Fatalf("IsInverter() = true, want false")
	}
	if r, ok := c.DriveResistance(); !ok || r <= 0 {
		t.Fatalf("DriveResistance() = (%v, %v), want (>0, true)", r, ok)
	}
}

func TestInverterCellS2(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "INV")
	a := c.AddPort("A", PortScalar)
	a.direction = DirInput
	y := c.AddPort("Y", PortScalar)
	y.direction = DirOutput
	y.SetFunction(funcexpr.MakeNot(funcexpr.MakePort(a)))

	s := c.NewTimingArcSet(a, y, nil, RoleCombinational, nil)
	s.AddArc(TimingArc{From: TransRise, To: TransFall, Model: table.NewGateTableModel(scalarTable(0.1))})
	s.AddArc(TimingArc{From: TransFall, To: TransRise, Model: table.NewGateTableModel(scalarTable(0.1))})
	c.AddTimingArcSet(s)

	if !c.IsInverter() {
		t.Fatalf("IsInverter() = false, want true")
	}
	if c.IsBuffer() {
		t.Fatalf("IsBuffer() = true, want false")
	}
	arcs := c.TimingArcSets()[0].Arcs()
	if arcs[0].From != TransRise || arcs[0].To != TransFall {
		t.Fatalf("first arc = %+v, want rise->fall", arcs[0])
	}
	if arcs[1].From != TransFall || arcs[1].To != TransRise {
		t.Fatalf("second arc = %+v, want fall->rise", arcs[1])
	}
}

func TestDFlipFlopS3(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "DFF")
	ck := c.AddPort("CK", PortScalar)
	ck.direction = DirInput
	d := c.AddPort("D", PortScalar)
	d.direction = DirInput
	q := c.AddPort("Q", PortScalar)
	q.direction = DirOutput
	qBar := c.AddPort("Q_bar", PortScalar)
	qBar.direction = DirOutput

	seq := NewSequential(false)
	seq.SetClockedOn(funcexpr.MakePort(ck))
	seq.SetNextState(funcexpr.MakePort(d))
	seq.SetOutputs(q, qBar)
	c.AddSequential(seq)

	clkToQ := c.NewTimingArcSet(ck, q, nil, RoleRegClkToQ, nil)
	clkToQ.AddArc(TimingArc{From: TransRise, To: TransRise, Model: table.NewGateTableModel(scalarTable(0.15))})
	clkToQ.AddArc(TimingArc{From: TransRise, To: TransFall, Model: table.NewGateTableModel(scalarTable(0.15))})
	c.AddTimingArcSet(clkToQ)

	setup := c.NewTimingArcSet(ck, d, nil, RoleSetup, nil)
	setup.AddArc(TimingArc{From: TransRise, To: TransRise, Model: table.NewCheckTableModel(scalarTable(0.05))})
	c.AddTimingArcSet(setup)

	ck.isRegClk = true
	ck.isCheckClk = true

	if got := len(c.TimingArcSets()); got != 2 {
		t.Fatalf("TimingArcSets() len = %d, want 2", got)
	}
	if ck2q := c.FindTimingArcSet(ck, q); len(ck2q) != 1 || ck2q[0].Role() != RoleRegClkToQ {
		t.Fatalf("FindTimingArcSet(CK,Q) = %+v, want one reg_clk_to_q set", ck2q)
	}
	if ck2d := c.FindTimingArcSet(ck, d); len(ck2d) != 1 || ck2d[0].Role() != RoleSetup {
		t.Fatalf("FindTimingArcSet(CK,D) = %+v, want one setup set", ck2d)
	}
	if !ck.isRegClk || !ck.isCheckClk {
		t.Fatalf("CK port should have is_reg_clk and is_check_clk set")
	}
	if !c.CheckIndexInvariant() {
		t.Fatalf("arc-set index invariant violated")
	}
}

func TestBusFunctionExpansionS4(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "BUSBUF")
	a, err := c.AddBusPort("A", 3, 0)
	if err != nil {
		t.Fatalf("AddBusPort(A): %v", err)
	}
	a.SetDirection(DirInput)
	y, err := c.AddBusPort("Y", 3, 0)
	if err != nil {
		t.Fatalf("AddBusPort(Y): %v", err)
	}
	y.SetDirection(DirOutput)
	y.SetFunction(funcexpr.MakePort(a))

	for _, bit := range a.Bits() {
		if bit.Direction() != DirInput {
			t.Fatalf("A bit %s direction = %v, want DirInput (SetDirection on the bus should propagate)", bit.Name(), bit.Direction())
		}
	}
	for _, bit := range y.Bits() {
		if bit.Direction() != DirOutput {
			t.Fatalf("Y bit %s direction = %v, want DirOutput (SetDirection on the bus should propagate)", bit.Name(), bit.Direction())
		}
	}

	if got := len(a.Bits()); got != 4 {
		t.Fatalf("A has %d bits, want 4", got)
	}
	if got := a.Bit(2); got == nil || got.Name() != "A[2]" {
		t.Fatalf("A.Bit(2) = %v, want A[2]", got)
	}

	for i := 0; i < 4; i++ {
		sub := funcexpr.BitSubExpr(y.Function(), i)
		got, ok := sub.Port().(*Port)
		if !ok {
			t.Fatalf("bit %d substitution did not yield a *Port", i)
		}
		if got != a.bits[i] {
			t.Fatalf("bit %d substitution = %s, want %s", i, got.Name(), a.bits[i].Name())
		}
	}
}

func TestDuplicateArcSetDedupS6(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "BUF")
	a := c.AddPort("A", PortScalar)
	y := c.AddPort("Y", PortScalar)

	first := c.NewTimingArcSet(a, y, nil, RoleCombinational, nil)
	first.AddArc(TimingArc{From: TransRise, To: TransRise, Model: table.NewGateTableModel(scalarTable(0.1))})
	c.AddTimingArcSet(first)

	second := c.NewTimingArcSet(a, y, nil, RoleCombinational, nil)
	second.AddArc(TimingArc{From: TransRise, To: TransRise, Model: table.NewGateTableModel(scalarTable(0.2))})
	c.AddTimingArcSet(second)

	if got := len(c.TimingArcSets()); got != 1 {
		t.Fatalf("TimingArcSets() len = %d, want 1 after dedup", got)
	}
	if c.TimingArcSets()[0] != second {
		t.Fatalf("dedup kept the earlier definition, want the later one to win")
	}
	if !c.CheckIndexInvariant() {
		t.Fatalf("arc-set index invariant violated after dedup")
	}
}

func TestFindPortAndGlob(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "C")
	c.AddPort("CLK", PortScalar)
	c.AddPort("CLKB", PortScalar)
	c.AddPort("D", PortScalar)

	if c.FindPort("D") == nil {
		t.Fatalf("FindPort(D) = nil")
	}
	if got := len(c.FindLibertyPortsMatching("CLK*")); got != 2 {
		t.Fatalf("FindLibertyPortsMatching(CLK*) = %d matches, want 2", got)
	}
}
