package funcexpr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testPort is a minimal scalar PortRef for unit tests.
type testPort struct {
	name string
	dir  int
}

func (p *testPort) Name() string           { return p.name }
func (p *testPort) DirectionIndex() int    { return p.dir }
func (p *testPort) Width() int             { return 1 }
func (p *testPort) BitPort(i int) PortRef  { return p }

func TestEquivOfCopy(t *testing.T) {
	a := &testPort{name: "A"}
	b := &testPort{name: "B"}
	exprs := []*Expr{
		MakePort(a),
		MakeNot(MakePort(a)),
		MakeAnd(MakePort(a), MakePort(b)),
		MakeOr(MakeNot(MakePort(a)), MakePort(b)),
		MakeXor(MakePort(a), MakePort(b)),
		MakeZero(),
		MakeOne(),
	}
	for _, e := range exprs {
		if !Equiv(e, Copy(e)) {
			t.Fatalf("equiv(e, copy(e)) failed for %v", e.op)
		}
	}
}

func TestEquivOfCopyCmp(t *testing.T) {
	a := &testPort{name: "A"}
	b := &testPort{name: "B"}
	e := MakeXor(MakeNot(MakePort(a)), MakePort(b))

	if diff := cmp.Diff(e, Copy(e)); diff != "" {
		t.Fatalf("Copy(e) differs from e under cmp.Diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(e, MakeAnd(MakePort(a), MakePort(b))); diff == "" {
		t.Fatalf("distinct expression trees compared equal under cmp.Diff")
	}
}

func TestInvertInvolution(t *testing.T) {
	a := &testPort{name: "A"}
	e := MakeAnd(MakePort(a), MakeNot(MakePort(a)))
	twice := Invert(Invert(e))
	if !Equiv(e, twice) {
		t.Fatalf("invert(invert(e)) != e")
	}
}

func TestBitSubExprScalarClone(t *testing.T) {
	a := &testPort{name: "A"}
	e := MakeAnd(MakePort(a), MakeNot(MakePort(a)))
	sub := BitSubExpr(e, 2)
	if !Equiv(e, sub) {
		t.Fatalf("bitSubExpr of a scalar-only expr should be a clone")
	}
	if sub == e {
		t.Fatalf("bitSubExpr should allocate a new tree, not alias e")
	}
}

type busBitPort struct {
	bus  string
	bit  int
}

func (p *busBitPort) Name() string          { return p.bus }
func (p *busBitPort) DirectionIndex() int   { return 0 }
func (p *busBitPort) Width() int            { return 4 }
func (p *busBitPort) BitPort(i int) PortRef { return &busBitPort{bus: p.bus, bit: i} }

func TestBitSubExprBusSubstitution(t *testing.T) {
	bus := &busBitPort{bus: "A", bit: -1}
	e := MakePort(bus)
	sub := BitSubExpr(e, 2)
	got, ok := sub.Port().(*busBitPort)
	if !ok || got.bit != 2 {
		t.Fatalf("bitSubExpr(e, 2) = %+v, want bit 2", sub.Port())
	}
}

func TestPortTimingSense(t *testing.T) {
	p := &testPort{name: "P"}
	q := &testPort{name: "Q"}

	if got := PortTimingSense(MakePort(p), p); got != SensePositiveUnate {
		t.Fatalf("portTimingSense(port(p), p) = %v, want positive_unate", got)
	}
	if got := PortTimingSense(MakeNot(MakePort(p)), p); got != SenseNegativeUnate {
		t.Fatalf("portTimingSense(not(port(p)), p) = %v, want negative_unate", got)
	}
	if got := PortTimingSense(MakeXor(MakePort(p), MakePort(q)), p); got != SenseNonUnate {
		t.Fatalf("portTimingSense(xor(port(p),port(q)), p) = %v, want non_unate", got)
	}
	if got := PortTimingSense(MakePort(q), p); got != SenseNone {
		t.Fatalf("portTimingSense(port(q), p) = %v, want none", got)
	}

	contradictory := MakeAnd(MakePort(p), MakeNot(MakePort(p)))
	if got := PortTimingSense(contradictory, p); got != SenseNonUnate {
		t.Fatalf("portTimingSense(and(p, !p), p) = %v, want non_unate", got)
	}
}

func TestHasPortAndPorts(t *testing.T) {
	p := &testPort{name: "P"}
	q := &testPort{name: "Q"}
	e := MakeAnd(MakePort(p), MakeOr(MakePort(q), MakeNot(MakePort(p))))

	if !HasPort(e, p) || !HasPort(e, q) {
		t.Fatalf("HasPort missed a referenced port")
	}
	r := &testPort{name: "R"}
	if HasPort(e, r) {
		t.Fatalf("HasPort found an unreferenced port")
	}
	if got := len(Ports(e)); got != 2 {
		t.Fatalf("Ports(e) returned %d distinct ports, want 2", got)
	}
}

func TestLessIsStrictOrder(t *testing.T) {
	a := &testPort{name: "A"}
	b := &testPort{name: "B"}
	pa := MakePort(a)
	pb := MakePort(b)

	if Less(pa, pa) {
		t.Fatalf("Less(x, x) must be false")
	}
	if !Less(pa, pb) || Less(pb, pa) {
		t.Fatalf("Less(port(A), port(B)) should order by name")
	}
	if !Less(pa, MakeNot(pa)) {
		t.Fatalf("Less should order lower tags (port) before higher (not)")
	}
}

func TestHashStableAndDiscriminating(t *testing.T) {
	a := &testPort{name: "A"}
	b := &testPort{name: "B"}
	e1 := MakeAnd(MakePort(a), MakePort(b))
	e2 := MakeAnd(MakePort(a), MakePort(b))
	e3 := MakeOr(MakePort(a), MakePort(b))

	if Hash(e1) != Hash(e2) {
		t.Fatalf("structurally identical expressions hashed differently")
	}
	if Hash(e1) == Hash(e3) {
		t.Fatalf("AND and OR of the same ports hashed identically")
	}
}

func TestCheckSizeMismatch(t *testing.T) {
	a := &testPort{name: "A"} // width 1
	e := MakePort(a)
	if CheckSize(e, 1) {
		t.Fatalf("CheckSize reported a mismatch for a matching width")
	}
	if !CheckSize(e, 4) {
		t.Fatalf("CheckSize missed a width mismatch")
	}
}
