package liberty

import (
	"testing"

	"github.com/sta-core/sta/core/funcexpr"
)

func TestTransitionOppositeAndRiseFall(t *testing.T) {
	if got := TransRise.Opposite(); got != TransFall {
		t.Fatalf("TransRise.Opposite() = %v, want TransFall", got)
	}
	if got := TransRiseZ.Opposite(); got != TransFallZ {
		t.Fatalf("TransRiseZ.Opposite() = %v, want TransFallZ", got)
	}
	if got := TransHigh.Opposite(); got != TransHigh {
		t.Fatalf("TransHigh.Opposite() = %v, want itself", got)
	}

	if rf, ok := TransRise.AsRiseFall(); !ok || rf.String() != "rise" {
		t.Fatalf("TransRise.AsRiseFall() = (%v, %v), want (rise, true)", rf, ok)
	}
	if _, ok := TransHigh.AsRiseFall(); ok {
		t.Fatalf("TransHigh.AsRiseFall() ok = true, want false")
	}
}

func TestSequentialEquiv(t *testing.T) {
	lib := NewLibrary("lib")
	c := NewCell(lib, "DFF")
	ck := c.AddPort("CK", PortScalar)
	d := c.AddPort("D", PortScalar)

	a := NewSequential(false)
	a.SetClockedOn(funcexpr.MakePort(ck))
	a.SetNextState(funcexpr.MakePort(d))

	b := NewSequential(false)
	b.SetClockedOn(funcexpr.MakePort(ck))
	b.SetNextState(funcexpr.MakePort(d))

	if !a.Equiv(b) {
		t.Fatalf("structurally identical sequentials compared unequal")
	}

	b.SetNextState(funcexpr.MakePort(ck))
	if a.Equiv(b) {
		t.Fatalf("sequentials with different next_state compared equal")
	}
}
