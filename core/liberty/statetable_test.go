package liberty

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStatetableRowEquivMatchesCmp(t *testing.T) {
	a := StatetableRow{
		Inputs:  []InputValue{InHigh, InDontCare},
		Current: []InternalValue{IntLow},
		Next:    []InternalValue{IntHigh},
	}
	b := StatetableRow{
		Inputs:  []InputValue{InHigh, InDontCare},
		Current: []InternalValue{IntLow},
		Next:    []InternalValue{IntHigh},
	}

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("identical rows compare unequal under cmp.Diff (-a +b):\n%s", diff)
	}
	if !rowEquiv(a, b) {
		t.Fatalf("rowEquiv disagrees with cmp.Diff on identical rows")
	}

	c := StatetableRow{
		Inputs:  []InputValue{InHigh, InLow},
		Current: []InternalValue{IntLow},
		Next:    []InternalValue{IntHigh},
	}
	if diff := cmp.Diff(a, c); diff == "" {
		t.Fatalf("differing rows compared equal under cmp.Diff")
	}
	if rowEquiv(a, c) {
		t.Fatalf("rowEquiv() true for rows differing in Inputs[1]")
	}
}

func TestStatetableEquivRows(t *testing.T) {
	lib := NewLibrary("lib")
	cell := NewCell(lib, "FF")
	clk := cell.AddPort("CLK", PortScalar)
	q := cell.AddPort("Q", PortScalar)

	rows := []StatetableRow{
		{Inputs: []InputValue{InRisingEdge}, Current: []InternalValue{IntLow}, Next: []InternalValue{IntHigh}},
		{Inputs: []InputValue{InLow}, Current: []InternalValue{IntHigh}, Next: []InternalValue{IntNoChange}},
	}

	st1 := &Statetable{InputPorts: []*Port{clk}, InternalPorts: []*Port{q}, Rows: rows}
	st2 := &Statetable{
		InputPorts:    []*Port{clk},
		InternalPorts: []*Port{q},
		Rows: []StatetableRow{
			{Inputs: []InputValue{InRisingEdge}, Current: []InternalValue{IntLow}, Next: []InternalValue{IntHigh}},
			{Inputs: []InputValue{InLow}, Current: []InternalValue{IntHigh}, Next: []InternalValue{IntNoChange}},
		},
	}

	if diff := cmp.Diff(st1.Rows, st2.Rows); diff != "" {
		t.Fatalf("equivalent statetables' rows differ under cmp.Diff:\n%s", diff)
	}
	if !st1.Equiv(st2) {
		t.Fatalf("Statetable.Equiv() false for row-identical statetables")
	}
}
