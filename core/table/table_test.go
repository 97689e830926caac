package table

import "testing"

func TestLookup1DInRangeAndClampedExtrapolation(t *testing.T) {
	axis, err := NewAxis(InputNetTransition, []float64{0, 1, 2})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	tbl, err := NewTable("delay", []Axis{axis}, []float64{10, 20, 30})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	if got := tbl.Lookup(0.5); got != 15 {
		t.Fatalf("Lookup(0.5) = %v, want 15", got)
	}
	if got := tbl.Lookup(5); got != 30 {
		t.Fatalf("Lookup(5) = %v, want 30 (clamped extrapolation)", got)
	}
	if got := tbl.Lookup(-5); got != 10 {
		t.Fatalf("Lookup(-5) = %v, want 10 (clamped extrapolation)", got)
	}
}

func TestLookup2DSeparableExactness(t *testing.T) {
	xAxis, _ := NewAxis(InputNetTransition, []float64{0, 1, 2})
	yAxis, _ := NewAxis(TotalOutputNetCapacitance, []float64{0, 1, 2})
	values := make([]float64, 0, 9)
	for _, x := range xAxis.Values {
		for _, y := range yAxis.Values {
			values = append(values, x+y) // separable f(x,y) = x+y
		}
	}
	tbl, err := NewTable("separable", []Axis{xAxis, yAxis}, values)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	for _, x := range []float64{0, 0.5, 1, 1.5, 2} {
		for _, y := range []float64{0, 0.5, 1, 1.5, 2} {
			want := x + y
			if got := tbl.Lookup(x, y); got != want {
				t.Fatalf("Lookup(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLookup3D(t *testing.T) {
	a0, _ := NewAxis(InputNetTransition, []float64{0, 1})
	a1, _ := NewAxis(TotalOutputNetCapacitance, []float64{0, 1})
	a2, _ := NewAxis(Time, []float64{0, 1})
	values := []float64{0, 1, 1, 2, 1, 2, 2, 3} // f(x,y,z) = x+y+z
	tbl, err := NewTable("cube", []Axis{a0, a1, a2}, values)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if got := tbl.Lookup(0.5, 0.5, 0.5); got != 1.5 {
		t.Fatalf("Lookup(0.5,0.5,0.5) = %v, want 1.5", got)
	}
}

func TestNewTableRejectsMismatchedValueCount(t *testing.T) {
	axis, _ := NewAxis(InputNetTransition, []float64{0, 1, 2})
	if _, err := NewTable("bad", []Axis{axis}, []float64{1, 2}); err == nil {
		t.Fatalf("NewTable accepted a values slice of the wrong length")
	}
}

func TestNewAxisRejectsNonMonotonic(t *testing.T) {
	if _, err := NewAxis(Time, []float64{0, 2, 1}); err == nil {
		t.Fatalf("NewAxis accepted a non-increasing axis")
	}
	if _, err := NewAxis(Time, nil); err == nil {
		t.Fatalf("NewAxis accepted an empty axis")
	}
}

func TestScaleFactorsApply(t *testing.T) {
	k := ScaleFactors{Process: 0.1, Voltage: 0.2, Temperature: -0.05}
	pvt := PVT{Process: 1, Voltage: 1, Temperature: 1}
	got := k.Apply(100, pvt)
	// float64 variables, so want is rounded after each product as Apply
	// is; a constant expression would be evaluated exactly instead.
	process, voltage, temperature := 1.1, 1.2, 0.95
	want := 100.0 * process * voltage * temperature
	if got != want {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

type fakeScaleSource struct {
	factors map[string]ScaleFactors
}

func (f fakeScaleSource) ScaleFactors(valueType string) (ScaleFactors, bool) {
	k, ok := f.factors[valueType]
	return k, ok
}

func TestResolveScaleFactorsFallsBackThroughSources(t *testing.T) {
	cellLevel := fakeScaleSource{factors: map[string]ScaleFactors{}}
	libLevel := fakeScaleSource{factors: map[string]ScaleFactors{"cell_rise": {Process: 0.5}}}

	got := ResolveScaleFactors("cell_rise", cellLevel, libLevel)
	if got.Process != 0.5 {
		t.Fatalf("ResolveScaleFactors did not fall back to the library default: %+v", got)
	}

	got = ResolveScaleFactors("cell_fall", cellLevel, libLevel)
	if got != (ScaleFactors{}) {
		t.Fatalf("ResolveScaleFactors should default to unity when no source defines the value type: %+v", got)
	}
}

func TestGateTableModelValue(t *testing.T) {
	slewAxis, _ := NewAxis(InputNetTransition, []float64{0, 1})
	capAxis, _ := NewAxis(TotalOutputNetCapacitance, []float64{0, 1})
	tbl, _ := NewTable("cell_rise", []Axis{slewAxis, capAxis}, []float64{1, 2, 3, 4})
	m := NewGateTableModel(tbl)

	got := m.Value(0.5, 0.5, ScaleFactors{}, PVT{})
	if got != 2.5 {
		t.Fatalf("Value(0.5,0.5) = %v, want 2.5", got)
	}
}

func TestLinearModelValue(t *testing.T) {
	m := NewLinearModel(LinearCoeffs{Intercept: 1, SlewCoeff: 2, LoadCoeff: 3})
	got := m.Value(1, 1, ScaleFactors{}, PVT{})
	if got != 6 {
		t.Fatalf("Value(1,1) = %v, want 6", got)
	}
}

func TestWaveformModelValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Value on an OutputCurrentModel should panic")
		}
	}()
	m := NewOutputCurrentModel(map[float64]Waveform{})
	m.Value(0, 0, ScaleFactors{}, PVT{})
}
