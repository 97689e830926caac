package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/liberty"
	"github.com/sta-core/sta/core/table"
)

func scalarTable(value float64) *table.Table {
	t, err := table.NewTable("t", nil, []float64{value})
	if err != nil {
		panic(err)
	}
	return t
}

func makeBuf(lib *liberty.Library, name string, riseRes float64) *liberty.Cell {
	c := liberty.NewCell(lib, name)
	a := c.AddPort("A", liberty.PortScalar)
	a.SetDirection(liberty.DirInput)
	y := c.AddPort("Y", liberty.PortScalar)
	y.SetDirection(liberty.DirOutput)
	y.SetFunction(funcexpr.MakePort(a))
	y.SetDriveResistance(liberty.RiseFallMinMax{RiseMax: riseRes, FallMax: riseRes})

	s := c.NewTimingArcSet(a, y, nil, liberty.RoleCombinational, nil)
	s.AddArc(liberty.TimingArc{From: liberty.TransRise, To: liberty.TransRise, Model: table.NewGateTableModel(scalarTable(0.1))})
	s.AddArc(liberty.TimingArc{From: liberty.TransFall, To: liberty.TransFall, Model: table.NewGateTableModel(scalarTable(0.1))})
	c.AddTimingArcSet(s)
	return c
}

func makeInv(lib *liberty.Library, name string) *liberty.Cell {
	c := liberty.NewCell(lib, name)
	a := c.AddPort("A", liberty.PortScalar)
	a.SetDirection(liberty.DirInput)
	y := c.AddPort("Y", liberty.PortScalar)
	y.SetDirection(liberty.DirOutput)
	y.SetFunction(funcexpr.MakeNot(funcexpr.MakePort(a)))

	s := c.NewTimingArcSet(a, y, nil, liberty.RoleCombinational, nil)
	s.AddArc(liberty.TimingArc{From: liberty.TransRise, To: liberty.TransFall, Model: table.NewGateTableModel(scalarTable(0.1))})
	s.AddArc(liberty.TimingArc{From: liberty.TransFall, To: liberty.TransRise, Model: table.NewGateTableModel(scalarTable(0.1))})
	c.AddTimingArcSet(s)
	return c
}

func TestEquivCellsGroupsIdenticalBuffers(t *testing.T) {
	lib := liberty.NewLibrary("lib")
	buf1 := makeBuf(lib, "BUF1", 100)
	buf2x := makeBuf(lib, "BUF2X", 50) // stronger drive, smaller resistance
	inv := makeInv(lib, "INV1")

	classes := EquivCells([]*liberty.Cell{buf1, buf2x, inv})
	require.Lenf(t, classes, 2, "EquivCells() classes = %v", classes)

	var bufClass []*liberty.Cell
	for _, class := range classes {
		if len(class) == 2 {
			bufClass = class
		}
	}
	require.NotNilf(t, bufClass, "no 2-member class found among %v", classes)
	require.Equal(t, "BUF1", bufClass[0].Name(), "bufClass[0] should be the weaker-drive cell (larger resistance sorts first)")
}

func TestEquivCellsSeparatesDifferentFunctions(t *testing.T) {
	lib := liberty.NewLibrary("lib")
	buf := makeBuf(lib, "BUF", 100)
	inv := makeInv(lib, "INV")

	classes := EquivCells([]*liberty.Cell{buf, inv})
	require.Lenf(t, classes, 2, "buffer and inverter should not be equivalent, got %v", classes)
}
