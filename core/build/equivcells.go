/*
 * STA - EquivCells: groups cells that behave identically so a
 *       downstream optimizer can swap between them freely.
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
	"sort"

	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/liberty"
)

// EquivCells partitions cells into equivalence classes: same port
// count/direction/function shape, same sequentials and statetable,
// same timing arc sets (spec 4.D.1/4.D.2). Cells are grouped first by
// liberty.CellHash to avoid an all-pairs comparison, then the hash
// collisions are split by the full equivalence test. Each class is
// returned sorted by descending output drive resistance, so the
// weakest-drive cell comes first; cells with no known drive
// resistance sort after those with one.
func EquivCells(cells []*liberty.Cell) [][]*liberty.Cell {
	byHash := map[uint64][]*liberty.Cell{}
	var hashOrder []uint64
	for _, c := range cells {
		h := liberty.CellHash(c)
		if _, ok := byHash[h]; !ok {
			hashOrder = append(hashOrder, h)
		}
		byHash[h] = append(byHash[h], c)
	}

	var classes [][]*liberty.Cell
	for _, h := range hashOrder {
		bucket := byHash[h]
		classes = append(classes, splitByEquivalence(bucket)...)
	}

	for _, class := range classes {
		sort.SliceStable(class, func(i, j int) bool {
			ri, oki := class[i].DriveResistance()
			rj, okj := class[j].DriveResistance()
			if oki != okj {
				return oki // a cell with a known drive resistance sorts before one without
			}
			return ri > rj
		})
	}
	return classes
}

// splitByEquivalence further partitions a hash bucket -- cells that
// collided under CellHash but are not actually equivalent -- into one
// group per distinct behavior.
func splitByEquivalence(bucket []*liberty.Cell) [][]*liberty.Cell {
	var classes [][]*liberty.Cell
	for _, c := range bucket {
		placed := false
		for i, class := range classes {
			if cellsEquiv(class[0], c) {
				classes[i] = append(classes[i], c)
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, []*liberty.Cell{c})
		}
	}
	return classes
}

// cellsEquiv is the full equivalence test (spec 4.D.2): ports match
// one-to-one by name, direction, width and function; sequentials
// match element-wise; statetables match; and every from/to/role pair
// of timing arc sets carries equivalent arcs.
func cellsEquiv(a, b *liberty.Cell) bool {
	if len(a.Ports()) != len(b.Ports()) {
		return false
	}
	for i, pa := range a.Ports() {
		pb := b.Ports()[i]
		if pa.Name() != pb.Name() || pa.Direction() != pb.Direction() || pa.Width() != pb.Width() {
			return false
		}
		if !funcsEquiv(pa.Function(), pb.Function()) {
			return false
		}
		if !funcsEquiv(pa.TristateEnable(), pb.TristateEnable()) {
			return false
		}
	}

	if len(a.Sequentials()) != len(b.Sequentials()) {
		return false
	}
	for i, sa := range a.Sequentials() {
		if !sa.Equiv(b.Sequentials()[i]) {
			return false
		}
	}

	if !statetablesEquiv(a.Statetable(), b.Statetable()) {
		return false
	}

	if len(a.TimingArcSets()) != len(b.TimingArcSets()) {
		return false
	}
	used := make([]bool, len(b.TimingArcSets()))
	for _, sa := range a.TimingArcSets() {
		found := false
		for j, sb := range b.TimingArcSets() {
			if used[j] {
				continue
			}
			if arcSetShapeEquiv(a, b, sa, sb) && sa.Equiv(sb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// funcsEquiv is funcexpr.Equiv with port leaves compared by name and
// direction rather than by pointer, since a and b belong to different cells.
func funcsEquiv(a, b *funcexpr.Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op() != b.Op() {
		return false
	}
	if a.Op() == funcexpr.OpPort {
		return a.Port().Name() == b.Port().Name() && a.Port().DirectionIndex() == b.Port().DirectionIndex()
	}
	return funcsEquiv(a.Left(), b.Left()) && funcsEquiv(a.Right(), b.Right())
}

// arcSetShapeEquiv compares the from/to/role identity of two arc
// sets belonging to cells a and b respectively, by port position
// within each cell rather than by pointer (the two cells' ports are
// distinct objects even when equivalent).
func arcSetShapeEquiv(a, b *liberty.Cell, sa, sb *liberty.TimingArcSet) bool {
	if sa.Role() != sb.Role() {
		return false
	}
	if !samePortPosition(a, b, sa.From(), sb.From()) {
		return false
	}
	return samePortPosition(a, b, sa.To(), sb.To())
}

func samePortPosition(a, b *liberty.Cell, pa, pb *liberty.Port) bool {
	if pa == nil || pb == nil {
		return pa == nil && pb == nil
	}
	return portIndex(a, pa) == portIndex(b, pb) && portIndex(a, pa) >= 0
}

func portIndex(c *liberty.Cell, p *liberty.Port) int {
	for i, cp := range c.Ports() {
		if cp == p {
			return i
		}
	}
	return -1
}

func statetablesEquiv(a, b *liberty.Statetable) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equiv(b)
}
