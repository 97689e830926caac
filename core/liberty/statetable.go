/*
 * STA - Statetable (explicit FSM) cell model.
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

package liberty

// InputValue is one cell of a statetable row's input-value vector.
type InputValue int

const (
	InLow InputValue = iota
	InHigh
	InDontCare // "-"
	InLowToHigh
	InHighToLow
	InRisingEdge  // R
	InFallingEdge // F
	InNotRising   // ~R
	InNotFalling  // ~F
)

// InternalValue is one cell of a statetable row's current/next
// internal-value vector.
type InternalValue int

const (
	IntLow InternalValue = iota
	IntHigh
	IntDontCare // "-"
	IntLowToHigh
	IntHighToLow
	IntUnknown  // X
	IntNoChange // N
)

// StatetableRow is one row of an explicit FSM table: input values,
// the current internal-value vector, and the resulting next
// internal-value vector.
type StatetableRow struct {
	Inputs   []InputValue
	Current  []InternalValue
	Next     []InternalValue
}

// Statetable names the input and internal ports a cell's explicit FSM
// is defined over, plus its ordered rows.
type Statetable struct {
	InputPorts    []*Port
	InternalPorts []*Port
	Rows          []StatetableRow
}

// Equiv reports structural equivalence (spec 4.D.2: "statetables
// match (ordered port lists, ordered rows, ordered values)").
func (st *Statetable) Equiv(o *Statetable) bool {
	if st == nil || o == nil {
		return st == o
	}
	if len(st.InputPorts) != len(o.InputPorts) || len(st.InternalPorts) != len(o.InternalPorts) {
		return false
	}
	for i := range st.InputPorts {
		if st.InputPorts[i].Name() != o.InputPorts[i].Name() {
			return false
		}
	}
	for i := range st.InternalPorts {
		if st.InternalPorts[i].Name() != o.InternalPorts[i].Name() {
			return false
		}
	}
	if len(st.Rows) != len(o.Rows) {
		return false
	}
	for i := range st.Rows {
		if !rowEquiv(st.Rows[i], o.Rows[i]) {
			return false
		}
	}
	return true
}

func rowEquiv(a, b StatetableRow) bool {
	if len(a.Inputs) != len(b.Inputs) || len(a.Current) != len(b.Current) || len(a.Next) != len(b.Next) {
		return false
	}
	for i := range a.Inputs {
		if a.Inputs[i] != b.Inputs[i] {
			return false
		}
	}
	for i := range a.Current {
		if a.Current[i] != b.Current[i] {
			return false
		}
	}
	for i := range a.Next {
		if a.Next[i] != b.Next[i] {
			return false
		}
	}
	return true
}
