/*
 * STA - Register/latch cell model.
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

import "github.com/sta-core/sta/core/funcexpr"

// StateValue is a steady logic value (the value a Sequential's output
// and inverted-output settle to when both clear and preset are
// asserted).
type StateValue int

const (
	StateLow StateValue = iota
	StateHigh
	StateUnknown // X: genuinely indeterminate (both clear and preset have no stated precedence)
	StateNoChange
)

// Sequential is a register or latch cell model, told apart by IsLatch.
// For a register clockedOn holds the clock expression; for a latch it
// holds the enable expression.
type Sequential struct {
	clockedOn *funcexpr.Expr
	nextState *funcexpr.Expr // register: next_state; latch: data_in
	clear     *funcexpr.Expr
	preset    *funcexpr.Expr

	clearPresetOutput  StateValue
	clearPresetOutputB StateValue

	output     *Port // internal port Q
	outputBar  *Port // internal port Q_bar

	isLatch bool
}

func NewSequential(isLatch bool) *Sequential {
	return &Sequential{isLatch: isLatch}
}

func (s *Sequential) IsLatch() bool { return s.isLatch }

func (s *Sequential) ClockedOn() *funcexpr.Expr { return s.clockedOn }
func (s *Sequential) SetClockedOn(e *funcexpr.Expr) { s.clockedOn = e }

func (s *Sequential) NextState() *funcexpr.Expr     { return s.nextState }
func (s *Sequential) SetNextState(e *funcexpr.Expr) { s.nextState = e }

func (s *Sequential) Clear() *funcexpr.Expr      { return s.clear }
func (s *Sequential) SetClear(e *funcexpr.Expr)  { s.clear = e }
func (s *Sequential) Preset() *funcexpr.Expr      { return s.preset }
func (s *Sequential) SetPreset(e *funcexpr.Expr)  { s.preset = e }

func (s *Sequential) SetClearPresetOutputs(q, qBar StateValue) {
	s.clearPresetOutput, s.clearPresetOutputB = q, qBar
}
func (s *Sequential) ClearPresetOutputs() (q, qBar StateValue) {
	return s.clearPresetOutput, s.clearPresetOutputB
}

func (s *Sequential) Output() *Port       { return s.output }
func (s *Sequential) OutputBar() *Port    { return s.outputBar }
func (s *Sequential) SetOutputs(q, qBar *Port) {
	s.output, s.outputBar = q, qBar
}

// Equiv reports structural equivalence between two Sequentials, used
// by EquivCells (spec 4.D.2: "sequentials match (both ordered lists
// element-wise)").
func (s *Sequential) Equiv(o *Sequential) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.isLatch == o.isLatch &&
		funcexpr.Equiv(s.clockedOn, o.clockedOn) &&
		funcexpr.Equiv(s.nextState, o.nextState) &&
		funcexpr.Equiv(s.clear, o.clear) &&
		funcexpr.Equiv(s.preset, o.preset) &&
		s.clearPresetOutput == o.clearPresetOutput &&
		s.clearPresetOutputB == o.clearPresetOutputB
}
