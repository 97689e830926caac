/*
 * STA - ClkInfo: an immutable snapshot of a clock arrival's
 *       identifying attributes, shared by every path tag that arrives
 *       via the same clock edge, latency, and uncertainty.
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

package graph

import "github.com/sta-core/sta/core/rf"

// ClkInfo is deliberately a value type, not a pointer into a shared
// arena: the original keeps a singleton per distinct (clock, edge,
// generated-clock-path, latency, uncertainty) tuple and reference-
// counts it, but a language-level value with by-value copy semantics
// gets the same sharing-by-equality property for free from Go's
// comparable structs, at the cost of recomputing rather than
// reference-counting. CRPRClkPath is a PathRef rather than a pointer
// so ClkInfo keeps that value-type property even when it carries a
// clock path.
type ClkInfo struct {
	ClockName string
	Edge      rf.RiseFall

	Latency     float64
	Uncertainty float64
	HasUncertainty bool

	IsPropagated bool
	IsGenerated  bool

	CRPRClkPath PathRef
}

// IsDefault reports whether info carries no distinguishing clock
// attributes beyond its name and edge (the common case for an
// unpropagated, non-generated ideal clock).
func (c ClkInfo) IsDefault() bool {
	return c.Latency == 0 && !c.HasUncertainty && !c.IsPropagated && !c.IsGenerated && c.CRPRClkPath.IsNull()
}

// Equal reports whether two ClkInfo values describe the same clock
// arrival. Plain == would work since every field is comparable, but
// an exported method keeps call sites from depending on that
// incidental fact.
func (c ClkInfo) Equal(o ClkInfo) bool { return c == o }
