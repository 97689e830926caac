/*
 * STA - Internal and leakage power entries (supplemented feature, see
 *       SPEC_FULL.md DOMAIN STACK / SUPPLEMENTED FEATURES).
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

import (
	"github.com/sta-core/sta/core/funcexpr"
	"github.com/sta-core/sta/core/table"
)

// InternalPower is one port's internal-power entry: a `when`
// condition, the related input pins it is keyed by, and a table
// indexed by input-transition giving switching energy.
type InternalPower struct {
	Port         *Port
	When         *funcexpr.Expr
	RelatedPins  []*Port
	Table        *table.Table
}

// LeakagePower is one port's leakage-power entry: a `when` condition
// and a flat power value (no table -- leakage does not depend on
// transition or load).
type LeakagePower struct {
	Port  *Port
	When  *funcexpr.Expr
	Value float64
}
