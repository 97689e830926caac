/*
 * STA - Liberty cell model sentinel errors.
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

import "errors"

// Sentinel errors for recoverable, parse-like and builder-semantic
// conditions (spec §7). Structural invariant violations never surface
// this way -- they go through logging.Critical instead.
var (
	ErrNoPorts           = errors.New("cell has no ports")
	ErrMissingThreshold  = errors.New("cell is missing one or more threshold percentages")
	ErrUnknownUnit       = errors.New("unknown unit suffix")
	ErrBusWidthMismatch  = errors.New("related_pin bus width does not match to-port bus width")
	ErrUnresolvedRef     = errors.New("reference to a name that does not exist")
	ErrNonMonotonicAxis  = errors.New("table axis values are not strictly increasing")
	ErrUnsupportedAxes   = errors.New("unsupported table axis combination")
	ErrDuplicateTimingGroup = errors.New("duplicate timing group")
)
