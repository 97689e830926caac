/*
 * STA - Cell hashing for equivalent-cell discovery (spec 4.D.1).
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
	"github.com/cespare/xxhash/v2"
	"github.com/sta-core/sta/core/funcexpr"
)

// PortHash is a single port's contribution to a cell's composite hash
// (spec 4.D.1: "port hash sums per-port (name-hash x 3 + direction
// index x 5) plus hashFuncExpr(function) x 3 + hashFuncExpr(tristate_enable) x 5").
func PortHash(p *Port) uint64 {
	h := xxhash.Sum64String(p.name)*3 + uint64(p.direction.Index())*5
	h += funcexpr.Hash(p.function)*3 + funcexpr.Hash(p.tristateEnable)*5
	return h
}

// CellHash is the composite hash EquivCells groups cells by before
// testing full equivalence within a collision group (spec 4.D.1:
// "Hash each non-dont-use cell by a composite of (port hash XOR
// PG-port hash XOR sequential/statetable hash)").
func CellHash(c *Cell) uint64 {
	var portHash uint64
	for _, p := range c.ports {
		portHash += PortHash(p)
	}
	var pgHash uint64
	for _, p := range c.pgPorts {
		pgHash += PortHash(p)
	}
	seqHash := sequentialsHash(c.sequentials)
	if c.statetable != nil {
		seqHash ^= statetableHash(c.statetable)
	}
	return portHash ^ pgHash ^ seqHash
}

func sequentialsHash(seqs []*Sequential) uint64 {
	var h uint64
	for _, s := range seqs {
		h = h*31 + funcexpr.Hash(s.clockedOn)
		h = h*31 + funcexpr.Hash(s.nextState)
		h = h*31 + funcexpr.Hash(s.clear)
		h = h*31 + funcexpr.Hash(s.preset)
		h = h*31 + uint64(s.clearPresetOutput)
		h = h*31 + uint64(s.clearPresetOutputB)
	}
	return h
}

func statetableHash(st *Statetable) uint64 {
	var h uint64
	for _, p := range st.InputPorts {
		h = h*31 + xxhash.Sum64String(p.Name())
	}
	for _, p := range st.InternalPorts {
		h = h*31 + xxhash.Sum64String(p.Name())
	}
	h = h*31 + uint64(len(st.Rows))
	return h
}
