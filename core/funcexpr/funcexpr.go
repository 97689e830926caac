/*
 * STA - Boolean function algebra for liberty port functions.
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

// Package funcexpr is the boolean function algebra (spec component
// B): the AST a liberty port's `function` and `three_state_enable`
// attributes parse into, with equality, hashing, bit-slicing and
// timing-sense queries over it.
//
// Expr nodes reference ports through the PortRef interface rather
// than a concrete liberty.Port, so this package has no dependency on
// core/liberty; core/liberty depends on it instead.
package funcexpr

import "github.com/cespare/xxhash/v2"

// PortRef is the identity and shape a port must expose to appear in
// an expression. Two PortRef values are the same port iff they are
// `==` as Go values -- in practice both sides are the same
// *liberty.Port pointer, matching the original's pointer comparison.
type PortRef interface {
	Name() string
	DirectionIndex() int
	Width() int
	// BitPort returns the scalar port for bit offset i of a bus
	// port, or the port itself if it is not a bus.
	BitPort(i int) PortRef
}

// Op is the tag of an Expr node.
type Op int

const (
	OpPort Op = iota
	OpNot
	OpAnd
	OpOr
	OpXor
	OpOne
	OpZero
)

func (op Op) String() string {
	switch op {
	case OpPort:
		return "port"
	case OpNot:
		return "not"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpOne:
		return "one"
	case OpZero:
		return "zero"
	default:
		return "invalid"
	}
}

// Expr is a node of the boolean function AST: a port reference, a
// unary NOT, a binary AND/OR/XOR, or a 0/1 constant. Leaves have nil
// children; NOT has only Left.
type Expr struct {
	op          Op
	left, right *Expr
	port        PortRef
}

func MakePort(p PortRef) *Expr { return &Expr{op: OpPort, port: p} }
func MakeNot(e *Expr) *Expr    { return &Expr{op: OpNot, left: e} }
func MakeAnd(l, r *Expr) *Expr { return &Expr{op: OpAnd, left: l, right: r} }
func MakeOr(l, r *Expr) *Expr  { return &Expr{op: OpOr, left: l, right: r} }
func MakeXor(l, r *Expr) *Expr { return &Expr{op: OpXor, left: l, right: r} }
func MakeZero() *Expr          { return &Expr{op: OpZero} }
func MakeOne() *Expr           { return &Expr{op: OpOne} }

func (e *Expr) Op() Op       { return e.op }
func (e *Expr) Left() *Expr  { return e.left }
func (e *Expr) Right() *Expr { return e.right }

// Port returns the referenced port; valid only when Op() == OpPort.
func (e *Expr) Port() PortRef { return e.port }

// Equal makes *Expr comparable via go-cmp, which looks for an Equal
// method before reflecting into unexported fields.
func (e *Expr) Equal(o *Expr) bool { return Equiv(e, o) }

// Equiv is structural equality: tags match and children are
// recursively equivalent. AND/OR/XOR operands are compared in the
// order written -- commutativity is never canonicalized, matching
// the original.
func Equiv(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.op != b.op {
		return false
	}
	switch a.op {
	case OpPort:
		return a.port == b.port
	case OpOne, OpZero:
		return true
	case OpNot:
		return Equiv(a.left, b.left)
	default:
		return Equiv(a.left, b.left) && Equiv(a.right, b.right)
	}
}

// Less is a total order over expressions: lexicographic on (tag,
// left, right, port), used to give equivalent-cell discovery and
// duplicate-arc-set dedup a deterministic tie-break.
func Less(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if a.op != b.op {
		return a.op < b.op
	}
	switch a.op {
	case OpPort:
		return a.port.Name() < b.port.Name()
	case OpOne, OpZero:
		return false
	case OpNot:
		return Less(a.left, b.left)
	default:
		if !Equiv(a.left, b.left) {
			return Less(a.left, b.left)
		}
		return Less(a.right, b.right)
	}
}

// Copy returns a deep copy of e.
func Copy(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	return &Expr{op: e.op, left: Copy(e.left), right: Copy(e.right), port: e.port}
}

// Invert drops a leading NOT if present, else wraps e in one.
func Invert(e *Expr) *Expr {
	if e.op == OpNot {
		return e.left
	}
	return MakeNot(e)
}

// BitSubExpr produces the scalar expression for bit i of a bus
// function: every bus port reference is replaced by its bit-i
// scalar port. Applied to an expression with no bus ports it returns
// a clone (PortRef.BitPort is expected to be the identity for
// non-bus ports).
func BitSubExpr(e *Expr, bitOffset int) *Expr {
	if e == nil {
		return nil
	}
	switch e.op {
	case OpPort:
		return MakePort(e.port.BitPort(bitOffset))
	case OpOne, OpZero:
		return &Expr{op: e.op}
	case OpNot:
		return MakeNot(BitSubExpr(e.left, bitOffset))
	default:
		return &Expr{op: e.op, left: BitSubExpr(e.left, bitOffset), right: BitSubExpr(e.right, bitOffset)}
	}
}

// TimingSense is the polarity with which an expression propagates a
// given port: rise/rise and fall/fall (positive_unate), rise/fall and
// fall/rise (negative_unate), both (non_unate), neither (none), or
// undecidable (unknown).
type TimingSense int

const (
	SensePositiveUnate TimingSense = iota
	SenseNegativeUnate
	SenseNonUnate
	SenseNone
	SenseUnknown
)

func (s TimingSense) String() string {
	switch s {
	case SensePositiveUnate:
		return "positive_unate"
	case SenseNegativeUnate:
		return "negative_unate"
	case SenseNonUnate:
		return "non_unate"
	case SenseNone:
		return "none"
	default:
		return "unknown"
	}
}

func oppositeSense(s TimingSense) TimingSense {
	switch s {
	case SensePositiveUnate:
		return SenseNegativeUnate
	case SenseNegativeUnate:
		return SensePositiveUnate
	default:
		return s
	}
}

// combineSense merges the sense contributed by each operand of an
// AND/OR: same non-`none` senses agree, opposite senses (or either
// side non-unate) collapse to non_unate, and a `none` side defers to
// the other.
func combineSense(a, b TimingSense) TimingSense {
	if a == SenseNone {
		return b
	}
	if b == SenseNone {
		return a
	}
	if a == SenseUnknown || b == SenseUnknown {
		return SenseUnknown
	}
	if a == b {
		return a
	}
	return SenseNonUnate
}

// PortTimingSense walks e treating p as the variable: NOT flips
// sense, AND/OR preserve or merge operand senses, XOR of anything
// containing p is non-unate, and a subtree not referencing p
// contributes `none`.
func PortTimingSense(e *Expr, p PortRef) TimingSense {
	if e == nil {
		return SenseNone
	}
	switch e.op {
	case OpPort:
		if e.port == p {
			return SensePositiveUnate
		}
		return SenseNone
	case OpOne, OpZero:
		return SenseNone
	case OpNot:
		return oppositeSense(PortTimingSense(e.left, p))
	case OpXor:
		if HasPort(e, p) {
			return SenseNonUnate
		}
		return SenseNone
	default: // AND, OR
		return combineSense(PortTimingSense(e.left, p), PortTimingSense(e.right, p))
	}
}

// Ports returns the set of distinct ports referenced by e.
func Ports(e *Expr) []PortRef {
	seen := map[PortRef]bool{}
	var order []PortRef
	var walk func(*Expr)
	walk = func(e *Expr) {
		if e == nil {
			return
		}
		if e.op == OpPort {
			if !seen[e.port] {
				seen[e.port] = true
				order = append(order, e.port)
			}
			return
		}
		walk(e.left)
		walk(e.right)
	}
	walk(e)
	return order
}

// HasPort reports whether e references p anywhere.
func HasPort(e *Expr, p PortRef) bool {
	if e == nil {
		return false
	}
	if e.op == OpPort {
		return e.port == p
	}
	return HasPort(e.left, p) || HasPort(e.right, p)
}

// CheckSize reports a mismatch: true iff some port referenced by e
// has a width other than size (the width every port in a bus
// function is expected to share).
func CheckSize(e *Expr, size int) bool {
	for _, p := range Ports(e) {
		if p.Width() != size {
			return true
		}
	}
	return false
}

var tagMultiplier = [...]uint64{
	OpPort: 0x9E3779B97F4A7C15 | 1,
	OpNot:  3,
	OpAnd:  5,
	OpOr:   7,
	OpXor:  11,
	OpOne:  13,
	OpZero: 17,
}

// Hash mixes the node's tag, its port's name/direction hash (for
// leaves), and its children's hashes with tag-dependent odd
// multipliers, for use as a dedup key during equivalent-cell
// discovery.
func Hash(e *Expr) uint64 {
	if e == nil {
		return 0
	}
	m := tagMultiplier[e.op]
	switch e.op {
	case OpPort:
		return portHash(e.port)*m + uint64(e.op) + 1
	case OpOne, OpZero:
		return uint64(e.op)*m + 1
	case OpNot:
		return Hash(e.left)*m + uint64(e.op) + 1
	default:
		return (Hash(e.left)*m ^ Hash(e.right)*(m+2)) + uint64(e.op) + 1
	}
}

func portHash(p PortRef) uint64 {
	return xxhash.Sum64String(p.Name())*3 + uint64(p.DirectionIndex())*5
}
