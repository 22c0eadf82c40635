// SPDX-License-Identifier: MIT
//
// File: arith.go
// Role: four-corner arithmetic on fuzzy numbers.
// Policy:
//   - Result corners are min/max over the four operand corner combinations
//     (begin/end pairs for the support, beginTol/endTol pairs for the core);
//     subtraction and division therefore swap bounds naturally.
//   - The result inherits a's norm and the larger accuracy.

package number

import (
	"math"
)

// Add returns a + b.
func Add(a, b Number) (Number, error) {
	plus := func(x, y float64) float64 { return x + y }
	n := a.norm
	left := join(n, rebase(a.left, a.beginTol, a.begin), rebase(b.left, b.beginTol, b.begin))
	right := join(n, rebase(a.right, a.endTol, a.end), rebase(b.right, b.endTol, b.end))

	return combine("Add", a, b, plus, left, right)
}

// Sub returns a - b. The rising flank of the result pairs a's left flank with
// b's right flank, and vice versa.
func Sub(a, b Number) (Number, error) {
	minus := func(x, y float64) float64 { return x - y }
	n := a.norm
	left := join(n, rebase(a.left, a.beginTol, a.begin), rebase(b.right, b.endTol, b.end))
	right := join(n, rebase(a.right, a.endTol, a.end), rebase(b.left, b.beginTol, b.begin))

	return combine("Sub", a, b, minus, left, right)
}

// Mul returns a · b.
func Mul(a, b Number) (Number, error) {
	times := func(x, y float64) float64 { return x * y }

	return combine("Mul", a, b, times, join(a.norm, a.left, b.left), join(a.norm, a.right, b.right))
}

// Div returns a / b.
//
// Errors: ErrDivisionByZero if 0 lies in [b.begin, b.end].
func Div(a, b Number) (Number, error) {
	if b.begin <= 0 && b.end >= 0 {
		return Number{}, numberErrorf("Div", ErrDivisionByZero, "divisor=%s", b)
	}
	over := func(x, y float64) float64 { return x / y }

	return combine("Div", a, b, over, join(a.norm, a.left, b.left), join(a.norm, a.right, b.right))
}

// AddScalar returns a + v.
func AddScalar(a Number, v float64) (Number, error) {
	c, err := Crisp(v, WithAccuracy(a.accuracy))
	if err != nil {
		return Number{}, err
	}

	return Add(a, c)
}

// MulScalar returns a · v.
func MulScalar(a Number, v float64) (Number, error) {
	c, err := Crisp(v, WithAccuracy(a.accuracy))
	if err != nil {
		return Number{}, err
	}

	return Mul(a, c)
}

// combine computes the result corners and builds the Number.
func combine(method string, a, b Number, op func(x, y float64) float64, left, right Shape) (Number, error) {
	begin, end := span(op, a.begin, a.end, b.begin, b.end)
	beginTol, endTol := span(op, a.beginTol, a.endTol, b.beginTol, b.endTol)
	// rounding must not leave the core outside the support
	begin = math.Min(begin, beginTol)
	end = math.Max(end, endTol)

	acc := a.accuracy
	if b.accuracy > acc {
		acc = b.accuracy
	}
	res, err := New(begin, beginTol, endTol, end, left, right,
		WithAccuracy(acc), WithNorm(a.norm), WithPrecision(a.eps))
	if err != nil {
		return Number{}, numberErrorf(method, err, "%s, %s", a, b)
	}

	return res, nil
}

// span returns min and max of op over the four combinations of {p0,p1}×{q0,q1}.
func span(op func(x, y float64) float64, p0, p1, q0, q1 float64) (lo, hi float64) {
	v := [...]float64{op(p0, q0), op(p0, q1), op(p1, q0), op(p1, q1)}
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return lo, hi
}
