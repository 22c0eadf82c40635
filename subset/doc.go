// Package subset implements fuzzy subsets of a sampled domain: the
// membership evaluation engine and the algebra built on top of it.
//
// 🚀 What is here?
//
//	Set        — the contract every fuzzy subset satisfies (Value, Card, Mode, Centr, …)
//	*Subset    — a membership function given by sorted anchor points with
//	             linear interpolation in between; mutable only through Set
//	Shapes     — closed-form value types: Trapezoidal, Triangle, Interval,
//	             Point, Gaussian (exact Card/Mode/Centr overrides)
//	Algebra    — Add, Sub, Mul, And, Or, TNorm, TConorm, Scale, Pow,
//	             Complement, Clip, Normalize; every operator allocates a
//	             fresh *Subset over the union domain and never mutates operands
//	Functionals — Sup, Level (α-cut), Support, Risk/Greater (Nedosekin
//	             possibilistic comparison), Equal, Euclid/Hamming distances
//	Plotting   — Sample + Plotter hand-off to an external renderer
//
// ✨ Numeric model:
//   - Value(x) is exact at anchors and linear between the two bracketing
//     anchors; it is 0 outside [begin, end].
//   - Card is the Riemann sum Σ value(xₖ)·(end-begin)/accuracy; shapes
//     return their exact area instead.
//   - Centr is Σ value(xₖ)·xₖ / Σ value(xₖ) and reports ok=false when the
//     membership mass is zero: "undefined" is never confused with 0.
//   - Binary operators reject operands with a zero-width domain (Point):
//     a degenerate support cannot be sampled (ErrUnsupportedOperation).
//
// ⚙️ Usage:
//
//	a, _ := subset.NewTriangle(0, 2, 4)
//	b, _ := subset.NewTriangle(1, 3, 5)
//	u, err := subset.Or(a, b)
//	if err != nil {
//	  // ErrUnsupportedOperation
//	}
//	c, ok := u.Centr()
//
// Complexity:
//
//   - Subset.Value: O(log A) (A = anchor count, anchors kept sorted)
//   - binary algebra and sampled functionals: O(N·log A), N = domain points
//   - Risk / Greater: O(Na·Nb)
package subset
