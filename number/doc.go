// Package number implements generalized trapezoidal fuzzy numbers (L-R
// numbers with configurable flank shapes) and their approximate arithmetic.
//
// A Number is described by four corners begin ≤ beginTol ≤ endTol ≤ end:
// membership is 0 outside (begin, end), 1 on the tolerance interval
// [beginTol, endTol], and follows the left/right flank Shape in between.
//
// Flank families (each parameterized by a steepness c > 0):
//
//	Line     |(x-foot)/(top-foot)|^c
//	Quad     |1 - ((x-top)/|foot-top|)²|^c
//	Laplace  exp(-|x-top|·c/|foot-top|)
//	Tanh     1 + tanh(-((x-top)·c/|foot-top|)²)
//	Gauss    exp(-(x-top)²/c²)
//	Cauchy   1 / (1 + ((x-top)·c/|foot-top|)²)
//	Logistic 2 / (1 + exp(((x-top)·c/|foot-top|)²))
//	Sech     1 / cosh((x-top)·c/|foot-top|)
//
// Arithmetic (Add, Sub, Mul, Div) approximates the extension principle:
// the corners of the result are the min/max over the four corner
// combinations of the operands, and the flanks are composed by
// substitution. For Add and Sub a result flank is rebased onto each
// operand's matching flank (Sub pairs the left flank of a with the right
// flank of b); for Mul and Div the operands' shape families are re-applied
// at the result corners. The two flank values are joined with the left
// operand's t-norm (min by default; tnorm.SumProd reproduces the classical
// product composition). This is an approximation, not exact fuzzy
// arithmetic: the result's corners are exact, its flank curvature is not.
//
// Every Number satisfies subset.Set, so the sampled algebra and the
// comparison functionals of package subset apply unchanged.
package number
