// SPDX-License-Identifier: MIT
//
// File: shape.go
// Role: flank families and shape composition.
// Policy:
//   - A Shape is evaluated only strictly between foot and top; a zero-width
//     flank never calls it.
//   - Family constructors panic on a non-positive or non-finite steepness
//     (programmer error, mirrors option constructors).

package number

import (
	"math"

	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// Slope evaluates one flank.
type Slope func(x float64) float64

// Shape builds the flank rising from foot (membership 0) to top
// (membership 1).
type Shape func(top, foot float64) Slope

const panicSteepness = "number: shape steepness must be positive and finite"

func steep(c float64) {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicSteepness)
	}
}

// Line is the power flank |(x-foot)/(top-foot)|^c; c = 1 is linear.
func Line(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		return func(x float64) float64 { return math.Pow(math.Abs((x-foot)/(top-foot)), c) }
	}
}

// Quad is the parabolic flank |1 - ((x-top)/|foot-top|)²|^c.
func Quad(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		w := math.Abs(foot - top)
		return func(x float64) float64 {
			z := (x - top) / w
			return math.Pow(math.Abs(1-z*z), c)
		}
	}
}

// Laplace is the exponential flank exp(-|x-top|·c/|foot-top|).
func Laplace(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		w := math.Abs(foot - top)
		return func(x float64) float64 { return math.Exp(-math.Abs(x-top) * c / w) }
	}
}

// Tanh is the flank 1 + tanh(-((x-top)·c/|foot-top|)²).
func Tanh(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		w := math.Abs(foot - top)
		return func(x float64) float64 {
			z := (x - top) * c / w
			return 1 + math.Tanh(-z*z)
		}
	}
}

// Gauss is the flank exp(-(x-top)²/c²); c is an absolute width.
func Gauss(c float64) Shape {
	steep(c)
	return func(top, _ float64) Slope {
		return func(x float64) float64 {
			z := (x - top) / c
			return math.Exp(-z * z)
		}
	}
}

// Cauchy is the flank 1/(1 + ((x-top)·c/|foot-top|)²).
func Cauchy(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		w := math.Abs(foot - top)
		return func(x float64) float64 {
			z := (x - top) * c / w
			return 1 / (1 + z*z)
		}
	}
}

// Logistic is the flank 2/(1 + exp(((x-top)·c/|foot-top|)²)).
func Logistic(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		w := math.Abs(foot - top)
		return func(x float64) float64 {
			z := (x - top) * c / w
			return 2 / (1 + math.Exp(z*z))
		}
	}
}

// Sech is the hyperbolic secant flank 1/cosh((x-top)·c/|foot-top|).
func Sech(c float64) Shape {
	steep(c)
	return func(top, foot float64) Slope {
		w := math.Abs(foot - top)
		return func(x float64) float64 { return 1 / math.Cosh((x-top)*c/w) }
	}
}

// flat is the flank of a zero-width slope.
func flat(_, _ float64) Slope { return func(float64) float64 { return 1 } }

// rebase fixes s on the operand flank [foot, top] and returns a Shape that
// maps any result flank linearly onto it.
func rebase(s Shape, top, foot float64) Shape {
	if top == foot {
		return flat
	}
	inner := s(top, foot)

	return func(rtop, rfoot float64) Slope {
		if rtop == rfoot {
			return flat(rtop, rfoot)
		}
		return func(x float64) float64 {
			return inner(foot + (x-rfoot)/(rtop-rfoot)*(top-foot))
		}
	}
}

// join evaluates both shapes on the same flank and combines them with n.
func join(n tnorm.Norm, s1, s2 Shape) Shape {
	return func(top, foot float64) Slope {
		l1, l2 := s1(top, foot), s2(top, foot)
		return func(x float64) float64 { return n.Norm(l1(x), l2(x)) }
	}
}
