// Package tnorm provides triangular norms and conorms: the generalized
// fuzzy AND / OR operators used by subset algebra and rule inference.
//
// Every pair implements Norm:
//
//	Norm(a, b)   — t-norm (AND), commutative, associative, monotone, neutral 1
//	Conorm(a, b) — t-conorm (OR), commutative, associative, monotone, neutral 0
//
// Simple pairs:
//
//	MinMax   — Zadeh min / max (the default everywhere)
//	SumProd  — algebraic product / probabilistic sum
//	Margin   — Łukasiewicz bounded difference / bounded sum
//	Drastic  — drastic product / drastic sum
//
// Parametric families (constructors validate the parameter):
//
//	Hamacher(p ≥ 0)         ab / (p + (1-p)(a+b-ab))
//	DuboisPrade(0 ≤ p ≤ 1)  ab / max(a, b, p)
//	Dombi(p > 0)            1 / (1 + ((1/a-1)^p + (1/b-1)^p)^(1/p))
//	SchweizerSklar(p > 0)   1 - ((1-a)^p + (1-b)^p - (1-a)^p(1-b)^p)^(1/p)
//	Yager(p > 0)            max(0, 1 - ((1-a)^p + (1-b)^p)^(1/p))
//	Frank(p > 0, p ≠ 1)     log_p(1 + (p^a-1)(p^b-1)/(p-1))
//	Weber(p > -1)           max(0, (a+b-1+p·ab)/(1+p))
//
// For the parametric families whose conorm has no convenient closed form
// the conorm is the De Morgan dual: S(a,b) = 1 - T(1-a, 1-b).
//
// All results are clamped to [0,1]; 0/0 corner cases resolve to 0.
package tnorm
