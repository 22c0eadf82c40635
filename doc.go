// Package fuzzycalc is a toolkit for fuzzy-logic computation: fuzzy subsets
// over sampled domains, their algebra, linguistic classifiers and
// hierarchical rule-based inference.
//
// 🚀 What is fuzzycalc?
//
//	A pure-Go, deterministic library that brings together:
//		• Domains: evenly sampled real or integer ranges (the universe of discourse)
//		• Subsets: anchor-interpolated membership functions + closed-form shapes
//		• Algebra: union, intersection, arithmetic, parametric t-norms/t-conorms
//		• Fuzzy numbers: generalized trapezoids with four-corner arithmetic
//		• Classifiers: linguistic term sets, uniform and partition-of-unity builders
//		• Inference: factor trees with Simple, Mamdani and weighted-centroid strategies
//		• Controllers: named inputs wired to named outputs through fuzzy rules
//
// ✨ Why choose fuzzycalc?
//
//   - Small API – constructors validate, evaluation never panics
//   - Explicit "unknown" – indeterminate results are comma-ok values, not zeros
//   - Pure Go – no cgo, no global mutable state
//   - Pluggable – t-norm families and aggregation strategies are interfaces
//
// Under the hood, everything is organized under these subpackages:
//
//	domain/     — sampling grids (Domain, integer ranges)
//	tnorm/      — t-norm / t-conorm pairs (MinMax, SumProd, Hamacher, Frank, …)
//	subset/     — Set contract, anchor Subset, shapes, algebra, comparison
//	number/     — generalized trapezoidal fuzzy numbers and their arithmetic
//	classifier/ — FuzzySet term collections and standard partitions
//	infer/      — factor trees, rules and aggregation strategies
//	control/    — multi-input / multi-output fuzzy controllers
//	config/     — YAML controller definitions
//	cmd/fuzzyctl — command-line front end
//
// Errors:
//
//	Every package exposes sentinel errors that wrap one of the kinds
//	declared here, so callers can branch on the taxonomy with errors.Is:
//
//	ErrConfiguration        — invalid construction parameters
//	ErrDomainMismatch       — structurally incompatible domains or classifiers
//	ErrUnsupportedOperation — operator invoked on incompatible operand kinds
//
// Concurrency:
//
//	Domains, shapes and derived subsets are safe to share read-only.
//	Anchor subsets mutated through Set and inference trees (which memoize
//	their estimates) must be synchronized externally.
//
//	go get github.com/katalvlaran/fuzzycalc
package fuzzycalc
