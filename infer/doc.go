// Package infer implements hierarchical fuzzy inference: a tree of factor
// nodes whose estimates are derived bottom-up by pluggable aggregation
// strategies.
//
// 🚀 Model
//
//   - A Node carries a name, an optional crisp estimate, a weight, an
//     optional classifier (its linguistic scale), a t-norm pair and an
//     Aggregator that derives its estimate from its children.
//   - Estim returns the explicit estimate when one is set; otherwise it asks
//     the aggregator and memoizes a determinate result. A leaf without an
//     estimate is indeterminate: Estim reports ok=false, never an error.
//   - Add rejects duplicate child names and any edge that would make a node
//     its own descendant, so evaluation always terminates.
//
// ✨ Strategies
//
//	Simple         weighted mean of the children (equal weights: arithmetic mean);
//	               one indeterminate child makes the parent indeterminate
//	Mamdani        per rule: α = T(memberships of the antecedent clauses);
//	               clip the conclusion term at α; combine all clipped terms with
//	               the node's t-conorm; defuzzify the combination by centroid
//	RulesAccurate  per rule: α as above; defuzzify each conclusion term first;
//	               result = Σ centroidᵢ·αᵢ / Σ αᵢ, or 0 when no rule fires
//
// Rules are validated when they are registered: every antecedent factor must
// be a child with a classifier that knows the term, and the conclusion must be
// a term of the node's own classifier.
//
// Concurrency: memoized estimates make evaluation a mutating operation. A
// tree is safe for use by one goroutine at a time; concurrent evaluation of
// the same hierarchy requires external synchronization.
package infer
