// Package classifier implements fuzzy classifiers (linguistic variables): a
// named, ordered collection of fuzzy terms over one shared domain.
//
// A FuzzySet answers two questions:
//
//	Classify(x)      which term describes the crisp value x best
//	                 (highest membership)
//	ClassifySet(s)   which term overlaps the fuzzy value s most
//	                 (highest cardinality of s ∧ term)
//
// Ties are resolved in favour of the term added first. When no term has a
// positive score the result is indeterminate (ok=false), never a silent "".
//
// Standard layouts:
//
//	NewTriangle   N uniformly spaced triangles; WithCross controls overlap,
//	              WithEdge insets the outer modes from the domain bounds
//	NewGaussian   the same layout with Gaussian terms (σ = half-width/3)
//	NewPartition  trapezoids around arbitrary peaks whose memberships sum to
//	              exactly 1 at every point of the domain
//	Standard      2..20 triangular (or Gaussian) terms labelled I, II, III…
//
// Complexity: Classify is O(T) term evaluations; ClassifySet samples T
// intersections, O(T·N).
package classifier
