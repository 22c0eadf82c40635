// Package domain provides the universe of discourse for numeric fuzzy
// operations: a finite, ordered, restartable sampling grid over a real or
// integer range.
//
// 🚀 What is a Domain?
//
//	A Domain is the triple (begin, end, accuracy). It yields exactly
//	accuracy+1 evenly spaced points begin + k·step for k = 0..accuracy,
//	with step = (end-begin)/accuracy. Points are generated by index, never
//	by accumulating the step, so the last point is always exactly end.
//
//	A degenerate domain (begin == end) yields accuracy repetitions of begin;
//	it is the support of crisp points.
//
// ✨ Key features:
//   - value type: immutable after construction, safe to share
//   - lazy iteration via iter.Seq / iter.Seq2 (range-over-func)
//   - integer ranges (accuracy = end-begin, unit step)
//   - Union / Overlaps helpers used by subset algebra
//
// ⚙️ Usage:
//
//	d, err := domain.New(0, 10, 100)
//	if err != nil {
//	  // ErrBadAccuracy / ErrBadBounds
//	}
//	for x := range d.Points() {
//	  fmt.Println(x)
//	}
//
// Complexity:
//
//   - At, Contains, Step: O(1)
//   - Points, All: O(accuracy) per full pass, O(1) memory
package domain
