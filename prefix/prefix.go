// Package prefix searches a segment tree for the shortest prefix whose
// aggregate satisfies a condition.
package prefix

import (
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/segtree"
)

// Search returns the smallest k such that pred holds for the combination of
// positions [0, k], or -1 if there is none. pred must be monotone over
// growing prefixes: once true for some k it is true for every larger k. This
// holds for instance for a sum tree of non-negative values and a predicate of
// the form sum >= x.
//
// Search descends once from the root, so it takes O(log n) combine and pred
// calls. Positions shadowed by a range Update are seen through the cached
// aggregates of the nodes covering them.
func Search[T any](t *segtree.Tree[T], pred func(T) bool) int {
	it := t.MakeCursor()
	if !it.Valid() || !pred(it.Value()) {
		return -1
	}
	merge := it.Config().Merge
	// acc holds the combination of every position left of the current node.
	var acc T
	var haveAcc bool
	for !it.IsLeaf() {
		cand := it.LeftChild()
		if haveAcc {
			cand = merge(acc, cand)
		}
		if pred(cand) {
			it.DescendLeft()
		} else {
			acc, haveAcc = cand, true
			it.DescendRight()
		}
	}
	return it.Interval().Left
}

// Find returns the smallest k such that the combination of positions [0, k]
// equals target, or -1 if there is none. Prefix aggregates must be
// non-decreasing, as for a sum tree of non-negative values.
func Find[T constraints.Ordered](t *segtree.Tree[T], target T) int {
	k := Search(t, func(v T) bool { return v >= target })
	if k < 0 {
		return -1
	}
	if v, err := t.Query(0, k); err != nil || v != target {
		return -1
	}
	return k
}
