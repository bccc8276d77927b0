package segtree

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/segtree/combine"
)

func mustQuery[T any](t *testing.T, tree *Tree[T], left, right int) T {
	t.Helper()
	v, err := tree.Query(left, right)
	require.NoError(t, err)
	return v
}

func TestTree(t *testing.T) {
	tree := NewFromSlice([]int{5, 3, 8, 1}, combine.Max[int])
	assert.Equal(t, 8, mustQuery(t, tree, 0, 3))
	require.NoError(t, tree.Update(2, 2, 0))
	assert.Equal(t, 5, mustQuery(t, tree, 0, 3))
	assert.Equal(t, 0, mustQuery(t, tree, 2, 2))
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, 16, tree.Cap())
	assert.Equal(t, "[5 3 0 1]", tree.String())
}

func TestEmptyMinTree(t *testing.T) {
	inf := combine.MaxValue[int]()
	tree, err := New(6, combine.Min[int], WithDefault(inf))
	require.NoError(t, err)
	assert.Equal(t, inf, mustQuery(t, tree, 0, 5))

	require.NoError(t, tree.Set(4, 11))
	assert.Equal(t, 11, mustQuery(t, tree, 0, 5))
	require.NoError(t, tree.Set(1, 3))
	assert.Equal(t, 3, mustQuery(t, tree, 0, 5))
	assert.Equal(t, 11, mustQuery(t, tree, 2, 5))

	tree.Reset()
	assert.Equal(t, inf, mustQuery(t, tree, 0, 5))
}

func TestErrors(t *testing.T) {
	_, err := New(-4, combine.Sum[int])
	require.ErrorIs(t, err, ErrInvalidSize)

	tree := NewFromSlice([]int{1, 2, 3}, combine.Sum[int])
	_, err = tree.Query(2, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))
	assert.Contains(t, err.Error(), "[2, 1] not within [0, 2]")

	_, err = tree.Get(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, tree.Set(-1, 0), ErrOutOfRange)

	strict := NewFromSlice([]int{1, 2, 3}, combine.Sum[int], WithPointUpdatesOnly[int]())
	require.ErrorIs(t, strict.Update(0, 2, 9), ErrRangeWrite)
	assert.Equal(t, 6, mustQuery(t, strict, 0, 2))
}

func TestPointUpdateLocality(t *testing.T) {
	values := []int{9, 2, 7, 4, 4, 8, 1, 6, 3, 5}
	tree := NewFromSlice(values, combine.Sum[int])
	before := tree.Clone()
	const at = 6
	require.NoError(t, tree.Set(at, 100))
	require.Equal(t, 100, mustQuery(t, tree, at, at))
	for left := 0; left < len(values); left++ {
		for right := left; right < len(values); right++ {
			got := mustQuery(t, tree, left, right)
			prev := mustQuery(t, before, left, right)
			if left <= at && at <= right {
				require.Equal(t, prev-values[at]+100, got)
			} else {
				require.Equal(t, prev, got)
			}
		}
	}
}

func TestGCDTree(t *testing.T) {
	tree := NewFromSlice([]int{12, 18, 30, 7, 14}, combine.GCD[int])
	assert.Equal(t, 6, mustQuery(t, tree, 0, 2))
	assert.Equal(t, 1, mustQuery(t, tree, 0, 4))
	assert.Equal(t, 7, mustQuery(t, tree, 3, 4))
	require.NoError(t, tree.Set(3, 42))
	assert.Equal(t, 6, mustQuery(t, tree, 0, 3))
}

type span struct{ lo, hi int }

// TestNonCommutativeCombine uses an associative but non-commutative
// operation to check that results are always assembled in position order.
func TestNonCommutativeCombine(t *testing.T) {
	concat := func(a, b span) span {
		if a.hi+1 != b.lo {
			panic("combined out of order")
		}
		return span{a.lo, b.hi}
	}
	const N = 37
	values := make([]span, N)
	for i := range values {
		values[i] = span{i, i}
	}
	tree := NewFromSlice(values, concat)
	for i := 0; i < 500; i++ {
		left := rand.Intn(N)
		right := left + rand.Intn(N-left)
		assert.Equal(t, span{left, right}, mustQuery(t, tree, left, right))
	}
}

func TestCursor(t *testing.T) {
	tree := NewFromSlice([]int{1, 2, 3}, combine.Sum[int])
	c := tree.MakeCursor()
	require.True(t, c.Valid())
	assert.Equal(t, 6, c.Value())
	c.DescendRight()
	assert.True(t, c.IsLeaf())
	assert.Equal(t, 3, c.Value())
}
