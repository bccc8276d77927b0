// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/ajwerner/segtree/interval"
)

// Tree is an array-backed segment tree over a fixed number of positions.
//
// The nodes form a complete binary tree laid out implicitly: node 1 is the
// root and the children of node i are 2i and 2i+1. Index 0 is unused. The
// interval a node covers is never stored; it is derived while descending
// from the root.
//
// Operations are not safe for concurrent use. Query does not mutate the tree
// so concurrent queries are safe in the absence of writers.
type Tree[T any] struct {
	nodes []T
	size  int
	cfg   Config[T]
}

// capacity returns the length of the backing store for a tree of size
// positions: the smallest power of two strictly greater than size, doubled.
func capacity(size int) int {
	return 2 << bits.Len(uint(size))
}

// MakeTree constructs a tree of size positions with every node set to
// cfg.Default.
func MakeTree[T any](size int, cfg Config[T]) (Tree[T], error) {
	if size < 0 {
		return Tree[T]{}, errors.Wrapf(ErrInvalidSize, "%d", size)
	}
	t := makeTree(size, cfg)
	t.fill(cfg.Default)
	return t, nil
}

// MakeTreeFromSlice constructs a tree whose position i holds values[i]. The
// slice is not retained.
func MakeTreeFromSlice[T any](values []T, cfg Config[T]) Tree[T] {
	t := makeTree(len(values), cfg)
	if t.size > 0 {
		t.build(1, 0, t.size-1, values)
	}
	return t
}

func makeTree[T any](size int, cfg Config[T]) Tree[T] {
	if cfg.Combine == nil {
		panic("segtree: nil combine function")
	}
	t := Tree[T]{
		nodes: make([]T, capacity(size)),
		size:  size,
		cfg:   cfg,
	}
	log.Debugf("constructed tree of %d positions over %d nodes", size, len(t.nodes))
	return t
}

func (t *Tree[T]) fill(v T) {
	for i := range t.nodes {
		t.nodes[i] = v
	}
}

// Update writes value over the interval [left, right] and recomputes every
// ancestor of the nodes it writes.
//
// A node whose interval lies entirely within [left, right] takes value
// directly and the nodes beneath it are left untouched. With left == right
// that node is the leaf for the position, which is the point update. With
// left < right the value becomes the cached aggregate of each maximal node
// inside the range while the positions below keep their previous values; a
// later query which splits such a node observes those stale positions. Trees
// configured with PointUpdatesOnly reject such writes with ErrRangeWrite.
//
// No mutation occurs if an error is returned.
func (t *Tree[T]) Update(left, right int, value T) error {
	i := interval.Make(left, right)
	if err := checkBounds(i, t.size); err != nil {
		return err
	}
	if !i.IsPoint() {
		if t.cfg.PointUpdatesOnly {
			log.Warningf("rejected range write over %v", i)
			return errors.Wrapf(ErrRangeWrite, "%v", i)
		}
		log.Debugf("range write over %v caches a single value at covering nodes", i)
	}
	t.update(1, 0, t.size-1, left, right, value)
	return nil
}

// Set sets position i to value.
func (t *Tree[T]) Set(i int, value T) error {
	return t.Update(i, i, value)
}

// Query returns the combined value of the positions in [left, right].
func (t *Tree[T]) Query(left, right int) (T, error) {
	if err := checkBounds(interval.Make(left, right), t.size); err != nil {
		var zero T
		return zero, err
	}
	return t.query(1, 0, t.size-1, left, right), nil
}

// Get returns the value at position i.
func (t *Tree[T]) Get(i int) (T, error) {
	return t.Query(i, i)
}

// Len returns the number of positions in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Cap returns the number of nodes in the backing store, including the unused
// node 0.
func (t *Tree[T]) Cap() int {
	return len(t.nodes)
}

// Reset sets every node back to the configured default value.
func (t *Tree[T]) Reset() {
	t.fill(t.cfg.Default)
}

// Clone returns a tree with its own copy of the backing store. Values of T
// are copied shallowly.
func (t *Tree[T]) Clone() Tree[T] {
	c := *t
	c.nodes = make([]T, len(t.nodes))
	copy(c.nodes, t.nodes)
	return c
}

// String returns the values held by the leaves in position order.
func (t *Tree[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range t.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
