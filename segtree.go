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

// Package segtree implements a generic segment tree: a fixed number of
// positions holding values of one type, with writes and range queries over
// an associative combine operation in logarithmic time.
package segtree

import (
	"iter"

	"github.com/ajwerner/segtree/abstract"
)

var (
	// ErrInvalidSize is returned by New for a negative size.
	ErrInvalidSize = abstract.ErrInvalidSize
	// ErrOutOfRange is returned when bounds fall outside the tree or
	// left > right.
	ErrOutOfRange = abstract.ErrOutOfRange
	// ErrRangeWrite is returned by Update on trees constructed with
	// WithPointUpdatesOnly when left < right.
	ErrRangeWrite = abstract.ErrRangeWrite
)

// Tree is a segment tree over positions [0, Len()).
//
// Write operations are not safe for concurrent use by multiple goroutines.
// Callers which share a Tree must serialize access themselves.
type Tree[T any] struct {
	t abstract.Tree[T]
}

// New returns a tree of size positions. Every position holds the value set
// with WithDefault, or the zero value of T. The combine function must be
// associative; it is called with the value of the lower positions first.
func New[T any](size int, combine func(T, T) T, opts ...Option[T]) (*Tree[T], error) {
	t, err := abstract.MakeTree(size, makeConfig(combine, opts))
	if err != nil {
		return nil, err
	}
	return &Tree[T]{t}, nil
}

// NewFromSlice returns a tree whose position i holds values[i].
func NewFromSlice[T any](values []T, combine func(T, T) T, opts ...Option[T]) *Tree[T] {
	return &Tree[T]{abstract.MakeTreeFromSlice(values, makeConfig(combine, opts))}
}

// Update writes value over [left, right]. For left == right this is a point
// update. For left < right the value replaces the aggregate of each largest
// subtree inside the range without being written to the positions below it,
// so queries which cover the range see value while queries over part of it
// see the positions' earlier values. Use Set for point updates.
func (t *Tree[T]) Update(left, right int, value T) error {
	return t.t.Update(left, right, value)
}

// Set sets the value at position i.
func (t *Tree[T]) Set(i int, value T) error { return t.t.Set(i, value) }

// Query returns the combination of the values at positions [left, right].
func (t *Tree[T]) Query(left, right int) (T, error) { return t.t.Query(left, right) }

// Get returns the value at position i.
func (t *Tree[T]) Get(i int) (T, error) { return t.t.Get(i) }

// Len returns the number of positions.
func (t *Tree[T]) Len() int { return t.t.Len() }

// Cap returns the number of nodes allocated for the tree.
func (t *Tree[T]) Cap() int { return t.t.Cap() }

// Reset sets every position back to the default value.
func (t *Tree[T]) Reset() { t.t.Reset() }

// Clone returns an independent copy of the tree.
func (t *Tree[T]) Clone() *Tree[T] { return &Tree[T]{t.t.Clone()} }

// All returns an iterator over the positions in order and the values written
// to them.
func (t *Tree[T]) All() iter.Seq2[int, T] { return t.t.All() }

func (t *Tree[T]) String() string { return t.t.String() }

// MakeCursor returns a cursor positioned at the root of the tree.
func (t *Tree[T]) MakeCursor() abstract.Cursor[T] { return t.t.MakeCursor() }
