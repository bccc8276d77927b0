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

import "github.com/ajwerner/segtree/interval"

// Cursor walks the implicit tree from the root towards the leaves. It is
// exposed for implementing searches which use the values cached at interior
// nodes, such as finding the shortest prefix satisfying a predicate.
//
// It is not safe to continue using a Cursor after the tree is modified.
type Cursor[T any] struct {
	t *Tree[T]
	iterFrame
	s iterStack
}

// MakeCursor returns a Cursor positioned at the root.
func (t *Tree[T]) MakeCursor() Cursor[T] {
	c := Cursor[T]{t: t}
	c.Reset()
	return c
}

// Reset positions the cursor at the root.
func (c *Cursor[T]) Reset() {
	c.s.reset()
	c.iterFrame = iterFrame{node: 1, span: interval.Span(c.t.size)}
}

// Valid returns false if the tree has no positions, in which case no other
// method apart from Reset and Config may be called.
func (c *Cursor[T]) Valid() bool {
	return c.t.size > 0
}

// Config returns the tree's config.
func (c *Cursor[T]) Config() *Config[T] {
	return &c.t.cfg
}

// Node returns the index of the current node.
func (c *Cursor[T]) Node() int {
	return c.node
}

// Interval returns the positions covered by the current node.
func (c *Cursor[T]) Interval() interval.Interval {
	return c.span
}

// Value returns the value of the current node.
func (c *Cursor[T]) Value() T {
	return c.t.nodes[c.node]
}

// IsLeaf returns true if the current node covers a single position.
func (c *Cursor[T]) IsLeaf() bool {
	return c.span.IsPoint()
}

// LeftChild returns the value of the left child of the current node. It is
// illegal to call on a leaf.
func (c *Cursor[T]) LeftChild() T {
	return c.t.nodes[leftChild(c.node)]
}

// RightChild returns the value of the right child of the current node. It is
// illegal to call on a leaf.
func (c *Cursor[T]) RightChild() T {
	return c.t.nodes[rightChild(c.node)]
}

// Depth returns the number of nodes above the current node. It is illegal to
// call Ascend if this function returns 0.
func (c *Cursor[T]) Depth() int {
	return c.s.len()
}

// DescendLeft pushes the current node onto the stack and moves to its left
// child. It is illegal to call on a leaf.
func (c *Cursor[T]) DescendLeft() {
	l, _ := c.span.Split()
	c.s.push(c.iterFrame)
	c.iterFrame = iterFrame{node: leftChild(c.node), span: l}
}

// DescendRight pushes the current node onto the stack and moves to its right
// child. It is illegal to call on a leaf.
func (c *Cursor[T]) DescendRight() {
	_, r := c.span.Split()
	c.s.push(c.iterFrame)
	c.iterFrame = iterFrame{node: rightChild(c.node), span: r}
}

// Ascend moves back to the parent of the current node.
func (c *Cursor[T]) Ascend() {
	c.iterFrame = c.s.pop()
}
