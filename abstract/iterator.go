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

import "iter"

// All returns an iterator over the positions of the tree in order, yielding
// each position with the value held by its leaf. It is not safe to continue
// iterating after the tree is modified.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t.size > 0 {
			t.iterate(1, 0, t.size-1, yield)
		}
	}
}

// iterate visits the leaves of the subtree rooted at node from left to right.
// It returns false once yield has asked to stop.
func (t *Tree[T]) iterate(node, left, right int, yield func(int, T) bool) bool {
	if left == right {
		return yield(left, t.nodes[node])
	}
	m := mid(left, right)
	return t.iterate(leftChild(node), left, m, yield) &&
		t.iterate(rightChild(node), m+1, right, yield)
}
