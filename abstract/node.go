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

// The recursive helpers below take the node index together with the
// interval [left, right] it covers. The caller guarantees that [x, y]
// overlaps [left, right].

func leftChild(node int) int  { return 2 * node }
func rightChild(node int) int { return 2*node + 1 }

func mid(left, right int) int { return left + (right-left)/2 }

// build initializes the subtree rooted at node such that the leaf covering
// [i, i] holds values[i].
func (t *Tree[T]) build(node, left, right int, values []T) {
	if left == right {
		t.nodes[node] = values[left]
		return
	}
	m := mid(left, right)
	t.build(leftChild(node), left, m, values)
	t.build(rightChild(node), m+1, right, values)
	t.pull(node)
}

// pull recomputes the value of node from its children.
func (t *Tree[T]) pull(node int) {
	t.nodes[node] = t.cfg.Combine(t.nodes[leftChild(node)], t.nodes[rightChild(node)])
}

func (t *Tree[T]) update(node, left, right, x, y int, value T) {
	if x <= left && right <= y {
		t.nodes[node] = value
		return
	}
	m := mid(left, right)
	if x <= m {
		t.update(leftChild(node), left, m, x, y, value)
	}
	if y > m {
		t.update(rightChild(node), m+1, right, x, y, value)
	}
	t.pull(node)
}

// query only combines the results of children which overlap [x, y]. A child
// outside the range holds a value which must not take part in the result.
func (t *Tree[T]) query(node, left, right, x, y int) T {
	if x <= left && right <= y {
		return t.nodes[node]
	}
	m := mid(left, right)
	switch {
	case y <= m:
		return t.query(leftChild(node), left, m, x, y)
	case x > m:
		return t.query(rightChild(node), m+1, right, x, y)
	default:
		return t.cfg.Combine(
			t.query(leftChild(node), left, m, x, y),
			t.query(rightChild(node), m+1, right, x, y),
		)
	}
}
