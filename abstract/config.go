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

// Config is used to configure the tree. It consists of the combine operation
// used to derive the value of an interior node from its children and the
// value every node holds before it is first written. It is provided on the
// cursor so that low-level search can fold values the same way the tree does.
type Config[T any] struct {

	// Combine merges the values of a left and a right child into the value of
	// their parent. It must be associative: the tree splits intervals at
	// arbitrary points and relies on every split producing the same result.
	Combine func(left, right T) T

	// Default is the value of every node of a tree constructed from a size
	// rather than a sequence, and the value restored by Reset. For a min tree
	// this is typically the largest value of T.
	Default T

	// PointUpdatesOnly rejects updates spanning more than one position.
	PointUpdatesOnly bool
}

// Merge combines two values using the same operation as the tree.
func (c *Config[T]) Merge(left, right T) T { return c.Combine(left, right) }
