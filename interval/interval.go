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

// Package interval provides the closed integer interval used to address
// positions of a segment tree.
package interval

import "fmt"

// Interval is the closed range of positions [Left, Right].
type Interval struct {
	Left, Right int
}

// Make constructs an Interval. It does not validate its arguments.
func Make(left, right int) Interval {
	return Interval{Left: left, Right: right}
}

// Point returns the interval [i, i].
func Point(i int) Interval {
	return Interval{Left: i, Right: i}
}

// Span returns the interval covering every position of a sequence of length
// size, that is [0, size-1]. The result is empty when size is 0.
func Span(size int) Interval {
	return Interval{Left: 0, Right: size - 1}
}

// Empty returns true if the interval contains no positions.
func (i Interval) Empty() bool { return i.Left > i.Right }

// Len returns the number of positions in the interval.
func (i Interval) Len() int {
	if i.Empty() {
		return 0
	}
	return i.Right - i.Left + 1
}

// IsPoint returns true if the interval holds exactly one position.
func (i Interval) IsPoint() bool { return i.Left == i.Right }

// Within returns true if the interval is non-empty and lies inside
// [0, size-1].
func (i Interval) Within(size int) bool {
	return i.Left >= 0 && i.Right < size && !i.Empty()
}

// Contains returns true if o lies entirely inside i.
func (i Interval) Contains(o Interval) bool {
	return i.Left <= o.Left && o.Right <= i.Right
}

// ContainsPoint returns true if position p lies inside i.
func (i Interval) ContainsPoint(p int) bool {
	return i.Left <= p && p <= i.Right
}

// Overlaps returns true if i and o share at least one position.
func (i Interval) Overlaps(o Interval) bool {
	return i.Left <= o.Right && o.Left <= i.Right
}

// Mid returns the last position of the left half when the interval is split.
func (i Interval) Mid() int {
	return i.Left + (i.Right-i.Left)/2
}

// Split splits the interval at Mid into [Left, Mid] and [Mid+1, Right]. It
// must not be called on a point interval.
func (i Interval) Split() (left, right Interval) {
	mid := i.Mid()
	return Interval{Left: i.Left, Right: mid}, Interval{Left: mid + 1, Right: i.Right}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Left, i.Right)
}
