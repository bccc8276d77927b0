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
	"github.com/pkg/errors"

	"github.com/ajwerner/segtree/interval"
)

var (
	// ErrInvalidSize is returned when a tree is constructed with a negative
	// number of elements.
	ErrInvalidSize = errors.New("segtree: invalid size")

	// ErrOutOfRange is returned when the bounds passed to an operation are
	// not a non-empty interval inside [0, size-1].
	ErrOutOfRange = errors.New("segtree: interval out of range")

	// ErrRangeWrite is returned when an update spanning more than one
	// position is applied to a tree configured for point updates only.
	ErrRangeWrite = errors.New("segtree: range write on point-update tree")
)

func checkBounds(i interval.Interval, size int) error {
	if !i.Within(size) {
		return errors.Wrapf(ErrOutOfRange, "%v not within %v", i, interval.Span(size))
	}
	return nil
}
