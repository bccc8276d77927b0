package segtree

import "github.com/ajwerner/segtree/abstract"

// Option configures a Tree.
type Option[T any] func(*abstract.Config[T])

// WithDefault sets the value every position of a tree built by New holds
// before it is written, and the value Reset restores. For a min tree this is
// usually the largest value of T so that unwritten positions never win.
func WithDefault[T any](v T) Option[T] {
	return func(c *abstract.Config[T]) {
		c.Default = v
	}
}

// WithPointUpdatesOnly makes Update reject writes spanning more than one
// position with ErrRangeWrite.
func WithPointUpdatesOnly[T any]() Option[T] {
	return func(c *abstract.Config[T]) {
		c.PointUpdatesOnly = true
	}
}

func makeConfig[T any](combine func(T, T) T, opts []Option[T]) abstract.Config[T] {
	c := abstract.Config[T]{Combine: combine}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
